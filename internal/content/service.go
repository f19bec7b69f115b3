package content

import (
	"log/slog"
	"time"

	"github.com/curricuforge/curricuforge/internal"
	"github.com/curricuforge/curricuforge/internal/approval"
	"github.com/curricuforge/curricuforge/internal/identity"
	"github.com/curricuforge/curricuforge/internal/ids"
)

// IDGenerator mints artifact ids. Injectable so tests can run with
// deterministic ids; the default is the ULID generator.
type IDGenerator func() string

// PreviewSurface receives the freshly created artifact as the new
// focused item.
type PreviewSurface interface {
	Focus(a *Artifact)
}

// Service owns the artifact lifecycle: creation with origin stamping and
// initial status, and the role-gated approval commands.
type Service struct {
	ledger  *Ledger
	preview PreviewSurface
	newID   IDGenerator
	logger  *slog.Logger
}

// NewService creates a content service. A nil idGen selects the default
// ULID generator.
func NewService(ledger *Ledger, preview PreviewSurface, idGen IDGenerator, logger *slog.Logger) *Service {
	if idGen == nil {
		idGen = ids.New
	}
	return &Service{
		ledger:  ledger,
		preview: preview,
		newID:   idGen,
		logger:  logger,
	}
}

// CreateArtifact ingests a draft produced by a generation component.
// Every insertion requires an authenticated actor. The artifact is
// stamped with the actor's origin fields, given its initial status from
// the origin role, prepended to the ledger and focused in the preview
// surface.
func (s *Service) CreateArtifact(dto CreateArtifactDTO, actor *identity.User) (*Artifact, error) {
	if actor == nil {
		s.logger.Warn("create artifact denied: no active session")
		return nil, internal.ErrUnauthenticated
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("artifact validation failed", "error", err, "author", actor.Name)
		return nil, err
	}

	status := approval.InitialStatus(actor.Role)

	artifact := &Artifact{
		ID:             s.newID(),
		Kind:           dto.Kind,
		OriginRole:     actor.Role,
		AuthorName:     actor.Name,
		Title:          dto.Title,
		Content:        dto.Content,
		CreatedAt:      time.Now(),
		College:        actor.College,
		Department:     actor.Department,
		ApprovalStatus: status,
		IsPublished:    status.Published(),
		TargetAudience: dto.TargetAudience,
		TargetSection:  dto.TargetSection,
		Duration:       dto.Duration,
	}

	s.ledger.Insert(artifact)
	s.preview.Focus(artifact)

	s.logger.Info("artifact created",
		"artifact_id", artifact.ID,
		"kind", artifact.Kind,
		"author", artifact.AuthorName,
		"origin_role", artifact.OriginRole,
		"status", artifact.ApprovalStatus)

	return artifact, nil
}

// GetArtifact looks up a single artifact for an authenticated reader.
func (s *Service) GetArtifact(id string, actor *identity.User) (*Artifact, error) {
	if actor == nil {
		return nil, internal.ErrUnauthenticated
	}
	a, ok := s.ledger.Get(id)
	if !ok {
		return nil, internal.ErrArtifactNotFound
	}
	return a, nil
}

// SetApproval is the ledger's direct status write. It carries no role
// gate of its own; the named commands below are the role-checked surface
// exposed to end users. Applying the same status twice yields the same
// record, with ApprovedBy reflecting the latest actor.
func (s *Service) SetApproval(id string, status approval.Status, actor *identity.User, feedback string) (*Artifact, error) {
	if actor == nil {
		s.logger.Warn("set approval denied: no active session", "artifact_id", id)
		return nil, internal.ErrUnauthenticated
	}

	a, ok := s.ledger.SetApproval(id, status, actor.Name, feedback)
	if !ok {
		s.logger.Warn("set approval: artifact not found", "artifact_id", id)
		return nil, internal.ErrArtifactNotFound
	}

	s.logger.Info("approval status updated",
		"artifact_id", id,
		"status", status,
		"actor", actor.Name,
		"published", a.IsPublished)

	return a, nil
}

// Verify is the Department sign-off on Faculty or Student work.
func (s *Service) Verify(id string, actor *identity.User) (*Artifact, error) {
	return s.apply(approval.ActionVerify, id, actor, "")
}

// Authorize is the Management sign-off on any artifact.
func (s *Service) Authorize(id string, actor *identity.User) (*Artifact, error) {
	return s.apply(approval.ActionAuthorize, id, actor, "")
}

// Deny is the Management rejection. An empty feedback falls back to the
// standard rejection note.
func (s *Service) Deny(id string, actor *identity.User, feedback string) (*Artifact, error) {
	if feedback == "" {
		feedback = approval.DeniedFeedback
	}
	return s.apply(approval.ActionDeny, id, actor, feedback)
}

func (s *Service) apply(action approval.Action, id string, actor *identity.User, feedback string) (*Artifact, error) {
	if actor == nil {
		s.logger.Warn("approval action denied: no active session", "action", action, "artifact_id", id)
		return nil, internal.ErrUnauthenticated
	}

	target, ok := s.ledger.Get(id)
	if !ok {
		s.logger.Warn("approval action: artifact not found", "action", action, "artifact_id", id)
		return nil, internal.ErrArtifactNotFound
	}

	if !action.Permitted(actor.Role, target.OriginRole) {
		s.logger.Warn("approval action denied: role not permitted",
			"action", action,
			"artifact_id", id,
			"actor_role", actor.Role,
			"origin_role", target.OriginRole)
		return nil, internal.ErrApprovalForbidden
	}

	status, err := action.Result()
	if err != nil {
		return nil, err
	}

	return s.SetApproval(id, status, actor, feedback)
}

// ListVisible returns the full authoritative set, newest first. The
// ledger hides nothing from an authenticated reader; dashboards decide
// what subset they render.
func (s *Service) ListVisible(actor *identity.User) ([]*Artifact, error) {
	if actor == nil {
		return nil, internal.ErrUnauthenticated
	}
	return s.ledger.List(), nil
}

// ListDepartment narrows ListVisible to one department, for the
// department dashboard.
func (s *Service) ListDepartment(actor *identity.User, department string) ([]*Artifact, error) {
	items, err := s.ListVisible(actor)
	if err != nil {
		return nil, err
	}
	out := make([]*Artifact, 0, len(items))
	for _, a := range items {
		if a.Department == department {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListPending narrows ListVisible to the review queue.
func (s *Service) ListPending(actor *identity.User) ([]*Artifact, error) {
	items, err := s.ListVisible(actor)
	if err != nil {
		return nil, err
	}
	out := make([]*Artifact, 0, len(items))
	for _, a := range items {
		if a.Pending() {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByAuthor narrows ListVisible to one author's output, for the
// personal dashboards.
func (s *Service) ListByAuthor(actor *identity.User, author string) ([]*Artifact, error) {
	items, err := s.ListVisible(actor)
	if err != nil {
		return nil, err
	}
	out := make([]*Artifact, 0, len(items))
	for _, a := range items {
		if a.AuthorName == author {
			out = append(out, a)
		}
	}
	return out, nil
}
