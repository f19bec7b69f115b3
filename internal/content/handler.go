package content

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/curricuforge/curricuforge/internal/generator"
	"github.com/curricuforge/curricuforge/internal/identity"
	"github.com/curricuforge/curricuforge/internal/transport"
	"github.com/curricuforge/curricuforge/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateArtifact(dto CreateArtifactDTO, actor *identity.User) (*Artifact, error)
	GetArtifact(id string, actor *identity.User) (*Artifact, error)
	Verify(id string, actor *identity.User) (*Artifact, error)
	Authorize(id string, actor *identity.User) (*Artifact, error)
	Deny(id string, actor *identity.User, feedback string) (*Artifact, error)
	ListVisible(actor *identity.User) ([]*Artifact, error)
	ListDepartment(actor *identity.User, department string) ([]*Artifact, error)
	ListPending(actor *identity.User) ([]*Artifact, error)
	ListByAuthor(actor *identity.User, author string) ([]*Artifact, error)
}

type Handler struct {
	*transport.BaseHandler
	Service   ServiceAPI
	Generator generator.GeneratorAPI
}

func NewHandler(service ServiceAPI, gen generator.GeneratorAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
		Generator:   gen,
	}
}

// GenerateArtifactDTO is the request for an AI-backed creation: either a
// parameter payload the prompt is built from, or pre-written content.
type GenerateArtifactDTO struct {
	Kind           Kind            `json:"kind"`
	Title          string          `json:"title"`
	Content        string          `json:"content,omitempty"`
	Params         json.RawMessage `json:"params,omitempty"`
	TargetAudience Audience        `json:"target_audience,omitempty"`
	TargetSection  string          `json:"target_section,omitempty"`
	Duration       time.Duration   `json:"duration,omitempty"`
}

func (h *Handler) CreateArtifact(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.UserFromContext(r.Context())
	if !ok {
		h.Logger.Warn("CreateArtifact: no actor in context")
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var dto GenerateArtifactDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateArtifact: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	body := dto.Content
	if body == "" {
		// No pre-written content: build the prompt from the typed
		// parameters and call out. Nothing is inserted if the call fails.
		base := generator.BaseParams{
			Role:        actor.Role.String(),
			CollegeName: actor.College,
			UserName:    actor.Name,
			Department:  actor.Department,
		}

		prompt, err := generator.PromptFor(string(dto.Kind), base, dto.Params)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}

		body, err = h.Generator.Generate(r.Context(), generator.Request{Prompt: prompt})
		if err != nil {
			h.Logger.Error("CreateArtifact: generation failed", "error", err, "kind", dto.Kind)
			h.HandleServiceError(w, err)
			return
		}
	}

	artifact, err := h.Service.CreateArtifact(CreateArtifactDTO{
		Kind:           dto.Kind,
		Title:          dto.Title,
		Content:        body,
		TargetAudience: dto.TargetAudience,
		TargetSection:  dto.TargetSection,
		Duration:       dto.Duration,
	}, actor)
	if err != nil {
		h.Logger.Error("CreateArtifact: service error", "error", err, "author", actor.Name)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, artifact)
}

func (h *Handler) GetArtifact(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.UserFromContext(r.Context())

	artifact, err := h.Service.GetArtifact(chi.URLParam(r, "id"), actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, artifact)
}

func (h *Handler) ListArtifacts(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.UserFromContext(r.Context())

	var (
		items []*Artifact
		err   error
	)

	q := r.URL.Query()
	switch {
	case q.Get("pending") == "true":
		items, err = h.Service.ListPending(actor)
	case q.Get("department") != "":
		items, err = h.Service.ListDepartment(actor, q.Get("department"))
	case q.Get("author") != "":
		items, err = h.Service.ListByAuthor(actor, q.Get("author"))
	default:
		items, err = h.Service.ListVisible(actor)
	}
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"artifacts": items,
		"count":     len(items),
	})
}

func (h *Handler) VerifyArtifact(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.UserFromContext(r.Context())

	artifact, err := h.Service.Verify(chi.URLParam(r, "id"), actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("VerifyArtifact: artifact verified", "artifact_id", artifact.ID, "actor", actor.Name)
	h.WriteJSON(w, http.StatusOK, artifact)
}

func (h *Handler) AuthorizeArtifact(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.UserFromContext(r.Context())

	artifact, err := h.Service.Authorize(chi.URLParam(r, "id"), actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("AuthorizeArtifact: artifact authorized", "artifact_id", artifact.ID, "actor", actor.Name)
	h.WriteJSON(w, http.StatusOK, artifact)
}

func (h *Handler) DenyArtifact(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.UserFromContext(r.Context())

	var dto DenyDTO
	if r.Body != nil {
		// body is optional; an empty one means the standard rejection note
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	artifact, err := h.Service.Deny(chi.URLParam(r, "id"), actor, dto.Feedback)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("DenyArtifact: artifact denied",
		"artifact_id", artifact.ID,
		"actor", actor.Name,
		"feedback", artifact.Feedback)
	h.WriteJSON(w, http.StatusOK, artifact)
}
