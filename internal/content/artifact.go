package content

import (
	"fmt"
	"time"

	"github.com/curricuforge/curricuforge/internal"
	"github.com/curricuforge/curricuforge/internal/approval"
	"github.com/curricuforge/curricuforge/internal/identity"
)

// Kind is the closed set of artifact categories the workspace produces.
type Kind string

const (
	KindCurriculum     Kind = "curriculum"
	KindLessonPlan     Kind = "lesson-plan"
	KindAssignment     Kind = "assignment"
	KindUpdate         Kind = "update"
	KindInstitutional  Kind = "institutional"
	KindCollegeAI      Kind = "college-ai"
	KindAnnouncement   Kind = "announcement"
	KindStudyPlan      Kind = "student-study-plan"
	KindTimeMgmt       Kind = "student-time-mgmt"
	KindPractice       Kind = "student-practice"
	KindInterestCourse Kind = "student-interest-course"
	KindTimetable      Kind = "timetable"
	KindBlooms         Kind = "blooms"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCurriculum, KindLessonPlan, KindAssignment, KindUpdate,
		KindInstitutional, KindCollegeAI, KindAnnouncement,
		KindStudyPlan, KindTimeMgmt, KindPractice, KindInterestCourse,
		KindTimetable, KindBlooms:
		return Kind(s), nil
	}
	return "", internal.NewValidationError(fmt.Sprintf("unknown artifact kind %q", s), internal.ErrCodeInvalidKind)
}

func (k Kind) Valid() bool {
	_, err := ParseKind(string(k))
	return err == nil
}

// Audience scopes who an artifact is addressed to.
type Audience string

const (
	AudienceAll        Audience = "All"
	AudienceDepartment Audience = "Department"
	AudienceClass      Audience = "Class"
)

func ParseAudience(s string) (Audience, error) {
	switch Audience(s) {
	case AudienceAll, AudienceDepartment, AudienceClass:
		return Audience(s), nil
	}
	return "", internal.NewValidationError(fmt.Sprintf("unknown target audience %q", s), internal.ErrCodeInvalidAudience)
}

// Artifact is one generated academic document tracked by the ledger.
// Origin fields are stamped once at creation and never change; only the
// approval fields mutate afterwards. Content is an opaque, externally
// sanitized blob; the ledger never interprets it.
type Artifact struct {
	ID             string          `json:"id"`
	Kind           Kind            `json:"kind"`
	OriginRole     identity.Role   `json:"origin_role"`
	AuthorName     string          `json:"author_name"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	CreatedAt      time.Time       `json:"created_at"`
	College        string          `json:"college_name"`
	Department     string          `json:"department"`
	ApprovalStatus approval.Status `json:"approval_status"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
	Feedback       string          `json:"feedback,omitempty"`
	IsPublished    bool            `json:"is_published"`
	TargetAudience Audience        `json:"target_audience,omitempty"`
	TargetSection  string          `json:"target_section,omitempty"`
	Duration       time.Duration   `json:"duration,omitempty"` // for time-locked answer keys
}

// Pending reports whether the artifact still awaits review.
func (a *Artifact) Pending() bool {
	return a.ApprovalStatus == approval.StatusPending
}
