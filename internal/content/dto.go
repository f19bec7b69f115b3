package content

import (
	"time"

	"github.com/curricuforge/curricuforge/internal"
)

// CreateArtifactDTO is the draft a generation component hands to the
// ledger: category, title and the already generated content blob.
type CreateArtifactDTO struct {
	Kind           Kind          `json:"kind"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	TargetAudience Audience      `json:"target_audience,omitempty"`
	TargetSection  string        `json:"target_section,omitempty"`
	Duration       time.Duration `json:"duration,omitempty"`
}

// Validate validates the CreateArtifactDTO.
func (dto CreateArtifactDTO) Validate() error {
	if !dto.Kind.Valid() {
		return internal.NewValidationError("kind is required and must be a known artifact kind", internal.ErrCodeInvalidKind)
	}
	if dto.Title == "" {
		return internal.NewValidationError("title is required", internal.ErrCodeInvalidTitle)
	}
	if len(dto.Title) > 200 {
		return internal.NewValidationError("title must be at most 200 characters", internal.ErrCodeInvalidTitle)
	}
	if dto.Content == "" {
		return internal.NewValidationError("content is required", internal.ErrCodeInvalidContent)
	}
	if dto.TargetAudience != "" {
		if _, err := ParseAudience(string(dto.TargetAudience)); err != nil {
			return err
		}
	}
	return nil
}

// DenyDTO carries the optional reason for a denial.
type DenyDTO struct {
	Feedback string `json:"feedback,omitempty"`
}
