package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/curricuforge/curricuforge/internal"
)

// BaseParams carries the identity fields every generation prompt is
// framed with.
type BaseParams struct {
	Role        string `json:"role"`
	CollegeName string `json:"college_name"`
	UserName    string `json:"user_name"`
	Department  string `json:"department"`
}

func (p BaseParams) header() string {
	return fmt.Sprintf("College: %s. Department: %s. Requested by %s (%s).",
		p.CollegeName, p.Department, p.UserName, p.Role)
}

// Prompter builds the prompt for one generation request. Each artifact
// category has its own parameter shape.
type Prompter interface {
	Prompt() string
}

type CurriculumParams struct {
	BaseParams
	Subject    string `json:"subject"`
	Level      string `json:"level"`
	Duration   string `json:"duration"`
	Difficulty string `json:"difficulty"`
}

func (p CurriculumParams) Prompt() string {
	return strings.Join([]string{
		p.header(),
		fmt.Sprintf("Design a %s %s curriculum for %q spanning %s at %s difficulty.",
			p.Level, p.Department, p.Subject, p.Duration, p.Difficulty),
		"Structure it into units with outcomes, references and assessment strategy.",
	}, " ")
}

type LessonPlanParams struct {
	BaseParams
	Syllabus      string `json:"syllabus"`
	Prerequisites string `json:"prerequisites"`
}

func (p LessonPlanParams) Prompt() string {
	return strings.Join([]string{
		p.header(),
		fmt.Sprintf("Prepare a session-wise lesson plan for the syllabus: %s.", p.Syllabus),
		fmt.Sprintf("Assume prerequisites: %s.", p.Prerequisites),
	}, " ")
}

type AssignmentParams struct {
	BaseParams
	Subject       string `json:"subject"`
	DurationHours string `json:"duration_hours"`
	TargetSection string `json:"target_section,omitempty"`
}

func (p AssignmentParams) Prompt() string {
	prompt := fmt.Sprintf("%s Build an assignment for %q solvable within %s hours.",
		p.header(), p.Subject, p.DurationHours)
	if p.TargetSection != "" {
		prompt += fmt.Sprintf(" Target section: %s.", p.TargetSection)
	}
	return prompt
}

type UpdateParams struct {
	BaseParams
	ExistingCurriculum string `json:"existing_curriculum"`
	ChangeRequest      string `json:"change_request"`
}

func (p UpdateParams) Prompt() string {
	return fmt.Sprintf("%s Revise the following curriculum per this change request: %s.\n\n%s",
		p.header(), p.ChangeRequest, p.ExistingCurriculum)
}

type InstitutionalParams struct {
	BaseParams
	InstitutionType string `json:"institution_type"`
	Subject         string `json:"subject"`
}

func (p InstitutionalParams) Prompt() string {
	return fmt.Sprintf("%s Draft a governance framework for a %s covering %s.",
		p.header(), p.InstitutionType, p.Subject)
}

type CollegeAIParams struct {
	BaseParams
	Query   string `json:"query"`
	Context string `json:"context"`
}

func (p CollegeAIParams) Prompt() string {
	return fmt.Sprintf("%s Answer the following institutional query. Context: %s. Query: %s",
		p.header(), p.Context, p.Query)
}

type StudentPlanParams struct {
	BaseParams
	CurrentCourses string `json:"current_courses"`
	Goals          string `json:"goals"`
}

func (p StudentPlanParams) Prompt() string {
	return fmt.Sprintf("%s Build a study plan around these courses: %s. Goals: %s.",
		p.header(), p.CurrentCourses, p.Goals)
}

type StudentPracticeParams struct {
	BaseParams
	Subject   string `json:"subject"`
	Topic     string `json:"topic"`
	Intensity string `json:"intensity"` // Basic or Challenge
}

func (p StudentPracticeParams) Prompt() string {
	return fmt.Sprintf("%s Generate %s-level practice questions for %s, topic %s.",
		p.header(), p.Intensity, p.Subject, p.Topic)
}

type StudentInterestCourseParams struct {
	BaseParams
	InterestSubject string `json:"interest_subject"`
	CollegeHours    string `json:"college_hours"`
	PriorKnowledge  string `json:"prior_knowledge"`
}

func (p StudentInterestCourseParams) Prompt() string {
	return fmt.Sprintf("%s Outline a self-paced course on %s fitting around college hours %s, assuming prior knowledge: %s.",
		p.header(), p.InterestSubject, p.CollegeHours, p.PriorKnowledge)
}

type TimetableParams struct {
	BaseParams
	SubjectsAndFaculty string `json:"subjects_and_faculty"`
	Sections           string `json:"sections"`
	WorkingDays        string `json:"working_days"`
	PeriodsPerDay      int    `json:"periods_per_day"`
}

func (p TimetableParams) Prompt() string {
	return fmt.Sprintf("%s Produce a weekly timetable. Subjects and faculty: %s. Sections: %s. Working days: %s. Periods per day: %d.",
		p.header(), p.SubjectsAndFaculty, p.Sections, p.WorkingDays, p.PeriodsPerDay)
}

type BloomsParams struct {
	BaseParams
	Outcomes string `json:"outcomes"`
}

func (p BloomsParams) Prompt() string {
	return fmt.Sprintf("%s Map these course outcomes onto Bloom's taxonomy levels with sample assessment items: %s.",
		p.header(), p.Outcomes)
}

// PromptFor decodes the raw parameter payload for the given artifact
// kind and builds the generation prompt. Kinds without a parameter shape
// (announcements) are rejected; their content arrives pre-written.
func PromptFor(kind string, base BaseParams, raw json.RawMessage) (string, error) {
	var p Prompter

	switch kind {
	case "curriculum":
		p = &CurriculumParams{BaseParams: base}
	case "lesson-plan":
		p = &LessonPlanParams{BaseParams: base}
	case "assignment":
		p = &AssignmentParams{BaseParams: base}
	case "update":
		p = &UpdateParams{BaseParams: base}
	case "institutional":
		p = &InstitutionalParams{BaseParams: base}
	case "college-ai":
		p = &CollegeAIParams{BaseParams: base}
	case "student-study-plan", "student-time-mgmt":
		p = &StudentPlanParams{BaseParams: base}
	case "student-practice":
		p = &StudentPracticeParams{BaseParams: base}
	case "student-interest-course":
		p = &StudentInterestCourseParams{BaseParams: base}
	case "timetable":
		p = &TimetableParams{BaseParams: base}
	case "blooms":
		p = &BloomsParams{BaseParams: base}
	default:
		return "", internal.NewValidationError(
			fmt.Sprintf("kind %q has no generation parameters", kind),
			internal.ErrCodeInvalidKind)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, p); err != nil {
			return "", internal.NewValidationError("invalid generation parameters", internal.ErrCodeValidationFailed).WithCause(err)
		}
	}

	return p.Prompt(), nil
}
