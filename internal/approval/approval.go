package approval

import (
	"fmt"

	"github.com/curricuforge/curricuforge/internal"
	"github.com/curricuforge/curricuforge/internal/identity"
)

// Status is the approval state of an artifact. Wire values match the
// workspace UI vocabulary.
type Status string

const (
	StatusPending      Status = "Pending"
	StatusApprovedDept Status = "Approved_Dept"
	StatusApprovedMgmt Status = "Approved_Mgmt"
	StatusRejected     Status = "Rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApprovedDept, StatusApprovedMgmt, StatusRejected:
		return Status(s), nil
	}
	return "", internal.NewValidationError(fmt.Sprintf("unknown approval status %q", s), internal.ErrCodeInvalidStatus)
}

func (s Status) String() string {
	return string(s)
}

// Published reports whether the status makes an artifact visible to its
// audience. This is the single definition of the published invariant.
func (s Status) Published() bool {
	return s == StatusApprovedDept || s == StatusApprovedMgmt
}

// InitialStatus is the status stamped on a freshly created artifact.
// Management and Department output is self-approved at creation; Faculty
// and Student output enters the pending queue.
func InitialStatus(origin identity.Role) Status {
	switch origin {
	case identity.RoleManagement:
		return StatusApprovedMgmt
	case identity.RoleDepartment:
		return StatusApprovedDept
	default:
		return StatusPending
	}
}

// Action is a named approval command an actor can invoke on an artifact.
type Action string

const (
	ActionVerify    Action = "verify"    // Department sign-off on Faculty/Student work
	ActionAuthorize Action = "authorize" // Management sign-off on anything
	ActionDeny      Action = "deny"      // Management rejection
)

// DeniedFeedback is recorded when a denial arrives without an explicit
// reason.
const DeniedFeedback = "Rejected by Management"

// Result is the status an action writes. Actions are direct status
// writes: no transition graph constrains which current status they may
// overwrite, so repeat application is idempotent.
func (a Action) Result() (Status, error) {
	switch a {
	case ActionVerify:
		return StatusApprovedDept, nil
	case ActionAuthorize:
		return StatusApprovedMgmt, nil
	case ActionDeny:
		return StatusRejected, nil
	}
	return "", internal.NewValidationError(fmt.Sprintf("unknown approval action %q", a), internal.ErrCodeInvalidStatus)
}

// Permitted reports whether the actor role may apply the action to an
// artifact created by originRole. Verify is Department-only and covers
// just the roles below it in the hierarchy; Authorize and Deny are
// Management-only and unrestricted.
func (a Action) Permitted(actor, origin identity.Role) bool {
	switch a {
	case ActionVerify:
		return actor == identity.RoleDepartment &&
			(origin == identity.RoleFaculty || origin == identity.RoleStudent)
	case ActionAuthorize, ActionDeny:
		return actor == identity.RoleManagement
	}
	return false
}
