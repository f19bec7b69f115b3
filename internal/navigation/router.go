// Package navigation maps roles to the views they may open. The mapping
// is a static table over two closed sets; the surrounding UI is expected
// to only ever offer permitted views, so the router is a guard, not an
// error source.
package navigation

import (
	"fmt"

	"github.com/curricuforge/curricuforge/internal"
	"github.com/curricuforge/curricuforge/internal/identity"
)

// View is the closed set of view identifiers.
type View string

const (
	ViewDashboard      View = "dashboard"
	ViewCurriculum     View = "curriculum"
	ViewLessonPlan     View = "lesson-plan"
	ViewAssignment     View = "assignment"
	ViewUpdate         View = "update"
	ViewInstitutional  View = "institutional"
	ViewDeptDetails    View = "dept-details"
	ViewCollegeAI      View = "college-ai"
	ViewAnnouncement   View = "announcement"
	ViewStudyPlan      View = "student-study-plan"
	ViewTimeMgmt       View = "student-time-mgmt"
	ViewPractice       View = "student-practice"
	ViewInterestCourse View = "student-interest-course"
	ViewTimetable      View = "timetable"
	ViewBlooms         View = "blooms"
)

func ParseView(s string) (View, error) {
	for _, item := range navItems {
		if item.ID == View(s) {
			return View(s), nil
		}
	}
	return "", internal.NewValidationError(fmt.Sprintf("unknown view %q", s), internal.ErrCodeValidationFailed)
}

// NavItem is one sidebar entry: the view it opens, its label and the
// roles allowed to open it.
type NavItem struct {
	ID    View            `json:"id"`
	Label string          `json:"label"`
	Roles []identity.Role `json:"-"`
}

var navItems = []NavItem{
	{ID: ViewDashboard, Label: "Dashboard Overview", Roles: []identity.Role{identity.RoleFaculty, identity.RoleDepartment, identity.RoleManagement, identity.RoleStudent}},
	{ID: ViewCurriculum, Label: "Curriculum Design", Roles: []identity.Role{identity.RoleFaculty, identity.RoleDepartment}},
	{ID: ViewLessonPlan, Label: "Lesson Planner", Roles: []identity.Role{identity.RoleFaculty}},
	{ID: ViewAssignment, Label: "Assignment Builder", Roles: []identity.Role{identity.RoleFaculty, identity.RoleDepartment}},
	{ID: ViewUpdate, Label: "Revision Control", Roles: []identity.Role{identity.RoleFaculty, identity.RoleDepartment}},
	{ID: ViewInstitutional, Label: "Governance Framework", Roles: []identity.Role{identity.RoleManagement}},
	{ID: ViewDeptDetails, Label: "Department Directory", Roles: []identity.Role{identity.RoleManagement}},
	{ID: ViewCollegeAI, Label: "Overall College AI", Roles: []identity.Role{identity.RoleManagement}},
	{ID: ViewAnnouncement, Label: "Announcements", Roles: []identity.Role{identity.RoleManagement, identity.RoleDepartment}},
	{ID: ViewStudyPlan, Label: "Study Planner", Roles: []identity.Role{identity.RoleStudent}},
	{ID: ViewTimeMgmt, Label: "Time Management", Roles: []identity.Role{identity.RoleStudent}},
	{ID: ViewPractice, Label: "Practice Arena", Roles: []identity.Role{identity.RoleStudent}},
	{ID: ViewInterestCourse, Label: "Interest Course", Roles: []identity.Role{identity.RoleStudent}},
	{ID: ViewTimetable, Label: "Timetable Builder", Roles: []identity.Role{identity.RoleDepartment}},
	{ID: ViewBlooms, Label: "Blooms Mapper", Roles: []identity.Role{identity.RoleFaculty}},
}

// IsPermitted reports whether the role may open the view.
func IsPermitted(role identity.Role, view View) bool {
	for _, item := range navItems {
		if item.ID != view {
			continue
		}
		for _, r := range item.Roles {
			if r == role {
				return true
			}
		}
		return false
	}
	return false
}

// NavItems returns the ordered sidebar entries visible to the role.
func NavItems(role identity.Role) []NavItem {
	out := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		for _, r := range item.Roles {
			if r == role {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Views returns every known view identifier in display order.
func Views() []View {
	out := make([]View, len(navItems))
	for i, item := range navItems {
		out[i] = item.ID
	}
	return out
}
