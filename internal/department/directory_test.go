package department_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/curricuforge/curricuforge/internal/department"
)

func TestDepartment(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Suite")
}

var _ = Describe("Directory", func() {
	var dir *department.Directory

	BeforeEach(func() {
		dir = department.NewDirectory()
	})

	Describe("AddFaculty", func() {
		It("should assign an id and record the member", func() {
			// When
			added := dir.AddFaculty(department.FacultyMember{
				Name:           "Dr. Rao",
				Designation:    "Professor",
				Specialization: "Databases",
				Load:           "12h/week",
			})

			// Then
			Expect(added.ID).ToNot(BeEmpty())
			Expect(dir.Faculty()).To(HaveLen(1))
			Expect(dir.Faculty()[0].Name).To(Equal("Dr. Rao"))
		})

		It("should ignore caller-supplied ids", func() {
			added := dir.AddFaculty(department.FacultyMember{ID: "forged", Name: "Dr. Rao"})
			Expect(added.ID).ToNot(Equal("forged"))
		})
	})

	Describe("AddStudent", func() {
		It("should record students with their section", func() {
			dir.AddStudent(department.Student{Name: "Asha", RollNo: "21CS001", Year: "3", Section: "A"})
			dir.AddStudent(department.Student{Name: "Ravi", RollNo: "21CS002", Year: "3", Section: "B"})

			students := dir.Students()
			Expect(students).To(HaveLen(2))
			Expect(students[1].Section).To(Equal("B"))
		})
	})

	Describe("AddSection and AddClassroom", func() {
		It("should keep sections and rooms as separate registries", func() {
			dir.AddSection(department.Section{Name: "A", Strength: 60, ClassTeacher: "Dr. Rao"})
			dir.AddClassroom(department.Classroom{RoomNo: "L-204", Type: department.RoomLab, Capacity: 30})

			Expect(dir.Sections()).To(HaveLen(1))
			Expect(dir.Classrooms()).To(HaveLen(1))
			Expect(dir.Classrooms()[0].Type).To(Equal(department.RoomLab))
		})
	})

	Describe("PostSyllabus", func() {
		It("should stamp the posting time when absent", func() {
			doc := dir.PostSyllabus(department.SyllabusDocument{
				Title:  "OS Unit Plan",
				Type:   department.DocPDF,
				Author: "Dr. Rao",
			})

			Expect(doc.ID).ToNot(BeEmpty())
			Expect(doc.PostedAt).To(BeTemporally("~", time.Now(), time.Second))
		})

		It("should keep an explicit posting time", func() {
			posted := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
			doc := dir.PostSyllabus(department.SyllabusDocument{Title: "Old", PostedAt: posted})
			Expect(doc.PostedAt).To(Equal(posted))
		})
	})

	Describe("listing", func() {
		It("should return copies rather than the backing slices", func() {
			dir.AddFaculty(department.FacultyMember{Name: "Dr. Rao"})

			snapshot := dir.Faculty()
			snapshot[0].Name = "tampered"

			Expect(dir.Faculty()[0].Name).To(Equal("Dr. Rao"))
		})
	})
})
