// Package department holds the departmental asset directory backing the
// dept-details view: faculty, students, sections, classrooms and posted
// syllabus documents. Like the content ledger it is in-memory and
// process-lifetime only.
package department

import (
	"sync"
	"time"

	"github.com/curricuforge/curricuforge/internal/ids"
)

type FacultyMember struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Designation    string `json:"designation"`
	Specialization string `json:"specialization"`
	Load           string `json:"load"`
}

type Student struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RollNo  string `json:"roll_no"`
	Year    string `json:"year"`
	Section string `json:"section"`
}

type Section struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Strength     int    `json:"strength"`
	ClassTeacher string `json:"class_teacher"`
}

type RoomType string

const (
	RoomTheory  RoomType = "Theory"
	RoomLab     RoomType = "Lab"
	RoomSeminar RoomType = "Seminar"
)

type Classroom struct {
	ID       string   `json:"id"`
	RoomNo   string   `json:"room_no"`
	Type     RoomType `json:"type"`
	Capacity int      `json:"capacity"`
}

type DocumentType string

const (
	DocPDF   DocumentType = "pdf"
	DocWord  DocumentType = "doc"
	DocImage DocumentType = "image"
)

type SyllabusDocument struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Type     DocumentType `json:"type"`
	PostedAt time.Time    `json:"posted_at"`
	Author   string       `json:"author"`
}

// Directory is the per-department asset registry.
type Directory struct {
	mu         sync.RWMutex
	faculty    []FacultyMember
	students   []Student
	sections   []Section
	classrooms []Classroom
	syllabi    []SyllabusDocument
}

func NewDirectory() *Directory {
	return &Directory{}
}

func (d *Directory) AddFaculty(m FacultyMember) FacultyMember {
	d.mu.Lock()
	defer d.mu.Unlock()
	m.ID = ids.New()
	d.faculty = append(d.faculty, m)
	return m
}

func (d *Directory) AddStudent(s Student) Student {
	d.mu.Lock()
	defer d.mu.Unlock()
	s.ID = ids.New()
	d.students = append(d.students, s)
	return s
}

func (d *Directory) AddSection(s Section) Section {
	d.mu.Lock()
	defer d.mu.Unlock()
	s.ID = ids.New()
	d.sections = append(d.sections, s)
	return s
}

func (d *Directory) AddClassroom(c Classroom) Classroom {
	d.mu.Lock()
	defer d.mu.Unlock()
	c.ID = ids.New()
	d.classrooms = append(d.classrooms, c)
	return c
}

func (d *Directory) PostSyllabus(doc SyllabusDocument) SyllabusDocument {
	d.mu.Lock()
	defer d.mu.Unlock()
	doc.ID = ids.New()
	if doc.PostedAt.IsZero() {
		doc.PostedAt = time.Now()
	}
	d.syllabi = append(d.syllabi, doc)
	return doc
}

func (d *Directory) Faculty() []FacultyMember {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]FacultyMember, len(d.faculty))
	copy(out, d.faculty)
	return out
}

func (d *Directory) Students() []Student {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Student, len(d.students))
	copy(out, d.students)
	return out
}

func (d *Directory) Sections() []Section {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Section, len(d.sections))
	copy(out, d.sections)
	return out
}

func (d *Directory) Classrooms() []Classroom {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Classroom, len(d.classrooms))
	copy(out, d.classrooms)
	return out
}

func (d *Directory) Syllabi() []SyllabusDocument {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]SyllabusDocument, len(d.syllabi))
	copy(out, d.syllabi)
	return out
}
