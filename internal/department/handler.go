package department

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/curricuforge/curricuforge/internal/identity"
	"github.com/curricuforge/curricuforge/internal/transport"
	"github.com/curricuforge/curricuforge/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Directory *Directory
}

func NewHandler(directory *Directory) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Directory:   directory,
	}
}

func (h *Handler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity.UserFromContext(r.Context()); !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"faculty":    h.Directory.Faculty(),
		"students":   h.Directory.Students(),
		"sections":   h.Directory.Sections(),
		"classrooms": h.Directory.Classrooms(),
		"syllabi":    h.Directory.Syllabi(),
	})
}

func (h *Handler) AddFaculty(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity.UserFromContext(r.Context()); !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var m FacultyMember
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if m.Name == "" {
		h.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.WriteJSON(w, http.StatusCreated, h.Directory.AddFaculty(m))
}

func (h *Handler) AddStudent(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity.UserFromContext(r.Context()); !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var s Student
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if s.Name == "" {
		h.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.WriteJSON(w, http.StatusCreated, h.Directory.AddStudent(s))
}

func (h *Handler) AddSection(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity.UserFromContext(r.Context()); !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var s Section
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if s.Name == "" {
		h.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.WriteJSON(w, http.StatusCreated, h.Directory.AddSection(s))
}

func (h *Handler) AddClassroom(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity.UserFromContext(r.Context()); !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var c Classroom
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if c.RoomNo == "" {
		h.WriteError(w, http.StatusBadRequest, "room_no is required")
		return
	}

	h.WriteJSON(w, http.StatusCreated, h.Directory.AddClassroom(c))
}

func (h *Handler) PostSyllabus(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var doc SyllabusDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if doc.Title == "" {
		h.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}
	if doc.Author == "" {
		doc.Author = actor.Name
	}

	h.WriteJSON(w, http.StatusCreated, h.Directory.PostSyllabus(doc))
}
