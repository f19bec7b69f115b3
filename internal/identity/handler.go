package identity

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/curricuforge/curricuforge/internal/transport"
	"github.com/curricuforge/curricuforge/pkg/logger"
)

// SessionAPI is the handler's view of the session.
type SessionAPI interface {
	Login(name string, role Role, college, department string, attributes map[string]string) *User
	Logout()
	Current() *User
}

type Handler struct {
	*transport.BaseHandler
	Session SessionAPI
}

func NewHandler(session SessionAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Session:     session,
	}
}

type LoginDTO struct {
	Name       string            `json:"name"`
	Role       string            `json:"role"`
	College    string            `json:"college_name"`
	Department string            `json:"department"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if dto.Name == "" {
		h.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	role, err := ParseRole(dto.Role)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	user := h.Session.Login(dto.Name, role, dto.College, dto.Department, dto.Attributes)
	h.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout()
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.Session.Current()
	if user == nil {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}
