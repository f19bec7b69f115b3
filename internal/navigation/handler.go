package navigation

import (
	"log/slog"
	"net/http"

	"github.com/curricuforge/curricuforge/internal/identity"
	"github.com/curricuforge/curricuforge/internal/transport"
	"github.com/curricuforge/curricuforge/pkg/logger"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
}

func NewHandler() *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{BaseHandler: transport.NewBaseHandler(lg)}
}

// NavItems returns the sidebar entries for the current role.
func (h *Handler) NavItems(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"role":  actor.Role,
		"color": actor.Role.Color(),
		"items": NavItems(actor.Role),
	})
}

// ViewAccess reports whether the current role may open a view.
func (h *Handler) ViewAccess(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	view, err := ParseView(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"view":      view,
		"permitted": IsPermitted(actor.Role, view),
	})
}
