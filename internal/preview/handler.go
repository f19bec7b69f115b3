package preview

import (
	"log/slog"
	"net/http"

	"github.com/curricuforge/curricuforge/internal/content"
	"github.com/curricuforge/curricuforge/internal/identity"
	"github.com/curricuforge/curricuforge/internal/transport"
	"github.com/curricuforge/curricuforge/pkg/logger"
	"github.com/go-chi/chi"
)

// Fetcher resolves an artifact id against the ledger for the actor.
type Fetcher interface {
	GetArtifact(id string, actor *identity.User) (*content.Artifact, error)
}

type Handler struct {
	*transport.BaseHandler
	Surface *Surface
	Fetcher Fetcher
}

func NewHandler(surface *Surface, fetcher Fetcher) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Surface:     surface,
		Fetcher:     fetcher,
	}
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	artifact := h.Surface.Current()
	if artifact == nil {
		h.WriteError(w, http.StatusNotFound, "nothing focused")
		return
	}
	h.WriteJSON(w, http.StatusOK, artifact)
}

func (h *Handler) FocusArtifact(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.UserFromContext(r.Context())

	artifact, err := h.Fetcher.GetArtifact(chi.URLParam(r, "id"), actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Surface.Focus(artifact)
	h.WriteJSON(w, http.StatusOK, artifact)
}

func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.Surface.Clear()
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
}
