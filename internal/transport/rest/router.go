package rest

import (
	"log/slog"

	"github.com/curricuforge/curricuforge/internal/content"
	"github.com/curricuforge/curricuforge/internal/department"
	"github.com/curricuforge/curricuforge/internal/identity"
	"github.com/curricuforge/curricuforge/internal/navigation"
	"github.com/curricuforge/curricuforge/internal/preview"
	"github.com/curricuforge/curricuforge/internal/transport/middleware"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the workspace API. Everything except health
// and login runs behind the actor-context middleware; the services do
// the actual unauthenticated/forbidden checks.
func RegisterAllRoutes(
	router *chi.Mux,
	session *identity.Session,
	ledger *content.Ledger,
	identityHandler *identity.Handler,
	contentHandler *content.Handler,
	previewHandler *preview.Handler,
	navHandler *navigation.Handler,
	deptHandler *department.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(ledger)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.ActorContext(session))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", identityHandler.Login)
			sr.Post("/logout", identityHandler.Logout)
		})
		r.Get("/users/me", identityHandler.Me)

		r.Route("/artifacts", func(ar chi.Router) {
			ar.Post("/", contentHandler.CreateArtifact)
			ar.Get("/", contentHandler.ListArtifacts)
			ar.Get("/{id}", contentHandler.GetArtifact)

			ar.Patch("/{id}/verify", contentHandler.VerifyArtifact)
			ar.Patch("/{id}/authorize", contentHandler.AuthorizeArtifact)
			ar.Patch("/{id}/deny", contentHandler.DenyArtifact)
		})

		r.Route("/preview", func(pr chi.Router) {
			pr.Get("/", previewHandler.Current)
			pr.Post("/{id}", previewHandler.FocusArtifact)
			pr.Delete("/", previewHandler.Dismiss)
		})

		r.Get("/navigation", navHandler.NavItems)
		r.Get("/views/{id}/access", navHandler.ViewAccess)

		r.Route("/department", func(dr chi.Router) {
			dr.Get("/directory", deptHandler.GetDirectory)
			dr.Post("/faculty", deptHandler.AddFaculty)
			dr.Post("/students", deptHandler.AddStudent)
			dr.Post("/sections", deptHandler.AddSection)
			dr.Post("/classrooms", deptHandler.AddClassroom)
			dr.Post("/syllabi", deptHandler.PostSyllabus)
		})
	})
}
