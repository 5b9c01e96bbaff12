package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/dossiers", func(r chi.Router) {
			r.Post("/", h.createDossier)
			r.Get("/", h.listDossiers)
			r.Get("/{dossierID}", h.getDossier)
			r.Delete("/{dossierID}", h.deleteDossier)
			r.Post("/{dossierID}/targets", h.createTarget)
			r.Get("/{dossierID}/targets", h.listTargets)
		})

		r.Route("/api/targets/{targetID}", func(r chi.Router) {
			r.Get("/", h.getTarget)
			r.Delete("/", h.deleteTarget)

			r.Post("/records/{kind}", h.createRecord)
			r.Get("/records/{kind}", h.listRecords)
			r.Delete("/records/{kind}/{recordID}", h.deleteRecord)

			r.Get("/timeline", h.getTargetTimeline)
			r.Get("/timeline/stats", h.getTimelineStats)
			r.Post("/timeline/generate", h.generateTimeline)
			r.Post("/timeline/regenerate", h.regenerateTimeline)
		})

		r.Route("/api/patterns", func(r chi.Router) {
			r.Post("/detect", h.detectPatterns)
			r.Get("/", h.listPatterns)
			r.Get("/anomalies", h.listAnomalies)
			r.Delete("/{patternID}", h.deletePattern)
		})

		r.Delete("/api/timeline/{eventID}", h.deleteTimelineEvent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
