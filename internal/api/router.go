package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the chi router with the standard middleware stack and
// every API route mounted under /api/v1.
func NewRouter(h *Handler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/predict", h.Predict)
		r.Post("/predict/batch", h.PredictBatch)
		r.Post("/stake", h.EvaluateStake)
		r.Post("/stake/simulate", h.SimulateBankroll)

		r.Get("/players/search", h.SearchPlayers)
		r.Get("/players/{slug}/gamelog", h.FetchGameLog)

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", h.CreateProject)
			r.Get("/", h.ListProjects)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetProject)
				r.Delete("/", h.DeleteProject)
				r.Get("/events", h.ListProjectEvents)
				r.Post("/events", h.AddProjectEvent)
			})
		})

		r.Post("/events/{id}/result", h.RecordEventResult)
	})

	return r
}
