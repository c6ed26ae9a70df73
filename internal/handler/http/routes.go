package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/beer-battle/internal/utils"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader, utils.HashHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, withGZipRequest)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	// routes without authorization
	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/collections/{collection}/documents", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listDocuments)
		r.Delete("/", h.deleteOwnerDocuments)
		r.Get("/{id}", h.getDocument)
		r.Delete("/{id}", h.deleteDocument)
		r.With(h.checkHash).Put("/{id}", h.putDocument)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
