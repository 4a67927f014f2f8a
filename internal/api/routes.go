package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(timeoutMiddleware(30 * time.Second))
		r.Post("/convert", s.handleConvert)
		r.Get("/conversions", s.handleListConversions)
		r.Get("/conversions/{id}", s.handleGetConversion)
	})
	return r
}
