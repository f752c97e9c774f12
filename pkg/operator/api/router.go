package api

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterRoutes(r chi.Router) {
	// 2 requests per second, burst of 3, per client IP
	rateLimiter := NewRateLimiter(2, 3)
	r.Use(rateLimiter.RateLimit)

	r.Get("/api/v1/status", h.GetStatus)
	r.Get("/healthz", h.GetHealth)
}
