package routes

import (
	"github.com/amanabooks/storefront/internal/middleware"
	"github.com/amanabooks/storefront/internal/router"
)

// RegisterAPIRoutes registers the storefront JSON API.
// Write endpoints carry a small body-size cap; ids in paths accept any
// historical representation, so patterns stay plain {id} wildcards.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	bodyCap := middleware.MaxBodySize(middleware.SmallMaxBodySize)

	// Catalog
	r.Get("/api/books", deps.BookHandler.List)
	r.Post("/api/books", deps.BookHandler.Create, bodyCap)
	r.Get("/api/books/{id}", deps.BookHandler.Get)

	// Reviews
	r.Get("/api/reviews", deps.ReviewHandler.List)
	r.Post("/api/reviews", deps.ReviewHandler.Create, bodyCap)
	r.Get("/api/reviews/{id}", deps.ReviewHandler.Get)

	// Cart
	r.Get("/api/cart", deps.CartHandler.Get)
	r.Post("/api/cart", deps.CartHandler.Add, bodyCap)
	r.Put("/api/cart", deps.CartHandler.Update, bodyCap)
	r.Delete("/api/cart", deps.CartHandler.Delete)

	// Operational endpoints
	if deps.HealthHandler != nil {
		r.Get("/health", deps.HealthHandler)
	}
	if deps.MetricsHandler != nil {
		r.Handle("GET", "/metrics", deps.MetricsHandler)
	}
}
