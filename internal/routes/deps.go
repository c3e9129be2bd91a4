package routes

import (
	"net/http"

	"github.com/amanabooks/storefront/internal/handler/api"
)

// APIDeps contains dependencies for the storefront API routes
type APIDeps struct {
	// Catalog
	BookHandler *api.BookHandler

	// Reviews
	ReviewHandler *api.ReviewHandler

	// Session cart
	CartHandler *api.CartHandler

	// Prometheus scrape endpoint
	MetricsHandler http.Handler

	// Liveness probe
	HealthHandler http.HandlerFunc
}
