package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/niksmo/storefront/internal/core/port"
)

// RouterConfig used for setup [NewRouter].
//
// Stats and Metrics are optional.
type RouterConfig struct {
	HomePage port.HomePageReader
	Contact  port.ContactReader
	Stats    port.StatsReader
	Metrics  http.Handler
}

func NewRouter(config RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)

	r.Get("/healthz", Health)
	if config.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", config.Metrics)
	}

	RegisterStorefront(r, config.HomePage, config.Contact, config.Stats)
	return r
}
