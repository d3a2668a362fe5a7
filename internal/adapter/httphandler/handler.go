package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/storefront/home (200 OK)
// GET v1/storefront/contact (200 OK)
// GET v1/storefront/contact/whatsapp (303 See other, 404 Not found)
// GET v1/storefront/stats (200 OK, 503 Service unavailable)

var statsRegions = []string{
	domain.RegionNewCollection,
	domain.RegionProducts,
	domain.RegionContact,
}

type StorefrontHandler struct {
	homePage port.HomePageReader
	contact  port.ContactReader
	stats    port.StatsReader
}

// RegisterStorefront mounts the storefront routes.
//
// stats is optional, without it the stats route responds 503.
func RegisterStorefront(
	r chi.Router,
	homePage port.HomePageReader,
	contact port.ContactReader,
	stats port.StatsReader,
) {
	h := StorefrontHandler{homePage, contact, stats}
	r.Route("/v1/storefront", func(r chi.Router) {
		r.Get("/home", h.GetHomePage)
		r.Get("/contact", h.GetContact)
		r.Get("/contact/whatsapp", h.RedirectContact)
		r.Get("/stats", h.GetStats)
	})
}

func (h StorefrontHandler) GetHomePage(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetHomePage"
	page := h.homePage.HomePage(r.Context())
	writeJSON(w, http.StatusOK, fromHomePage(page), op)
}

func (h StorefrontHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetContact"
	c := h.contact.Contact(r.Context())
	writeJSON(w, http.StatusOK, fromContact(c), op)
}

func (h StorefrontHandler) RedirectContact(w http.ResponseWriter, r *http.Request) {
	c := h.contact.Contact(r.Context())
	if !c.Available {
		http.Error(w, c.Notice, http.StatusNotFound)
		return
	}
	http.Redirect(w, r, c.Link, http.StatusSeeOther)
}

func (h StorefrontHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetStats"
	log := slog.With("op", op)

	if h.stats == nil {
		http.Error(w, "stats are disabled", http.StatusServiceUnavailable)
		return
	}

	vs, err := h.stats.RegionStats(r.Context(), statsRegions...)
	if err != nil {
		http.Error(w, "stats are unavailable", http.StatusServiceUnavailable)
		log.Error("failed to read region stats", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, fromRegionStats(vs), op)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any, op string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}
