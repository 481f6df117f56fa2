// Package server exposes workbook builds as an HTTP download endpoint.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ukaji3/exsheet-go/pkg/exsheet"
)

// maxBodyBytes limits the size of a sheet description document.
const maxBodyBytes = 32 << 20

// GetRouter initialises a new http router and applies all routes. base holds
// the build options shared by every request; FileName and NoDataLabel may be
// overridden per request.
func GetRouter(base exsheet.Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	return applyRoutes(r, &handler{base: base})
}

func applyRoutes(r chi.Router, h *handler) chi.Router {
	r.Route("/", func(r chi.Router) {
		r.Get("/healthz", h.health)
		r.Post("/download", h.download)
	})

	return r
}
