package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router.
//
//	GET    /                 service info
//	GET    /version          build version
//	POST   /auth/register
//	POST   /auth/login
//	GET    /auth/me          (auth)
//	GET    /auth/me/vendor   (auth, vendor only)
//	POST   /clothes          (auth)
//	GET    /clothes          (auth)
//	PUT    /clothes/{id}     (auth)
//	DELETE /clothes/{id}     (auth)
func (h *Handler) Init() *chi.Mux {
	return h.init(0)
}

// InitWithTimeout is Init with a per-request deadline. A non-positive
// timeout disables it.
func (h *Handler) InitWithTimeout(timeout time.Duration) *chi.Mux {
	return h.init(timeout)
}

func (h *Handler) init(timeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging, h.withRecover)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	if timeout > 0 {
		router.Use(h.withTimeout(timeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.serviceInfo)
		r.Get("/version", h.version)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/me", h.me)
		r.With(h.vendorOnly).Get("/auth/me/vendor", h.me)

		r.Post("/clothes", h.createEntry)
		r.Get("/clothes", h.listEntries)
		r.Put("/clothes/{id}", h.updateEntry)
		r.Delete("/clothes/{id}", h.deleteEntry)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
