package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.createUser)
		r.Post("/sessions", h.login)
		r.Post("/login", h.login)
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
	})

	// course reads, authenticated unless configured public
	router.Group(func(r chi.Router) {
		if !h.settings.PublicCourses {
			r.Use(h.auth)
		}
		r.Get("/courses", h.listCourses)
		r.Get("/courses/{id}", h.getCourse)
	})

	// authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/{id}", h.getUser)

		r.With(h.requireRole(models.RoleManager)).Post("/courses", h.createCourse)
		r.With(h.requireRole(models.RoleManager)).Get("/users", h.listUsers)
	})

	if h.settings.ServeDocs {
		mountDocs(router)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
