package http

import (
	_ "github.com/MKhiriev/go-course-keeper/docs"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

const docsJSONPath = "/docs/doc.json"

// mountDocs serves the Swagger UI under /docs/ and the generated OpenAPI
// document at /docs/doc.json.
func mountDocs(router chi.Router) {
	router.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL(docsJSONPath)))
}
