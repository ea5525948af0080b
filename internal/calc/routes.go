package calc

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts every calculator page and its export endpoints
// onto the given router under the /calculator prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/convert", Convert)
		r.Post("/temperature", Temperature)
		r.Post("/bmi", BMI)

		r.Post("/perunit", PerUnit)
		r.Post("/perunit/export/{format:csv|pdf}", PerUnitExport)

		r.Post("/zip", ZIP)
		r.Post("/zip/export/{format:csv|pdf}", ZIPExport)
		r.Post("/zip/curve.png", ZIPCurvePNG)
		r.Post("/zip/curve.pdf", ZIPCurvePDF)
	})
}
