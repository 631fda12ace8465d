package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"insurance_predict/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		// form page
		r.Get("/", handler(s.getIndex))
		r.Post("/", handler(s.postIndex))

		r.Route("/v1", func(r chi.Router) {
			r.Post("/predictions", handler(s.postV1Prediction))
			r.Get("/features", handler(s.getV1Features))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
