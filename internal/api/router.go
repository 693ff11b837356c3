package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Route("/v1/credits", func(r chi.Router) {
			r.Use(mw.AuthHeaders)

			r.Get("/", h.Credits)
			r.Post("/", h.CreateCredit)

			r.Route("/number/{creditNumber}", func(r chi.Router) {
				r.Get("/", h.CreditByNumber)
				r.Post("/payments", h.ProcessPayment)
				r.Get("/balance", h.CreditBalance)
			})

			r.Get("/customers/{customerId}/product-eligibility", h.CheckEligibility)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.CreditByID)
				r.Put("/", h.UpdateCredit)
				r.Patch("/activate", h.ActivateCredit)
				r.Patch("/deactivate", h.DeactivateCredit)

				r.With(mw.RequireAdmin).Delete("/", h.DeleteCredit)
			})
		})
	})

	return mux
}
