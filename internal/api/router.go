package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardledger/cards-backend/internal/api/handlers"
	"github.com/cardledger/cards-backend/internal/config"
	"github.com/cardledger/cards-backend/internal/middleware"
	"github.com/cardledger/cards-backend/internal/services"
)

func NewRouter(cfg config.Config, cs *services.CustomerService, ks *services.CardService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	customers := handlers.NewCustomerHandler(cs)
	cards := handlers.NewCardHandler(ks)

	r.Route("/api", func(r chi.Router) {
		r.Route("/clientes", func(r chi.Router) {
			r.Get("/", customers.List)
			r.Post("/", customers.Create)
			r.Get("/{id}", customers.Get)
			r.Put("/{id}", customers.Update)
			r.Delete("/{id}", customers.Delete)
		})

		r.Route("/tarjetas/{numero}", func(r chi.Router) {
			r.Get("/saldo", cards.Saldo)
			r.Post("/pagar", cards.Pagar)
			r.Get("/movimientos", cards.Movimientos)
			r.Put("/bloquear", cards.Bloquear)
			r.Put("/cambiar-pin", cards.CambiarPin)
			r.Put("/renovar", cards.Renovar)
			r.Put("/aumentar-limite", cards.AumentarLimite)
			r.Post("/consumo", cards.Consumo)
		})
	})

	return r
}
