package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cardledger/cards-backend/internal/api"
	"github.com/cardledger/cards-backend/internal/config"
	"github.com/cardledger/cards-backend/internal/logger"
	"github.com/cardledger/cards-backend/internal/metrics"
	"github.com/cardledger/cards-backend/internal/repository/memory"
	"github.com/cardledger/cards-backend/internal/seed"
	"github.com/cardledger/cards-backend/internal/services"
	"github.com/cardledger/cards-backend/internal/worker"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos := memory.NewRepositories()
	seed.Load(log, repos.Customers, repos.Cards, cfg.SeedClientes, cfg.SeedTarjetas)

	wp := worker.NewPool(4)
	defer wp.Stop()

	customerSvc := services.NewCustomerService(repos.Customers)
	cardSvc := services.NewCardService(repos.Cards, repos.Ledger, repos.AuditLogs, wp)

	metrics.Init()
	r := api.NewRouter(cfg, customerSvc, cardSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
