package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"charity/internal/adapter/repo"
	"charity/internal/campaign"
	"charity/internal/db"
	"charity/internal/http/handlers"
	"charity/internal/http/httpapi"
	"charity/internal/infra"
	"charity/internal/ledger"
	"charity/internal/receipt"
	"charity/internal/report"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := db.EnsureSchema(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}

	runner := infra.NewSQLRunner(dbpool, logger)
	users := repo.NewUserRepository(runner)
	campaigns := repo.NewCampaignRepository(runner)
	donations := repo.NewDonationRepository(runner)
	reports := repo.NewReportRepository(runner)

	lifecycle := campaign.NewLifecycle(campaigns, logger)
	app := &handlers.App{
		Logger:    logger,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Users:     users,
		Ledger:    ledger.New(donations, users, lifecycle, logger),
		Campaigns: lifecycle,
		Reports:   report.NewEngine(reports, lifecycle),
		Receipts:  receipt.NewRenderer("Charity Zakat Donation Platform"),
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
