package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotel-backoffice/config"
	"hotel-backoffice/controllers"
	"hotel-backoffice/repository"
	"hotel-backoffice/routes"
	"hotel-backoffice/services"
)

func initLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func main() {
	cfg := config.Get()
	initLogger(cfg.Server.LogLevel)

	ctx := context.Background()
	mongoClient, db, err := config.ConnectMongo(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("document store connect failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("document store disconnect failed")
		}
	}()

	redisClient := config.ConnectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	statsService := services.NewStatsService(customerRepo, bookingRepo, redisClient,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	customerService := services.NewCustomerService(customerRepo, bookingRepo)
	bookingService := services.NewBookingService(bookingRepo)

	customerController := controllers.NewCustomerController(customerService, statsService)
	bookingController := controllers.NewBookingController(bookingService, statsService)
	statsController := controllers.NewStatsController(statsService)

	router := routes.SetupRouter(customerController, bookingController, statsController, cfg.Cors.Origins)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
