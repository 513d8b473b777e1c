package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/sonrisashollywood/whatsapp-assistant/internal/api/router"
	appconfig "github.com/sonrisashollywood/whatsapp-assistant/internal/config"
	"github.com/sonrisashollywood/whatsapp-assistant/internal/dialog"
	"github.com/sonrisashollywood/whatsapp-assistant/internal/http/handlers"
	"github.com/sonrisashollywood/whatsapp-assistant/internal/koibox"
	observemetrics "github.com/sonrisashollywood/whatsapp-assistant/internal/observability/metrics"
	"github.com/sonrisashollywood/whatsapp-assistant/internal/profile"
	"github.com/sonrisashollywood/whatsapp-assistant/pkg/logging"
)

func main() {
	// .env is optional; in deployment the environment wins.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting sonrisas whatsapp assistant",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	redisOpts, err := redis.ParseURL(cfg.KVURL)
	if err != nil {
		logger.Error("invalid KV_URL", "error", err)
		os.Exit(1)
	}
	if cfg.RedisPassword != "" {
		redisOpts.Password = cfg.RedisPassword
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	store := profile.NewRedisStore(redisClient)
	bookingClient := koibox.NewClient(cfg.BookingURL, cfg.BookingAPIKey, cfg.BookingTimeout, logger)
	metrics := observemetrics.NewWebhookMetrics(nil)

	dialogHandler := dialog.NewHandler(store, bookingClient, logger, metrics)
	webhookHandler := handlers.NewWhatsAppWebhookHandler(dialogHandler, logger, metrics)

	r := router.New(&router.Config{
		Logger:         logger,
		Webhook:        webhookHandler,
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
