package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harramos25/GlamBook/internal/audit"
	"github.com/harramos25/GlamBook/internal/config"
	dbpkg "github.com/harramos25/GlamBook/internal/db"
	"github.com/harramos25/GlamBook/internal/infra/broker"
	"github.com/harramos25/GlamBook/internal/infra/cache"
	"github.com/harramos25/GlamBook/internal/logger"
	"github.com/harramos25/GlamBook/internal/media"
	"github.com/harramos25/GlamBook/internal/routes"
	"github.com/harramos25/GlamBook/internal/timezone"
)

func main() {

	cfg := config.Load()
	logger.Init("glambook-api", cfg.Env, cfg.LogLevel)
	timezone.SetSalon(cfg.SalonTimezone)

	db := dbpkg.NewDB(cfg)
	defer dbpkg.Close(db)

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	sinks := []audit.Sink{audit.New(db)}
	if cfg.RabbitMQURL != "" {
		sinks = append(sinks, broker.NewPublisher(cfg.RabbitMQURL))
	}
	dispatcher := audit.NewDispatcher(sinks...)

	infra := routes.Infra{Audit: dispatcher}

	if cfg.CacheEnabled() {
		if client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); client != nil {
			defer client.Close()
			infra.Redis = client
		}
	}

	if cfg.MediaEnabled() {
		infra.Images = media.NewStore(media.NewS3Uploader(media.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKeyID:   cfg.S3AccessKeyID,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		}), media.DefaultMaxWidth)
	}

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, infra)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Bool("cache", infra.Redis != nil).
			Bool("media", infra.Images != nil).
			Bool("broker", cfg.RabbitMQURL != "").
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	// flush pending audit events before the database closes
	dispatcher.Close()
	log.Info().Msg("server stopped")
}
