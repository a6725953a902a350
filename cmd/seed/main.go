package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harramos25/GlamBook/internal/config"
	dbpkg "github.com/harramos25/GlamBook/internal/db"
	"github.com/harramos25/GlamBook/internal/logger"
	"github.com/harramos25/GlamBook/internal/seed"
)

func main() {
	cfg := config.Load()
	logger.Init("glambook-seed", cfg.Env, cfg.LogLevel)

	db := dbpkg.NewDB(cfg)
	defer dbpkg.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed.Run(ctx, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}
