package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/harramos25/GlamBook/internal/config"
	"github.com/harramos25/GlamBook/internal/models"
)

// Open connects through pgx's database/sql driver and hands the pool to gorm.
func Open(cfg *config.Config) (*gorm.DB, error) {
	pgxCfg, err := pgx.ParseConfig(cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	sqlDB := stdlib.OpenDB(*pgxCfg)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		PrepareStmt: true,
		Logger:      NewGormLogger(200 * time.Millisecond),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Stylist{},
		&models.Service{},
		&models.Booking{},
		&models.AuditLog{},
	)
}

// NewDB opens and migrates, exiting on failure. Used by the binaries.
func NewDB(cfg *config.Config) *gorm.DB {
	gdb, err := Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := Migrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}
	return gdb
}

func Close(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
}

var _ gormlogger.Interface = (*GormLogger)(nil)
