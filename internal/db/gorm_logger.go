package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/harramos25/GlamBook/internal/logger"
)

// GormLogger forwards gorm's SQL trace to the global zerolog logger.
type GormLogger struct {
	SlowThreshold time.Duration
	level         gormlogger.LogLevel
}

func NewGormLogger(slow time.Duration) *GormLogger {
	return &GormLogger{SlowThreshold: slow, level: gormlogger.Warn}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		logger.FromContext(ctx).Info().Msgf(msg, args...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		logger.FromContext(ctx).Warn().Msgf(msg, args...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		logger.FromContext(ctx).Error().Msgf(msg, args...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	zl := logger.FromContext(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		zl.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		zl.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		zl.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
