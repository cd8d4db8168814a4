package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// dbLogger forwards gorm log output to zerolog.
type dbLogger struct {
	Logger zerolog.Logger
}

// LogMode is a no-op, the level of the underlying zerolog logger applies.
func (l *dbLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *dbLogger) Info(_ context.Context, msg string, args ...any) {
	l.Logger.Info().Msgf(msg, args...)
}

func (l *dbLogger) Warn(_ context.Context, msg string, args ...any) {
	l.Logger.Warn().Msgf(msg, args...)
}

func (l *dbLogger) Error(_ context.Context, msg string, args ...any) {
	l.Logger.Error().Msgf(msg, args...)
}

// Trace logs every query with its duration and affected row count.
// Not-found results are expected and logged at debug level like any
// other query.
func (l *dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := l.Logger.Debug()
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("elapsed", time.Since(begin)).
		Msg("database query")
}
