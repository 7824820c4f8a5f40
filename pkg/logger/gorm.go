package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes gorm's log output into zap.
type GormLogger struct {
	ZapLogger     *zap.Logger
	SlowThreshold time.Duration
}

// NewGormLogger builds the gorm logger adapter used by database.Connect.
func NewGormLogger() GormLogger {
	return GormLogger{
		ZapLogger:     getLogger(),
		SlowThreshold: 200 * time.Millisecond,
	}
}

// LogMode implements gormlogger.Interface. Level is driven by zap, ignored here.
func (l GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

// Info implements gormlogger.Interface.
func (l GormLogger) Info(ctx context.Context, str string, args ...interface{}) {
	l.logger().Sugar().Debugf(str, args...)
}

// Warn implements gormlogger.Interface.
func (l GormLogger) Warn(ctx context.Context, str string, args ...interface{}) {
	l.logger().Sugar().Warnf(str, args...)
}

// Error implements gormlogger.Interface.
func (l GormLogger) Error(ctx context.Context, str string, args ...interface{}) {
	l.logger().Sugar().Errorf(str, args...)
}

// Trace implements gormlogger.Interface, classifying queries by outcome and
// duration.
func (l GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	logFields := []zap.Field{
		zap.String("sql", sql),
		zap.String("time", fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/1e6)),
		zap.Int64("rows", rows),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger().Error("Database Error", logFields...)
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold:
		l.logger().Warn("Database Slow Log", logFields...)
	default:
		l.logger().Debug("Database Query", logFields...)
	}
}

// logger is caller-skip adjusted so log entries point at the gorm call site.
func (l GormLogger) logger() *zap.Logger {
	return l.ZapLogger.WithOptions(zap.AddCallerSkip(2))
}
