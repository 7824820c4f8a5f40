// Package logger wraps zap with lumberjack file rotation and a handful of
// shorthand helpers used across the codebase.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"paylink/pkg/app"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global zap logger, initialized by InitLogger.
var Logger *zap.Logger

// InitLogger sets up the logging system.
//
// Parameters:
// - filename: log file path
// - maxSize: max size per log file, in MB
// - maxBackup: how many rotated files to keep
// - maxAge: how many days to keep rotated files
// - compress: whether rotated files are gzipped
// - logType: "daily" for per-day files, "single" for one file
// - level: debug, info, warn, error or fatal
func InitLogger(filename string, maxSize, maxBackup, maxAge int, compress bool, logType string, level string) {
	writeSyncer := getLogWriter(filename, maxSize, maxBackup, maxAge, compress, logType)

	logLevel := new(zapcore.Level)
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		fmt.Println("log level config error, expected one of: debug, info, warn, error, fatal")
		*logLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(getEncoder(), writeSyncer, logLevel)

	Logger = zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zap.ErrorLevel),
	)

	zap.ReplaceGlobals(Logger)
}

func getEncoder() zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// readable console output when developing locally
	if app.IsLocal() {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zapcore.NewJSONEncoder(encoderConfig)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func getLogWriter(filename string, maxSize, maxBackup, maxAge int, compress bool, logType string) zapcore.WriteSyncer {
	if logType == "daily" {
		logname := time.Now().Format("2006-01-02.log")
		filename = strings.ReplaceAll(filename, "logs.log", logname)
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: maxBackup,
		MaxAge:     maxAge,
		Compress:   compress,
	}

	if app.IsLocal() {
		return zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), zapcore.AddSync(lumberJackLogger))
	}
	return zapcore.AddSync(lumberJackLogger)
}

// Dump pretty-prints a value for debugging, second argument is an optional tag.
func Dump(value interface{}, msg ...string) {
	valueString := jsonString(value)
	if len(msg) > 0 {
		getLogger().Warn("Dump", zap.String(msg[0], valueString))
	} else {
		getLogger().Warn("Dump", zap.String("data", valueString))
	}
}

// LogIf logs an error-level entry when err is not nil.
func LogIf(err error) {
	if err != nil {
		getLogger().Error("Error Occurred:", zap.Error(err))
	}
}

// LogWarnIf logs a warn-level entry when err is not nil.
func LogWarnIf(err error) {
	if err != nil {
		getLogger().Warn("Error Occurred:", zap.Error(err))
	}
}

// Debug logs debug-level messages with structured fields.
func Debug(moduleName string, fields ...zap.Field) {
	getLogger().Debug(moduleName, fields...)
}

// Info logs info-level messages with structured fields.
func Info(moduleName string, fields ...zap.Field) {
	getLogger().Info(moduleName, fields...)
}

// Warn logs warn-level messages with structured fields.
func Warn(moduleName string, fields ...zap.Field) {
	getLogger().Warn(moduleName, fields...)
}

// Error logs error-level messages with structured fields.
func Error(moduleName string, fields ...zap.Field) {
	getLogger().Error(moduleName, fields...)
}

// Fatal logs the message and exits the process.
func Fatal(moduleName string, fields ...zap.Field) {
	getLogger().Fatal(moduleName, fields...)
}

// DebugString logs a module/action/message triple at debug level.
func DebugString(moduleName, name, msg string) {
	getLogger().Debug(moduleName, zap.String(name, msg))
}

// InfoString logs a module/action/message triple at info level.
func InfoString(moduleName, name, msg string) {
	getLogger().Info(moduleName, zap.String(name, msg))
}

// WarnString logs a module/action/message triple at warn level.
func WarnString(moduleName, name, msg string) {
	getLogger().Warn(moduleName, zap.String(name, msg))
}

// ErrorString logs a module/action/message triple at error level.
func ErrorString(moduleName, name, msg string) {
	getLogger().Error(moduleName, zap.String(name, msg))
}

// ErrorJSON marshals value and logs it at error level.
func ErrorJSON(moduleName, name string, value interface{}) {
	getLogger().Error(moduleName, zap.String(name, jsonString(value)))
}

// getLogger tolerates use before InitLogger (tests, early bootstrap).
func getLogger() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}

func jsonString(value interface{}) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%+v", value)
	}
	return string(b)
}
