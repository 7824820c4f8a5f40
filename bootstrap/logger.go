package bootstrap

import (
	"paylink/pkg/config"
	"paylink/pkg/logger"
)

// SetupLogger initializes the logging system from the log.* config section.
//
// - filename: log file path
// - max_size: max size per file in MB
// - max_backup: rotated files to keep
// - max_age: days to keep rotated files
// - compress: gzip rotated files
// - type: daily or single
// - level: debug, info, warn, error, fatal
func SetupLogger() {
	logger.InitLogger(
		config.GetString("log.filename"),
		config.GetInt("log.max_size"),
		config.GetInt("log.max_backup"),
		config.GetInt("log.max_age"),
		config.GetBool("log.compress"),
		config.GetString("log.type"),
		config.GetString("log.level"),
	)
}
