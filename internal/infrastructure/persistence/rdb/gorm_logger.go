package rdb

import (
	stdlog "log"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm/logger"
)

// newGormLogger 把GORM的SQL日志写到zerolog
// log_sql关闭时静默
func newGormLogger(log zerolog.Logger, logSQL bool) logger.Interface {
	level := logger.Silent
	if logSQL {
		level = logger.Info
	}

	w := log.With().Str("component", "gorm").Logger()
	return logger.New(stdlog.New(w, "", 0), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
