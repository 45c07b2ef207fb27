package logger

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// gormWriter forwards gorm's formatted SQL log lines to zerolog.
type gormWriter struct {
	level zerolog.Level
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	log.WithLevel(w.level).Str("component", "gorm").Msgf(format, args...)
}

// NewGormLogger returns a gorm logger backed by zerolog. Debug mode logs every statement,
// otherwise only slow queries and errors.
func NewGormLogger(mode string) gormlogger.Interface {
	level := gormlogger.Warn
	writerLevel := zerolog.WarnLevel
	if mode == "debug" {
		level = gormlogger.Info
		writerLevel = zerolog.DebugLevel
	}
	return gormlogger.New(gormWriter{level: writerLevel}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
