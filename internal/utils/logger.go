package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	debug   = "debug"
	warning = "warning"
	info    = "info"
	error_  = "error"
	fatal   = "fatal"
)

// Ротация файла логов
const (
	logMaxSizeMB  = 100
	logMaxBackups = 7
	logMaxAgeDays = 7
)

// Log доступен сразу, до InitLogger (нужно тестам и cmd/bulk)
var Log = logrus.New()

// InitLogger настраивает глобальный логгер.
// Если logFile не пустой, логи дублируются в файл с ротацией.
func InitLogger(logLevel, logFile string) *logrus.Logger {
	Log = logrus.New()

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if logFile != "" {
		Log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
			Compress:   true,
		}))
	}

	Log.SetLevel(parseLevel(logLevel))

	return Log
}

func parseLevel(logLevel string) logrus.Level {
	switch logLevel {
	case debug:
		return logrus.DebugLevel
	case warning:
		return logrus.WarnLevel
	case info:
		return logrus.InfoLevel
	case error_:
		return logrus.ErrorLevel
	case fatal:
		return logrus.FatalLevel
	default:
		return logrus.ErrorLevel
	}
}
