package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	// Set output untuk InfoLogger ke stdout
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Set output untuk ErrorLogger ke stderr
	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}

// SetLogLevel adjusts the info logger; unknown levels keep the current one.
func SetLogLevel(level string) {
	if InfoLogger == nil {
		InitLogger()
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		ErrorLogger.Warnf("unknown log level %q, keeping %s", level, InfoLogger.GetLevel())
		return
	}
	InfoLogger.SetLevel(lvl)
}

// Info and Error return usable loggers even when InitLogger was never called,
// so library code can log from tests.
func Info() *logrus.Logger {
	if InfoLogger == nil {
		InitLogger()
	}
	return InfoLogger
}

func Error() *logrus.Logger {
	if ErrorLogger == nil {
		InitLogger()
	}
	return ErrorLogger
}
