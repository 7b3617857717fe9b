package logger

import (
	"log"

	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

// Init configures the process-wide logger. Production gets JSON output at
// info level, everything else gets the human-readable development config
// with debug enabled.
func Init(environment string) {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	sugar = l.Sugar()
}

func ensure() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// All functions take a message plus alternating key/value pairs.

func Debug(msg string, keysAndValues ...any) {
	ensure().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	ensure().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	ensure().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	ensure().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	ensure().Fatalw(msg, keysAndValues...)
}
