package logger

import (
	"os"
	"sync"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/config"

	"github.com/rs/zerolog"
)

var (
	log  zerolog.Logger
	once sync.Once
)

func init() {
	// Default logger until Init runs, so package-level calls never panic.
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Init configures the global logger from the application config.
// In development logs are pretty-printed; elsewhere they are JSON.
func Init(cfg *config.Config) {
	once.Do(func() {
		level := zerolog.InfoLevel
		if cfg.App.Environment == "development" {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)

		if cfg.App.Environment == "development" {
			writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
			log = zerolog.New(writer).With().Timestamp().Logger()
			return
		}
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	})
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
