// Package logger configura zerolog para el servicio: JSON en producción,
// consola legible en desarrollo, y un campo "service" fijo en cada línea.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Service string // nombre del servicio, emitido en cada línea
	Env     string // development -> consola legible; cualquier otro -> JSON
	Level   string // trace, debug, info, warn, error (default info)
}

// Logger embebe zerolog.Logger: Info(), Error(), With(), etc. quedan
// disponibles directamente.
type Logger struct {
	zerolog.Logger
}

// New crea el logger raíz del servicio y lo instala también como logger
// global de zerolog para las librerías que lo usen.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()
	log.Logger = zl

	return &Logger{Logger: zl}
}

// Component devuelve un sublogger con el campo "component" fijo, para
// etiquetar las líneas de un subsistema (http, postgres, seed).
func (l *Logger) Component(name string) *Logger {
	return &Logger{Logger: l.With().Str("component", name).Logger()}
}
