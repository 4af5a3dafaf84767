package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"reversi/internal/config"

	"github.com/rs/zerolog"
)

// New builds the process logger. With a log file configured, JSON lines are
// appended to it; otherwise human-readable lines go to console.
func New(cfg config.Config, console io.Writer, color bool) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
		return logger, file.Close, nil
	}

	writer := zerolog.ConsoleWriter{
		Out:        console,
		NoColor:    !color,
		TimeFormat: time.TimeOnly,
	}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logger, func() error { return nil }, nil
}
