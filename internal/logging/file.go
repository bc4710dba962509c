package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig enables logging to a rotating file in addition to stderr.
type FileConfig struct {
	Dir        string // empty disables file logging
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

const logFileName = "formbridge.log"

// NewWithFile builds a logger writing to cfg.Output (stderr by default) and,
// when fc.Dir is set, to a rotating JSON log file. The returned cleanup
// closes the file.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if fc.Dir == "" {
		return New(cfg), func() {}, nil
	}

	rotator, err := NewLogRotator(fc.Dir, logFileName, fc.MaxSizeMB, fc.MaxBackups, fc.MaxAgeDays, fc.Compress)
	if err != nil {
		return New(cfg), func() {}, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	var console io.Writer = out
	if cfg.Format == "console" {
		console = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, func() { _ = rotator.Close() }, nil
}
