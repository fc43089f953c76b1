// Package logging builds the run-scoped file logger.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// New creates a logger writing timestamped lines to path. The file is
// truncated so each run's log stands alone. The caller owns the returned
// file handle and must close it when the run ends.
func New(path string) (zerolog.Logger, *os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	w := zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05",
	}
	return zerolog.New(w).With().Timestamp().Logger(), f, nil
}
