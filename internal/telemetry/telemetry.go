// Package telemetry sets up the process-wide zerolog logger used by
// cmd/mvccsh. The engine in pkg/mvcc never
// depends on this package; it accepts a plain *zerolog.Logger through
// Database.WithLogger so it stays usable from tests and embedders that
// want no logging at all.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
}

// Init configures the package-level logger's level and output format,
// the way marmot's main() builds its global logger from config before
// anything else runs.
func Init(levelName string, jsonOutput bool) error {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return err
	}

	var writer io.Writer = zerolog.NewConsoleWriter()
	if jsonOutput {
		writer = os.Stdout
	}

	logger = zerolog.New(writer).With().Timestamp().Logger().Level(level)
	return nil
}

// Log returns the process-wide logger.
func Log() *zerolog.Logger {
	return &logger
}
