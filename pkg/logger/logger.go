package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process-wide zerolog logger. Development gets a console
// writer, everything else writes JSON lines to stdout.
func New(level, appEnv string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if appEnv != "production" {
		console := zerolog.NewConsoleWriter()
		console.Out = os.Stdout
		console.TimeFormat = time.RFC3339
		out = console
	}

	return zerolog.New(out).Level(parsed).With().Timestamp().Logger()
}
