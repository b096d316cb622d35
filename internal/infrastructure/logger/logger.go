package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

func init() {
	Info = log.New(os.Stdout, "INFO: ", logFlags)
	Error = log.New(os.Stdout, "ERROR: ", logFlags)
	Debug = log.New(io.Discard, "DEBUG: ", logFlags)
	Warn = log.New(os.Stdout, "WARN: ", logFlags)
}

// SetLevel silences every logger below level. Unknown levels mean "info".
func SetLevel(level string) {
	SetOutput(os.Stdout, level)
}

// SetOutput points the enabled loggers at w and the rest at io.Discard.
func SetOutput(w io.Writer, level string) {
	rank := levelRank(level)
	for i, l := range []*log.Logger{Debug, Info, Warn, Error} {
		if i >= rank {
			l.SetOutput(w)
		} else {
			l.SetOutput(io.Discard)
		}
	}
}

func levelRank(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return 0
	case "warn", "warning":
		return 2
	case "error":
		return 3
	default:
		return 1
	}
}
