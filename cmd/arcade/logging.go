package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	// logFile is the open --log-file, if any.
	logFile *os.File

	// appLogger is shared by the games and the terminal host.
	appLogger = log.New(io.Discard)
)

// newLogger builds the process logger from --log-level and --log-file.
// Interactive commands own the terminal, so without a file they log nowhere.
func newLogger(interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arcade",
	}), nil
}

func closeLogFile() {
	if logFile != nil {
		//nolint:errcheck // Nothing left to report to
		logFile.Close()
	}
}
