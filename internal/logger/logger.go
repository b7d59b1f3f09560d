// ABOUTME: Structured diagnostic logging to an XDG state file.
// ABOUTME: Keeps stdout free for the interactive shell; --debug mirrors to stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FilePath returns the log file path following the XDG spec.
func FilePath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, _ := os.UserHomeDir()
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "fitness", "fitness.log")
}

// Setup builds a JSON logger writing to the log file, plus stderr when debug
// is set. The returned close function releases the file handle.
// File errors are not fatal: logging degrades to stderr or is discarded.
func Setup(debug bool) (*slog.Logger, func() error) {
	var writers []io.Writer
	closeFn := func() error { return nil }

	file, err := openLogFile(FilePath())
	if err != nil {
		if debug {
			fmt.Fprintf(os.Stderr, "File logging disabled: %v\n", err)
		}
	} else {
		writers = append(writers, file)
		closeFn = file.Close
	}

	level := slog.LevelInfo
	if debug {
		writers = append(writers, os.Stderr)
		level = slog.LevelDebug
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		return slog.New(slog.DiscardHandler), closeFn
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeFn
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
