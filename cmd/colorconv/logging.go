package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// newLogger builds the command logger. Records go to stderr and, when
// cfg.File is set, to a size-rotated log file. The returned closer
// releases the file.
func newLogger(cfg LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	w := stderr
	var closer io.Closer = nopCloser{}
	if strings.TrimSpace(cfg.File) != "" {
		lj := &lumberjack.Logger{Filename: cfg.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		w = io.MultiWriter(stderr, lj)
		closer = lj
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		closer.Close()
		return nil, nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	return slog.New(h), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
