package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// setupLogging routes logs to a file under dir when debug is set, otherwise discards them
// The terminal is in raw mode while the game runs, so nothing may reach stdout or stderr
// The returned file is nil when logging is disabled
func setupLogging(debug bool, dir string) (*slog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	if dir == "" {
		dir = constants.LogDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	logPath := filepath.Join(dir, constants.LogFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	// Third-party packages using the standard logger land in the same file
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("logging started", "pid", os.Getpid())
	return logger, f
}

// rotateLog renames logPath with a timestamp once it exceeds MaxLogSize
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= constants.MaxLogSize {
		return
	}

	ext := filepath.Ext(logPath)
	base := strings.TrimSuffix(logPath, ext)
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	os.Rename(logPath, rotated)
}
