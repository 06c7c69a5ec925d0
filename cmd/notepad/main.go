package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"notepad/internal/app"
	"notepad/internal/config"
	"notepad/internal/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}
	defer closeLog()

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

func newLogger(cfg config.LogConfig) (logger.Logger, func(), error) {
	level := determineLogLevel(cfg.Level)

	var out io.Writer = os.Stdout
	closeFn := func() {}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	if cfg.JSON {
		return logger.NewZerolog(out, level), closeFn, nil
	}
	return logger.NewConsoleLogger(out, level, cfg.File != ""), closeFn, nil
}

// determineLogLevel lets LOG_LEVEL and DEBUG=1 override the configured level.
func determineLogLevel(configured string) logger.LogLevel {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return logger.ParseLevel(env)
	}
	if os.Getenv("DEBUG") == "1" {
		return logger.DebugLevel
	}
	return logger.ParseLevel(configured)
}
