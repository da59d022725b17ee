package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/madprops/el/internal/config"
	"github.com/madprops/el/internal/element"
	"github.com/madprops/el/internal/logging"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// loadConfig reads ~/.el/config.json, falling back to defaults on any error.
func loadConfig() (*config.Config, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return config.DefaultConfig(), fmt.Errorf("could not determine home directory: %w", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return config.DefaultConfig(), fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// stdoutWidth returns the terminal width of stdout, or 0 when stdout is not a terminal.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func main() {
	cfg, cfgErr := loadConfig()

	logger := logging.New(cfg.LogLevel, os.Stderr)
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("using default config", zap.Error(cfgErr))
	}

	app := newCLIApp(appDeps{
		elements:  element.MustLoad(),
		cfg:       cfg,
		logger:    logger,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		termWidth: stdoutWidth,
	})
	if err := app.Run(positionalArgs(os.Args)); err != nil {
		_ = logger.Sync()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
