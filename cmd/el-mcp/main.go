package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/madprops/el/internal/config"
	"github.com/madprops/el/internal/element"
	"github.com/madprops/el/internal/logging"
	"github.com/madprops/el/internal/mcp"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func main() {
	if isTerminal() {
		fmt.Fprintln(os.Stderr, "el-mcp serves MCP over stdio and requires piped input.")
		fmt.Fprintln(os.Stderr, "For interactive lookups run 'el'.")
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	var cfgErr error
	if dir, err := config.DefaultDir(); err != nil {
		cfgErr = err
	} else if loaded, err := config.Load(dir); err != nil {
		cfgErr = err
	} else {
		cfg = loaded
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("using default config", zap.Error(cfgErr))
	}

	if err := mcp.Run(element.MustLoad(), cfg, logger, Version); err != nil {
		logger.Error("mcp server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
