// Package main is the entry point for the mite editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/mite/internal/app"
	"github.com/dshills/mite/internal/config"
	"github.com/dshills/mite/internal/input"
	"github.com/dshills/mite/internal/syntax"
	"github.com/dshills/mite/internal/terminal"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "config file path")
	logPath := flag.String("log", "", "log file path (overrides config)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("mite %s\n", version)
		return 0
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}

	logger, logFile, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	langs := syntax.Builtin()
	if cfg.RulesDir != "" {
		langs = append(langs, syntax.LoadRuleDir(cfg.RulesDir, func(path string, err error) {
			logger.Warn("skipping syntax rule file %s: %v", path, err)
		})...)
	}

	term, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	editor, err := app.New(app.Options{
		Terminal:  term,
		Keys:      input.NewDecoder(term),
		Path:      flag.Arg(0),
		Config:    cfg,
		Languages: langs,
		Logger:    logger,
		Version:   version,
	})
	if err != nil {
		term.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	runErr := editor.Run()

	// Restore the terminal before any diagnostic output.
	if err := term.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: restoring terminal: %v\n", err)
		return 1
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

// openLogger builds the application logger. Logging is disabled unless a
// log file is configured; the terminal itself is never a log sink.
func openLogger(cfg config.Config) (*app.Logger, *os.File, error) {
	if cfg.LogFile == "" {
		return app.NullLogger, nil, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return app.NewLogger(f, app.ParseLogLevel(cfg.LogLevel)), f, nil
}
