package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipdeck/pipdeck/internal/history"
	"github.com/pipdeck/pipdeck/internal/log"
	"github.com/pipdeck/pipdeck/internal/pip"
	"github.com/pipdeck/pipdeck/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var pipPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/pipdeck/config.yml)")
	flag.StringVar(&pipPath, "pip", "", "override path to the pip executable")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("pipdeck - pip package dashboard\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if pipPath != "" {
		cfg.PipPath = pipPath
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	if cfg.LogFile != "" {
		if err := log.OpenFile(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		} else {
			defer log.Close()
		}
		log.SetLevel(parseLogLevel(cfg.LogLevel))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	if err := tui.InitializeSkin(cfg.Skin, configDir(home)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	var hist *history.Log
	if cfg.HistoryFile != "" {
		hist, err = history.Open(cfg.HistoryFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (history disabled)\n", err)
			hist = nil
		} else {
			defer hist.Close()
		}
	}

	client := pip.NewClient(pip.NewRunner(cfg.PipPath))
	m := tui.NewModel(tui.Options{
		Client:       client,
		PipPath:      cfg.PipPath,
		PollInterval: cfg.PollInterval,
		History:      hist,
		ChartTopN:    cfg.ChartTopN,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
