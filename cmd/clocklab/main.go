package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clocklab/clocklab/internal/clock"
	"github.com/clocklab/clocklab/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var skinName string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/clocklab/config.yml)")
	flag.StringVar(&skinName, "skin", "", "override skin name")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Clocklab - Render Lifecycle Demo\n")
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

	if skinName != "" {
		cfg.Skin = skinName
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "clocklab")
	if err := tui.InitializeSkin(cfg.Skin, configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	mode, err := parseMode(cfg.DefaultMode)
	if err != nil {
		return err
	}

	dashboard := tui.NewDashboardModel(mode, cfg.UpdateInterval, cfg.Debug, clock.SystemSource{})
	clockPage := tui.NewDashboardPage(dashboard)
	aboutPage := tui.NewAboutPage(tui.DefaultKeyMap())
	app := tui.NewApp(clockPage, aboutPage)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
