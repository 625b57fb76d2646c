package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Skin is a named color palette. Custom skins live in
// <configDir>/skins/<name>.yml; fields left empty in the file keep the
// built-in default.
type Skin struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`
	Live       string `yaml:"live"`
	Warn       string `yaml:"warn"`
	Error      string `yaml:"error"`
}

func defaultSkin() Skin {
	return Skin{
		Background: "#0A1931",
		Text:       "#FFFFFF",
		Muted:      "#808080",
		Accent:     "#4A90D9",
		Live:       "#44FF44",
		Warn:       "#FFAA00",
		Error:      "#FF4444",
	}
}

// InitializeSkin loads the named skin and applies it to the shared
// palette. The empty name and "default" select the built-in skin.
func InitializeSkin(name, configDir string) error {
	if name == "" || name == "default" {
		applySkin(defaultSkin())
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading skin %q: %w", name, err)
	}

	var skin Skin
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return fmt.Errorf("parsing skin %q: %w", name, err)
	}

	applySkin(mergeSkin(defaultSkin(), skin))
	return nil
}

// mergeSkin overlays non-empty fields of over onto base.
func mergeSkin(base, over Skin) Skin {
	if over.Background != "" {
		base.Background = over.Background
	}
	if over.Text != "" {
		base.Text = over.Text
	}
	if over.Muted != "" {
		base.Muted = over.Muted
	}
	if over.Accent != "" {
		base.Accent = over.Accent
	}
	if over.Live != "" {
		base.Live = over.Live
	}
	if over.Warn != "" {
		base.Warn = over.Warn
	}
	if over.Error != "" {
		base.Error = over.Error
	}
	return base
}

func applySkin(skin Skin) {
	ColorNavy = lipgloss.Color(skin.Background)
	ColorWhite = lipgloss.Color(skin.Text)
	ColorGray = lipgloss.Color(skin.Muted)
	ColorBlue = lipgloss.Color(skin.Accent)
	ColorGreen = lipgloss.Color(skin.Live)
	ColorOrange = lipgloss.Color(skin.Warn)
	ColorRed = lipgloss.Color(skin.Error)
	rebuildStyles()
}
