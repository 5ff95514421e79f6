package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// skinFile is the YAML shape of ~/.config/pipdeck/skins/<name>.yml.
// Empty fields keep their built-in default.
type skinFile struct {
	Navy   string `yaml:"navy"`
	White  string `yaml:"white"`
	Gray   string `yaml:"gray"`
	Accent string `yaml:"accent"`
	Green  string `yaml:"green"`
	Yellow string `yaml:"yellow"`
	Red    string `yaml:"red"`
}

// InitializeSkin loads the named skin from configDir/skins and applies
// it to the package palette. The "default" skin is the built-in one.
func InitializeSkin(name, configDir string) error {
	if name == "" || name == "default" {
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("skin %s: %w", name, err)
	}

	var skin skinFile
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return fmt.Errorf("skin %s: %w", name, err)
	}

	applySkin(skin)
	rebuildStyles()
	return nil
}

func applySkin(skin skinFile) {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&ColorNavy, skin.Navy)
	set(&ColorWhite, skin.White)
	set(&ColorGray, skin.Gray)
	set(&ColorAccent, skin.Accent)
	set(&ColorGreen, skin.Green)
	set(&ColorYellow, skin.Yellow)
	set(&ColorRed, skin.Red)
}

// rebuildStyles re-derives the cached styles from the current palette.
func rebuildStyles() {
	headerStyle = headerStyle.Foreground(ColorWhite).Background(ColorNavy)
	tableHeaderStyle = tableHeaderStyle.Foreground(ColorAccent)
	outdatedTagStyle = outdatedTagStyle.Foreground(ColorYellow)
	loadingStyle = loadingStyle.Foreground(ColorGray)
	errorStyle = errorStyle.Foreground(ColorRed)
	successStyle = successStyle.Foreground(ColorGreen)
	warningStyle = warningStyle.Foreground(ColorYellow)
	statusBarStyle = statusBarStyle.Foreground(ColorWhite).Background(ColorNavy)
	modalBorderStyle = modalBorderStyle.BorderForeground(ColorAccent)
	chartTitleStyle = chartTitleStyle.Foreground(ColorAccent)
}
