// Package config loads application settings from defaults, an optional YAML
// file and WAREHOUSE_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the configuration directory name.
	AppName = "warehouse-screenshots"

	// EnvPrefix prefixes every environment override, e.g. WAREHOUSE_LIBRARY_DIR.
	EnvPrefix = "WAREHOUSE"

	// FileName is the config file looked up in the config directory.
	FileName = "config.yaml"
)

// Config holds all application configuration.
type Config struct {
	Locale  string        `mapstructure:"locale" validate:"required,bcp47_language_tag"`
	Log     LogConfig     `mapstructure:"log"`
	Library LibraryConfig `mapstructure:"library"`
	Gallery GalleryConfig `mapstructure:"gallery"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// LibraryConfig points at the photo library.
type LibraryConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// GalleryConfig bounds the screenshot fetch.
type GalleryConfig struct {
	FetchLimit     int    `mapstructure:"fetch_limit" validate:"gt=0,lte=1000"`
	MaxScreenshots int    `mapstructure:"max_screenshots" validate:"gt=0,ltefield=FetchLimit"`
	Match          string `mapstructure:"match" validate:"required"`
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/warehouse-screenshots, falling
// back to $HOME/.config/warehouse-screenshots.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultLibraryDir returns where the platform keeps pictures.
func DefaultLibraryDir() string {
	if runtime.GOOS == "android" {
		return "/sdcard/Pictures/Screenshots"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "Pictures"
	}
	return filepath.Join(home, "Pictures")
}
