package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"warehouse-screenshots/pkg/gallery"
)

// Load reads configuration. Precedence, highest first: WAREHOUSE_* environment
// variables, the YAML file at path (or config.yaml in DefaultConfigDir when path
// is empty and the file exists), then built-in defaults. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := gallery.DefaultOptions()
	v.SetDefault("locale", "uk-UA")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("library.dir", DefaultLibraryDir())
	v.SetDefault("gallery.fetch_limit", d.FetchLimit)
	v.SetDefault("gallery.max_screenshots", d.MaxScreenshots)
	v.SetDefault("gallery.match", d.Match)
}

// Options converts the gallery settings.
func (c GalleryConfig) Options() gallery.Options {
	return gallery.Options{
		FetchLimit:     c.FetchLimit,
		MaxScreenshots: c.MaxScreenshots,
		Match:          c.Match,
	}
}
