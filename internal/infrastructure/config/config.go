package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Log     LogConfig
	Dataset DatasetConfig
	Views   ViewsConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string `validate:"omitempty,oneof=development staging production"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"omitempty,oneof=debug info warn error"`
	Format string `validate:"omitempty,oneof=json console"`
	Output string
}

// DatasetConfig locates the raw record collections the engine composes over
type DatasetConfig struct {
	// Dir is the directory holding one <collection>.json file per collection
	Dir string `validate:"required"`
}

// ViewsConfig controls view composition and output
type ViewsConfig struct {
	// LocationUsages restricts location views to these usage kinds; empty means all
	LocationUsages []string
	// Output selects what the CLI emits: the full view set or just the summary
	Output string `validate:"omitempty,oneof=views summary"`
	// Pretty toggles indented JSON output
	Pretty bool
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with STOCKVIEW_ prefix (e.g. STOCKVIEW_DATASET_DIR)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/stockview")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("STOCKVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Dataset: DatasetConfig{
			Dir: v.GetString("dataset.dir"),
		},
		Views: ViewsConfig{
			LocationUsages: v.GetStringSlice("views.location_usages"),
			Output:         v.GetString("views.output"),
			Pretty:         v.GetBool("views.pretty"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "stockview"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
	if cfg.Dataset.Dir == "" {
		cfg.Dataset.Dir = "./data"
	}
	if cfg.Views.Output == "" {
		cfg.Views.Output = "views"
	}
}

// validate checks the assembled configuration against its struct tags
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
