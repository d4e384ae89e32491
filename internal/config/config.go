package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string       `yaml:"env" env:"PALEOCHART_ENV" env-default:"local"`
	Source SourceConfig `yaml:"source"`
	Canvas CanvasConfig `yaml:"canvas"`
	Log    LogConfig    `yaml:"log"`
}

type SourceConfig struct {
	URL         string        `yaml:"url" env:"PALEOCHART_URL" env-default:"https://tinyurl.com/k4chnujx"`
	Timeout     time.Duration `yaml:"timeout" env:"PALEOCHART_TIMEOUT" env-default:"0s"`
	MaxRecords  int           `yaml:"max_records" env-default:"2500"`
	MinYears    float64       `yaml:"min_years" env-default:"0"`
	MaxYears    float64       `yaml:"max_years" env-default:"2500"`
	ValidateAll bool          `yaml:"validate_all" env:"PALEOCHART_VALIDATE_ALL" env-default:"false"`
}

type CanvasConfig struct {
	Width    float64 `yaml:"width" env-default:"980"`
	Height   float64 `yaml:"height" env-default:"670"`
	Margin   float64 `yaml:"margin" env-default:"50"`
	Overscan float64 `yaml:"overscan" env-default:"100"`
	MinZoom  float64 `yaml:"min_zoom" env-default:"1"`
	MaxZoom  float64 `yaml:"max_zoom" env-default:"10"`
}

type LogConfig struct {
	File string `yaml:"file" env:"PALEOCHART_LOG_FILE"`
}

// Load reads the config file at path when it is set, and the environment
// otherwise. Defaults apply in both cases.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects bounds the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Source.MaxRecords <= 0 {
		errs = append(errs, fmt.Errorf("source.max_records must be positive, got %d", c.Source.MaxRecords))
	}
	if c.Source.MinYears > c.Source.MaxYears {
		errs = append(errs, fmt.Errorf("source.min_years %g is above max_years %g", c.Source.MinYears, c.Source.MaxYears))
	}
	if c.Canvas.Width <= 2*c.Canvas.Margin || c.Canvas.Height <= 2*c.Canvas.Margin {
		errs = append(errs, errors.New("canvas is smaller than its margins"))
	}
	if c.Canvas.MinZoom <= 0 || c.Canvas.MinZoom > c.Canvas.MaxZoom {
		errs = append(errs, fmt.Errorf("canvas zoom extent [%g, %g] is invalid", c.Canvas.MinZoom, c.Canvas.MaxZoom))
	}
	if c.Canvas.Overscan < 0 {
		errs = append(errs, errors.New("canvas.overscan must not be negative"))
	}
	return errors.Join(errs...)
}

// ResolvePath prefers the -config flag value and falls back to CONFIG_PATH.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}
