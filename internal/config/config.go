package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/polyterm/internal/poly"
)

const (
	DefaultCapacity   = poly.DefaultCapacity
	DefaultDataDir    = ".polyterm"
	DefaultTheme      = "neon"
	DefaultPlotHeight = 10
	DefaultPlotWidth  = 60
)

// Themes lists the accepted values of Config.Theme.
var Themes = []string{"plain", "neon", "mono"}

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Capacity int        `yaml:"capacity"`
	Strict   bool       `yaml:"strict"`
	DataDir  string     `yaml:"data_dir"`
	Theme    string     `yaml:"theme"`
	Plot     PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		DataDir:  DefaultDataDir,
		Theme:    DefaultTheme,
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
	}
}

// Load reads a yaml file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: capacity %d must be at least 1", ErrInvalidConfig, c.Capacity)
	}
	if c.Plot.Height < 1 || c.Plot.Width < 1 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	}
	if !knownTheme(c.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Theme)
	}
	return nil
}

// NewPolynomial returns an empty polynomial sized by c.Capacity.
func (c *Config) NewPolynomial() (*poly.Polynomial, error) {
	return poly.New(c.Capacity)
}

func knownTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
