// Package config loads boxel demo settings and box layouts from YAML.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"boxel"
)

// Drivers accepted by the demo.
const (
	DriverTerm  = "term"
	DriverTcell = "tcell"
	DriverTea   = "tea"
)

// Config is the demo configuration.
type Config struct {
	Driver   string `mapstructure:"driver"`
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
	Boxes    []Box  `mapstructure:"boxes"`
}

// Box is one box of a layout file.
type Box struct {
	ID          string   `mapstructure:"id"`
	Under       string   `mapstructure:"under"`
	X           int      `mapstructure:"x"`
	Y           int      `mapstructure:"y"`
	Width       int      `mapstructure:"width"`
	Height      int      `mapstructure:"height"`
	Border      string   `mapstructure:"border"`
	Style       string   `mapstructure:"style"`
	BorderColor string   `mapstructure:"border_color"`
	Background  string   `mapstructure:"background"`
	TextColor   string   `mapstructure:"text_color"`
	Content     []string `mapstructure:"content"`
	Validate    bool     `mapstructure:"validate"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("driver", DriverTerm)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// Load reads the file at path, if any, into a Config. Values already bound
// on v (flags, defaults) apply when the file does not set them.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the driver name and every box.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverTerm, DriverTcell, DriverTea:
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
	var errs []error
	for i, b := range c.Boxes {
		if _, err := b.DivOptions(); err != nil {
			errs = append(errs, fmt.Errorf("box %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// DivOptions converts the box into a draw request. An empty border means
// all borders; an empty style means rounded.
func (b Box) DivOptions() (boxel.DivOptions, error) {
	border := boxel.BorderAll
	if strings.TrimSpace(b.Border) != "" {
		f, err := boxel.ParseBorderFlags(b.Border)
		if err != nil {
			return boxel.DivOptions{}, err
		}
		border = f
	}
	style, err := boxel.ParseBorderStyle(b.Style)
	if err != nil {
		return boxel.DivOptions{}, err
	}

	d := boxel.DivOptions{
		ID:       b.ID,
		Under:    b.Under,
		Position: boxel.Point{X: b.X, Y: b.Y},
		Size:     boxel.Size{X: b.Width, Y: b.Height},
		Border:   border,
		Style:    style,
		Content:  b.Content,
		Validate: b.Validate,
	}
	for _, c := range []struct {
		value string
		dst   **boxel.Color
	}{
		{b.BorderColor, &d.BorderColor},
		{b.Background, &d.BackgroundColor},
		{b.TextColor, &d.TextColor},
	} {
		if c.value == "" {
			continue
		}
		col, err := boxel.ParseColor(c.value)
		if err != nil {
			return boxel.DivOptions{}, err
		}
		*c.dst = &col
	}
	return d, nil
}

// DivOptions converts every box of the layout.
func (c *Config) DivOptions() ([]boxel.DivOptions, error) {
	divs := make([]boxel.DivOptions, 0, len(c.Boxes))
	for i, b := range c.Boxes {
		d, err := b.DivOptions()
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		divs = append(divs, d)
	}
	return divs, nil
}
