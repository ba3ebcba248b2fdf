package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/radar"
	"github.com/gogpu/radar/icon"
)

// Config is the chart description read from a YAML, JSON or TOML file.
type Config struct {
	Width      float64           `mapstructure:"width"`
	Height     float64           `mapstructure:"height"`
	Levels     int               `mapstructure:"levels"`
	Format     string            `mapstructure:"format"`
	Output     string            `mapstructure:"output"`
	Skip       bool              `mapstructure:"skip_degenerate"`
	Categories []string          `mapstructure:"categories"`
	Series     []SeriesConfig    `mapstructure:"series"`
	Markers    *MarkersConfig    `mapstructure:"markers"`
	Icons      map[string]string `mapstructure:"icons"`
}

type SeriesConfig struct {
	Name    string    `mapstructure:"name"`
	Role    string    `mapstructure:"role"`
	Values  []float64 `mapstructure:"values"`
	Stroke  string    `mapstructure:"stroke"`
	Fill    string    `mapstructure:"fill"`
	Opacity float64   `mapstructure:"opacity"`
	Width   float64   `mapstructure:"width"`
}

type MarkersConfig struct {
	SymbolRatio float64       `mapstructure:"symbol_ratio"`
	Layers      []LayerConfig `mapstructure:"layers"`
}

type LayerConfig struct {
	Name   string       `mapstructure:"name"`
	Offset float64      `mapstructure:"offset"`
	Icons  []IconConfig `mapstructure:"icons"`
}

type IconConfig struct {
	Index int    `mapstructure:"index"`
	Icon  string `mapstructure:"icon"`
}

// newViper returns a viper instance with the chart defaults and the
// RADAR_ environment prefix.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("width", 400)
	v.SetDefault("height", 300)
	v.SetDefault("levels", radar.DefaultLevels)
	v.SetDefault("format", "svg")

	v.SetEnvPrefix("RADAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the chart file at path into a Config. Flags already
// bound to v take precedence over file values.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read chart file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode chart file: %w", err)
	}
	return &cfg, nil
}

// Data converts the file contents into chart data.
func (c *Config) Data() (*radar.Data, error) {
	d := &radar.Data{Categories: c.Categories}

	var errs []error
	for i, sc := range c.Series {
		s, err := sc.series()
		if err != nil {
			errs = append(errs, fmt.Errorf("series %d: %w", i, err))
			continue
		}
		d.Series = append(d.Series, s)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if c.Markers != nil {
		m := radar.MarkerConfig{SymbolRatio: c.Markers.SymbolRatio}
		for _, lc := range c.Markers.Layers {
			layer := radar.MarkerLayer{Name: lc.Name, Offset: lc.Offset}
			for _, ic := range lc.Icons {
				layer.Icons = append(layer.Icons, radar.MarkerIcon{Index: ic.Index, Icon: ic.Icon})
			}
			m.Layers = append(m.Layers, layer)
		}
		d.Markers = &m
	}
	return d, nil
}

func (sc SeriesConfig) series() (radar.Series, error) {
	role := radar.RolePrimary
	if sc.Role != "" {
		r, ok := radar.ParseRole(sc.Role)
		if !ok {
			return radar.Series{}, fmt.Errorf("unknown role %q", sc.Role)
		}
		role = r
	}

	s := radar.Series{Name: sc.Name, Role: role, Values: sc.Values}
	if sc.Stroke == "" && sc.Fill == "" && sc.Opacity == 0 && sc.Width == 0 {
		return s, nil
	}

	style := radar.DefaultStyle(role)
	if sc.Stroke != "" {
		c, err := radar.ParseColor(sc.Stroke)
		if err != nil {
			return radar.Series{}, err
		}
		style.Stroke = c
	}
	if sc.Fill != "" {
		c, err := radar.ParseColor(sc.Fill)
		if err != nil {
			return radar.Series{}, err
		}
		style.Fill = c
	}
	if sc.Opacity > 0 {
		style.FillOpacity = sc.Opacity
	}
	if sc.Width > 0 {
		style.StrokeWidth = sc.Width
	}
	s.Style = style
	return s, nil
}

// IconSet returns the builtin icons plus the ones named in the file.
// A value naming an existing file is loaded from disk; anything else is
// decoded as base64 PNG data.
func (c *Config) IconSet() (*icon.Set, error) {
	set := icon.Builtin()
	for id, src := range c.Icons {
		var err error
		if _, statErr := os.Stat(src); statErr == nil {
			err = set.LoadFile(id, src)
		} else {
			err = set.AddBase64PNG(id, src)
		}
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", id, err)
		}
	}
	return set, nil
}

// ChartOptions returns the radar options implied by the file.
func (c *Config) ChartOptions() []radar.Option {
	opts := []radar.Option{radar.WithLevels(c.Levels)}
	if c.Skip {
		opts = append(opts, radar.WithDegeneratePolicy(radar.SkipSeries))
	}
	return opts
}
