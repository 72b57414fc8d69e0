package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultCardWidth        = 32
	defaultCardHeight       = 10
	defaultScrollStep       = 4
	defaultAnimationFPS     = 30
	defaultPoolSize         = 8
	defaultAutoplayInterval = 5 * time.Second
)

type Config struct {
	Axis             string `koanf:"axis"`              // "horizontal" or "vertical"
	Padding          int    `koanf:"padding"`           // cells of padding on both scroll-axis sides
	CardWidth        int    `koanf:"card_width"`        // card width in cells, border included
	CardHeight       int    `koanf:"card_height"`       // card height in cells, border included
	ScrollStep       int    `koanf:"scroll_step"`       // cells per arrow key press
	AutoplayInterval string `koanf:"autoplay_interval"` // e.g. "5s", empty disables autoplay
	AnimationFPS     int    `koanf:"animation_fps"`     // smooth scroll frame rate
	Snap             *bool  `koanf:"snap"`              // snap to the nearest card after manual scroll (default: true)
	MeasureCache     bool   `koanf:"measure_cache"`     // memoize card extents during measure
	ImageScale       string `koanf:"image_scale"`       // "fit_center", "center_crop" or "none"
	Icons            string `koanf:"icons"`             // "nerd", "unicode", or "none"
	PoolSize         int    `koanf:"pool_size"`         // idle card views kept for reuse
	LogLevel         string `koanf:"log_level"`         // "debug", "info", "warn", "error"
	LogFile          string `koanf:"log_file"`          // defaults to the XDG state dir

	Items []Item `koanf:"items"`
}

// Item is one banner page.
type Item struct {
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`
	Image    string `koanf:"image"` // optional PNG/JPEG path
}

// Load reads the config files in priority order.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files; later files override earlier ones.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	for i := range cfg.Items {
		cfg.Items[i].Image = expandPath(cfg.Items[i].Image)
	}
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/carousel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "carousel", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetCardSize returns the card dimensions with defaults applied.
func (c *Config) GetCardSize() (width, height int) {
	width, height = c.CardWidth, c.CardHeight
	if width <= 4 {
		width = defaultCardWidth
	}
	if height <= 2 {
		height = defaultCardHeight
	}
	return width, height
}

// GetScrollStep returns the per-key scroll distance.
func (c *Config) GetScrollStep() int {
	if c.ScrollStep <= 0 {
		return defaultScrollStep
	}
	return c.ScrollStep
}

// GetAutoplayInterval returns the autoplay period, 0 when disabled.
// Unparsable or non-positive values fall back to the default.
func (c *Config) GetAutoplayInterval() time.Duration {
	switch c.AutoplayInterval {
	case "":
		return defaultAutoplayInterval
	case "off", "0":
		return 0
	}
	d, err := time.ParseDuration(c.AutoplayInterval)
	if err != nil || d <= 0 {
		return defaultAutoplayInterval
	}
	return d
}

// GetFrameInterval returns the smooth scroll frame period.
func (c *Config) GetFrameInterval() time.Duration {
	fps := c.AnimationFPS
	if fps <= 0 || fps > 120 {
		fps = defaultAnimationFPS
	}
	return time.Second / time.Duration(fps)
}

// SnapEnabled reports whether manual scrolls snap to the nearest card.
func (c *Config) SnapEnabled() bool {
	return c.Snap == nil || *c.Snap
}

// GetPoolSize returns the idle view pool bound.
func (c *Config) GetPoolSize() int {
	if c.PoolSize <= 0 {
		return defaultPoolSize
	}
	return c.PoolSize
}

// GetPadding returns the scroll-axis padding, never negative.
func (c *Config) GetPadding() int {
	return max(c.Padding, 0)
}
