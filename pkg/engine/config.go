package engine

import (
	"fmt"
	"runtime"

	"github.com/samber/lo"

	"github.com/wildfunctions/recursive_art/pkg/pool"
)

// Config holds all parameters for a generation run.
type Config struct {
	Width    int    `mapstructure:"width" json:"width" toml:"width"`
	Height   int    `mapstructure:"height" json:"height" toml:"height"`
	MinDepth int    `mapstructure:"min_depth" json:"min_depth" toml:"min_depth"`
	MaxDepth int    `mapstructure:"max_depth" json:"max_depth" toml:"max_depth"`
	Pool     string `mapstructure:"pool" json:"pool" toml:"pool"`
	Seed     int64  `mapstructure:"seed" json:"seed" toml:"seed"` // 0 = random
	Count    int    `mapstructure:"count" json:"count" toml:"count"`
	Workers  int    `mapstructure:"workers" json:"workers" toml:"workers"`
	OutDir   string `mapstructure:"outdir" json:"outdir" toml:"outdir"`
	// Filename is a template with {{timestamp}}, {{index}}, {{seed}} and
	// {{id}} placeholders. Spaces inside the braces are ignored.
	Filename string `mapstructure:"filename" json:"filename" toml:"filename"`
	SaveExpr bool   `mapstructure:"save_expr" json:"save_expr" toml:"save_expr"`
	Format   string `mapstructure:"format" json:"format" toml:"format"` // "text" or "json"
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Width:    350,
		Height:   350,
		MinDepth: 7,
		MaxDepth: 9,
		Pool:     "classic",
		Seed:     0,
		Count:    1,
		Workers:  runtime.NumCPU(),
		OutDir:   ".",
		Filename: "{{timestamp}}.png",
		SaveExpr: false,
		Format:   "text",
	}
}

// uniqueTags differ between images of one run.
var uniqueTags = []string{TagIndex, TagSeed, TagID}

// Validate reports the first problem with the config.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MinDepth < 0 || c.MaxDepth < 0 {
		return fmt.Errorf("depths must not be negative, got min %d max %d", c.MinDepth, c.MaxDepth)
	}
	if c.MinDepth > c.MaxDepth {
		return fmt.Errorf("min depth %d exceeds max depth %d", c.MinDepth, c.MaxDepth)
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	if _, err := pool.Get(c.Pool); err != nil {
		return fmt.Errorf("%w (available: %v)", err, pool.Names())
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
	if c.Filename == "" {
		return fmt.Errorf("filename template is empty")
	}
	tags, err := TemplateTags(c.Filename)
	if err != nil {
		return fmt.Errorf("filename template %q: %w", c.Filename, err)
	}
	if c.Count > 1 && !lo.Some(tags, uniqueTags) {
		return fmt.Errorf("filename template %q must contain one of %v when count > 1", c.Filename, uniqueTags)
	}
	return nil
}
