// Package config loads and validates the paint tool tables.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	ErrInvalidTool    = errors.New("invalid growth tool")
	ErrInvalidColor   = errors.New("invalid color tool")
	ErrUnknownVariant = errors.New("unknown strategy")
	ErrEmpty          = errors.New("config defines no tools")
)

// MinLeaves is the smallest leaf count for which a hull exists.
const MinLeaves = 3

//go:embed default.toml
var defaultTOML []byte

// Config is the whole tool configuration file.
type Config struct {
	Engine Engine       `toml:"engine"`
	Tools  []GrowthTool `toml:"tool"`
	Colors []ColorTool  `toml:"color"`
}

// Engine holds settings shared by every tool.
type Engine struct {
	// Seed for growth and colour sampling; 0 picks one at startup.
	Seed uint64 `toml:"seed"`
	// TickMillis is the period of the growth clock.
	TickMillis int `toml:"tick_ms"`
	// Keyhole is the minimum distance a gaze sample has to move before
	// it is forwarded.
	Keyhole float64 `toml:"keyhole"`
}

// GrowthTool describes how structures grow and how they look.
type GrowthTool struct {
	Name          string  `toml:"name"`
	Strategy      string  `toml:"strategy"`
	BranchLength  float64 `toml:"branch_length"`
	Leaves        int     `toml:"leaves"`
	MaxGeneration int     `toml:"max_generation"`
	// GrowthSpeed in [0,1]: 0 never grows, 1 grows every tick.
	GrowthSpeed  float64 `toml:"growth_speed"`
	BranchWidth  float64 `toml:"branch_width"`
	HullWidth    float64 `toml:"hull_width"`
	LeafSize     float64 `toml:"leaf_size"`
	Opacity      int     `toml:"opacity"`
	HullDilation float64 `toml:"hull_dilation"`

	// Variant is resolved from Strategy by Validate.
	Variant Variant `toml:"-"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	return Parse(defaultTOML)
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML document and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, fmt.Errorf("decode config: unknown key %q", und[0].String())
	}
	if c.Engine.TickMillis <= 0 {
		c.Engine.TickMillis = 40
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every tool and resolves strategy names.
func (c *Config) Validate() error {
	if len(c.Tools) == 0 || len(c.Colors) == 0 {
		return ErrEmpty
	}
	if c.Engine.Keyhole < 0 {
		return fmt.Errorf("engine: keyhole must not be negative, got %v", c.Engine.Keyhole)
	}
	for i := range c.Tools {
		if err := c.Tools[i].Validate(); err != nil {
			return err
		}
	}
	for i := range c.Colors {
		if err := c.Colors[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate rejects tools the growth engine cannot run and resolves the
// strategy name to a Variant.
func (t *GrowthTool) Validate() error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidTool)
	case t.Leaves < MinLeaves:
		return fmt.Errorf("%w %q: leaves must be at least %d, got %d", ErrInvalidTool, t.Name, MinLeaves, t.Leaves)
	case !(t.BranchLength > 0):
		return fmt.Errorf("%w %q: branch_length must be positive, got %v", ErrInvalidTool, t.Name, t.BranchLength)
	case t.MaxGeneration < 0:
		return fmt.Errorf("%w %q: max_generation must not be negative, got %d", ErrInvalidTool, t.Name, t.MaxGeneration)
	case t.GrowthSpeed < 0 || t.GrowthSpeed > 1:
		return fmt.Errorf("%w %q: growth_speed must be in [0,1], got %v", ErrInvalidTool, t.Name, t.GrowthSpeed)
	case t.BranchWidth < 0 || t.HullWidth < 0 || t.LeafSize < 0:
		return fmt.Errorf("%w %q: widths must not be negative", ErrInvalidTool, t.Name)
	case t.Opacity < 0 || t.Opacity > 255:
		return fmt.Errorf("%w %q: opacity must be in [0,255], got %d", ErrInvalidTool, t.Name, t.Opacity)
	}
	v, err := ParseVariant(t.Strategy)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidTool, t.Name, err)
	}
	t.Variant = v
	return nil
}
