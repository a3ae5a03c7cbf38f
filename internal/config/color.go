package config

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorTool is a range of shades in HSV space. Hue is in degrees,
// saturation and value in [0,1].
type ColorTool struct {
	Name          string  `toml:"name"`
	MinHue        float64 `toml:"min_hue"`
	MaxHue        float64 `toml:"max_hue"`
	MinSaturation float64 `toml:"min_saturation"`
	MaxSaturation float64 `toml:"max_saturation"`
	MinValue      float64 `toml:"min_value"`
	MaxValue      float64 `toml:"max_value"`
}

// AnyColor spans the whole hue circle with bright, saturated shades.
var AnyColor = ColorTool{
	Name:   "any",
	MinHue: 0, MaxHue: 360,
	MinSaturation: 0.9, MaxSaturation: 1,
	MinValue: 0.9, MaxValue: 1,
}

func (c *ColorTool) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidColor)
	case c.MinHue < 0 || c.MaxHue > 360 || c.MinHue > c.MaxHue:
		return fmt.Errorf("%w %q: hue range [%v,%v] outside [0,360]", ErrInvalidColor, c.Name, c.MinHue, c.MaxHue)
	case c.MinSaturation < 0 || c.MaxSaturation > 1 || c.MinSaturation > c.MaxSaturation:
		return fmt.Errorf("%w %q: saturation range [%v,%v] outside [0,1]", ErrInvalidColor, c.Name, c.MinSaturation, c.MaxSaturation)
	case c.MinValue < 0 || c.MaxValue > 1 || c.MinValue > c.MaxValue:
		return fmt.Errorf("%w %q: value range [%v,%v] outside [0,1]", ErrInvalidColor, c.Name, c.MinValue, c.MaxValue)
	}
	return nil
}

// Shade samples a random colour from the tool's range.
func (c ColorTool) Shade(rng *rand.Rand, opacity uint8) color.NRGBA {
	h := c.MinHue + rng.Float64()*(c.MaxHue-c.MinHue)
	s := c.MinSaturation + rng.Float64()*(c.MaxSaturation-c.MinSaturation)
	v := c.MinValue + rng.Float64()*(c.MaxValue-c.MinValue)
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: opacity}
}
