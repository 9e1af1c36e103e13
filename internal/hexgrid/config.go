package hexgrid

import (
	"fmt"
	"image/color"
	"math"
)

// Defaults used when a host does not override them.
const (
	DefaultRadius      = 30.0
	DefaultStrokeWidth = 1.0
	DefaultScrollSpeed = 30.0
)

// DefaultStrokeColor is rgba(100, 250, 100, 0.22).
var DefaultStrokeColor = color.NRGBA{R: 100, G: 250, B: 100, A: 56}

// Config describes how the grid looks and moves.
type Config struct {
	// Radius is the distance from a hexagon center to each vertex.
	Radius      float64
	StrokeColor color.Color
	StrokeWidth float64
	// ScrollSpeed is measured in logical units per second.
	ScrollSpeed float64
}

func DefaultConfig() Config {
	return Config{
		Radius:      DefaultRadius,
		StrokeColor: DefaultStrokeColor,
		StrokeWidth: DefaultStrokeWidth,
		ScrollSpeed: DefaultScrollSpeed,
	}
}

// Validate reports ErrInvalidConfiguration for values that cannot produce a grid.
func (c Config) Validate() error {
	if !finite(c.Radius) || c.Radius <= 0 {
		return fmt.Errorf("%w: radius must be a positive number (got %v)", ErrInvalidConfiguration, c.Radius)
	}
	if !finite(c.StrokeWidth) || c.StrokeWidth <= 0 {
		return fmt.Errorf("%w: stroke width must be a positive number (got %v)", ErrInvalidConfiguration, c.StrokeWidth)
	}
	if !finite(c.ScrollSpeed) || c.ScrollSpeed < 0 {
		return fmt.Errorf("%w: scroll speed must be zero or positive (got %v)", ErrInvalidConfiguration, c.ScrollSpeed)
	}
	if c.StrokeColor == nil {
		return fmt.Errorf("%w: stroke color is required", ErrInvalidConfiguration)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
