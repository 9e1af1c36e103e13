package config

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/rook-computer/hexdrift/internal/hexgrid"
)

const (
	EnvRadius      = "HEXDRIFT_RADIUS"
	EnvColor       = "HEXDRIFT_COLOR"
	EnvStrokeWidth = "HEXDRIFT_STROKE_WIDTH"
	EnvSpeed       = "HEXDRIFT_SPEED"
	EnvFPS         = "HEXDRIFT_FPS"
	EnvStdioLog    = "HEXDRIFT_STDIO_LOG"
)

const DefaultFPS = 30

// Settings contains everything a host needs to run the grid.
//
// Precedence is flags over environment over built-in defaults.
type Settings struct {
	Radius      float64
	StrokeColor color.NRGBA
	StrokeWidth float64
	ScrollSpeed float64

	// FPS is the render loop rate for hosts that own their ticker.
	FPS      int
	StdioLog string
}

func Defaults() Settings {
	return Settings{
		Radius:      hexgrid.DefaultRadius,
		StrokeColor: hexgrid.DefaultStrokeColor,
		StrokeWidth: hexgrid.DefaultStrokeWidth,
		ScrollSpeed: hexgrid.DefaultScrollSpeed,
		FPS:         DefaultFPS,
	}
}

// FromEnv returns Defaults overridden by any HEXDRIFT_* variables that are set.
func FromEnv() (Settings, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()

	floats := []struct {
		name string
		dst  *float64
	}{
		{EnvRadius, &s.Radius},
		{EnvStrokeWidth, &s.StrokeWidth},
		{EnvSpeed, &s.ScrollSpeed},
	}
	for _, f := range floats {
		raw, ok := lookup(f.name)
		if !ok || raw == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("%s must be a number (got %q): %w", f.name, raw, err)
		}
		*f.dst = parsed
	}

	if raw, ok := lookup(EnvColor); ok && raw != "" {
		c, err := ParseColor(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvColor, err)
		}
		s.StrokeColor = c
	}

	if raw, ok := lookup(EnvFPS); ok && raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return Settings{}, fmt.Errorf("%s must be a positive integer (got %q)", EnvFPS, raw)
		}
		s.FPS = parsed
	}

	if raw, ok := lookup(EnvStdioLog); ok {
		s.StdioLog = raw
	}
	return s, nil
}

// RegisterFlags binds the grid flags to s, using its current values as defaults.
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&s.Radius, "radius", s.Radius, "hexagon radius in logical units; also configurable via "+EnvRadius)
	fs.Var((*colorValue)(&s.StrokeColor), "color", "stroke color, rgba(r,g,b,a) or #rrggbb[aa]; also configurable via "+EnvColor)
	fs.Float64Var(&s.StrokeWidth, "stroke-width", s.StrokeWidth, "stroke width in logical units; also configurable via "+EnvStrokeWidth)
	fs.Float64Var(&s.ScrollSpeed, "speed", s.ScrollSpeed, "scroll speed in logical units per second; also configurable via "+EnvSpeed)
	fs.IntVar(&s.FPS, "fps", s.FPS, "render loop rate; also configurable via "+EnvFPS)
	fs.StringVar(&s.StdioLog, "stdio-log", s.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+EnvStdioLog)
}

// Grid returns the animator configuration.
func (s Settings) Grid() hexgrid.Config {
	return hexgrid.Config{
		Radius:      s.Radius,
		StrokeColor: s.StrokeColor,
		StrokeWidth: s.StrokeWidth,
		ScrollSpeed: s.ScrollSpeed,
	}
}

type colorValue color.NRGBA

func (v *colorValue) String() string { return FormatColor(color.NRGBA(*v)) }

func (v *colorValue) Set(raw string) error {
	c, err := ParseColor(raw)
	if err != nil {
		return err
	}
	*v = colorValue(c)
	return nil
}
