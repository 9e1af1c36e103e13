package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseColor parses CSS-style colors: rgba(r,g,b,a), rgb(r,g,b), #rgb, #rgba, #rrggbb and #rrggbbaa.
// Alpha in rgba() is a fraction in [0,1].
func ParseColor(raw string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s[len("rgb("):len(s)-1], 3)
	}
	return color.NRGBA{}, fmt.Errorf("unsupported color %q", raw)
}

// FormatColor renders c in rgba() notation.
func FormatColor(c color.NRGBA) string {
	alpha := strconv.FormatFloat(float64(c.A)/255, 'f', 2, 64)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, alpha)
}

func parseHexColor(digits string) (color.NRGBA, error) {
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits (got %q)", digits)
	}
	if _, err := strconv.ParseUint(digits, 16, 64); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", digits)
	}
	if len(digits) <= 4 {
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	}
	if len(digits) == 6 {
		digits += "ff"
	}
	v, _ := strconv.ParseUint(digits, 16, 32)
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseFunctional(body string, want int) (color.NRGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("channel %d must be an integer in [0,255] (got %q)", i, strings.TrimSpace(parts[i]))
		}
		channels[i] = uint8(v)
	}
	alpha := uint8(255)
	if want == 4 {
		raw := strings.TrimSpace(parts[3])
		a, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(a) || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("alpha must be a number in [0,1] (got %q)", raw)
		}
		alpha = uint8(math.Round(a * 255))
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}
