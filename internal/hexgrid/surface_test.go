package hexgrid

import (
	"image/color"
	"math"
	"sort"
)

type point struct{ x, y float64 }

// recordingSurface captures every stroked path.
type recordingSurface struct {
	pixelW, pixelH     int
	displayW, displayH float64
	scaleX, scaleY     float64

	clears  [][4]float64
	paths   [][]point
	closed  []bool
	current []point
	isOpen  bool

	color color.Color
	width float64

	strokeErr error
}

func (s *recordingSurface) SetPixelSize(w, h int) error {
	s.pixelW, s.pixelH = w, h
	return nil
}
func (s *recordingSurface) SetDisplaySize(w, h float64) { s.displayW, s.displayH = w, h }
func (s *recordingSurface) SetScale(sx, sy float64)     { s.scaleX, s.scaleY = sx, sy }
func (s *recordingSurface) ClearRect(x, y, w, h float64) {
	s.clears = append(s.clears, [4]float64{x, y, w, h})
	s.paths = nil
	s.closed = nil
}
func (s *recordingSurface) BeginPath()          { s.current = nil; s.isOpen = true }
func (s *recordingSurface) MoveTo(x, y float64) { s.current = append(s.current, point{x, y}) }
func (s *recordingSurface) LineTo(x, y float64) { s.current = append(s.current, point{x, y}) }
func (s *recordingSurface) ClosePath()          { s.isOpen = false }
func (s *recordingSurface) SetStrokeStyle(c color.Color, w float64) {
	s.color, s.width = c, w
}
func (s *recordingSurface) Stroke() error {
	if s.strokeErr != nil {
		return s.strokeErr
	}
	s.paths = append(s.paths, s.current)
	s.closed = append(s.closed, !s.isOpen)
	s.current = nil
	return nil
}

// centers returns the center of every stroked hexagon, sorted by y then x.
func (s *recordingSurface) centers() []point {
	out := make([]point, 0, len(s.paths))
	for _, path := range s.paths {
		var c point
		for _, p := range path {
			c.x += p.x
			c.y += p.y
		}
		c.x /= float64(len(path))
		c.y /= float64(len(path))
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if math.Abs(out[i].y-out[j].y) > 1e-6 {
			return out[i].y < out[j].y
		}
		return out[i].x < out[j].x
	})
	return out
}

func hasCenter(centers []point, x, y, tol float64) bool {
	for _, c := range centers {
		if math.Abs(c.x-x) <= tol && math.Abs(c.y-y) <= tol {
			return true
		}
	}
	return false
}
