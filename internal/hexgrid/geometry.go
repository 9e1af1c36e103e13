package hexgrid

import (
	"fmt"
	"math"
)

// Geometry holds the values derived from the hexagon radius and viewport height.
type Geometry struct {
	Radius     float64
	HexWidth   float64
	HexHeight  float64
	RowStep    float64
	ColumnStep float64
	// Stagger is the horizontal shift applied to odd rows.
	Stagger float64
	// Period is the smallest vertical distance after which the pattern repeats.
	Period float64
	// WrapDistance is the scroll period: a multiple of Period covering the
	// viewport plus one hex height above and below.
	WrapDistance float64
	// Rows is WrapDistance / RowStep, always even.
	Rows int
}

// ComputeGeometry derives grid geometry for radius and a viewport of the given height.
// A non-positive viewport height is treated as zero.
func ComputeGeometry(radius, viewportHeight float64) (Geometry, error) {
	if !finite(radius) || radius <= 0 {
		return Geometry{}, fmt.Errorf("%w: radius must be a positive number (got %v)", ErrInvalidConfiguration, radius)
	}
	if !finite(viewportHeight) || viewportHeight < 0 {
		viewportHeight = 0
	}

	g := Geometry{Radius: radius}
	g.HexWidth = 2 * radius
	g.HexHeight = math.Sqrt(3) * radius
	g.RowStep = 0.75 * g.HexHeight
	g.ColumnStep = 1.5 * g.HexWidth
	g.Stagger = 0.75 * g.HexWidth
	g.Period = 2 * g.RowStep

	periods := int(math.Ceil((viewportHeight + 2*g.HexHeight) / g.Period))
	if periods < 1 {
		periods = 1
	}
	g.Rows = 2 * periods
	g.WrapDistance = float64(periods) * g.Period
	return g, nil
}

// RowY returns the unscrolled y of row j.
func (g Geometry) RowY(j int) float64 {
	return -g.HexHeight + float64(j)*g.RowStep
}

// RowX returns the x of the first column in row j.
func (g Geometry) RowX(j int) float64 {
	x := -g.HexWidth
	if j%2 == 1 {
		x += g.Stagger
	}
	return x
}

// Normalize maps v into [0, WrapDistance).
func (g Geometry) Normalize(v float64) float64 {
	w := g.WrapDistance
	if w <= 0 || !finite(v) {
		return 0
	}
	if v >= 0 && v < w {
		return v
	}
	return math.Mod(math.Mod(v, w)+w, w)
}
