package hexgrid

import (
	"fmt"
	"math"
	"time"
)

// State is the animator lifecycle state.
type State int

const (
	// Stopped is never set by the animator; a host stops by no longer calling Tick.
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// unit hexagon vertices at i*60 degrees
var hexUnit [6][2]float64

func init() {
	for i := range hexUnit {
		angle := math.Pi / 3 * float64(i)
		hexUnit[i] = [2]float64{math.Cos(angle), math.Sin(angle)}
	}
}

// Animator draws a vertically scrolling hexagon grid onto a Surface.
// It is not safe for concurrent use; Tick and OnResize must be called from
// the same goroutine.
type Animator struct {
	surface  Surface
	viewport Viewport
	cfg      Config
	geom     Geometry

	width, height float64
	ratio         float64

	offset   float64
	lastTick time.Duration
	ticked   bool
	state    State

	Logger interface {
		Infof(string, string, ...interface{})
	}
}

// New binds an animator to surface, sizes it from viewport and computes the grid geometry.
func New(surface Surface, viewport Viewport, cfg Config) (*Animator, error) {
	if surface == nil {
		return nil, ErrSurfaceUnavailable
	}
	if viewport == nil {
		return nil, fmt.Errorf("%w: viewport is required", ErrInvalidConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Animator{surface: surface, viewport: viewport, cfg: cfg}
	if err := a.setupSurface(); err != nil {
		return nil, err
	}
	if err := a.RecomputeGeometry(); err != nil {
		return nil, err
	}
	a.state = Running
	return a, nil
}

func (a *Animator) Config() Config     { return a.cfg }
func (a *Animator) Geometry() Geometry { return a.geom }
func (a *Animator) Offset() float64    { return a.offset }
func (a *Animator) State() State       { return a.state }

// Size returns the logical size the grid is laid out for.
func (a *Animator) Size() (width, height float64) { return a.width, a.height }

func (a *Animator) setupSurface() error {
	w, h := a.viewport.Size()
	if !finite(w) || w < 0 {
		w = 0
	}
	if !finite(h) || h < 0 {
		h = 0
	}
	ratio := a.viewport.PixelRatio()
	if !finite(ratio) || ratio <= 0 {
		ratio = 1
	}
	pw := int(math.Round(w * ratio))
	ph := int(math.Round(h * ratio))
	if err := a.surface.SetPixelSize(pw, ph); err != nil {
		return fmt.Errorf("size surface to %dx%d: %w", pw, ph, err)
	}
	a.surface.SetDisplaySize(w, h)
	a.surface.SetScale(ratio, ratio)
	a.width, a.height, a.ratio = w, h, ratio
	return nil
}

// RecomputeGeometry derives the geometry from the radius and current viewport height.
func (a *Animator) RecomputeGeometry() error {
	g, err := ComputeGeometry(a.cfg.Radius, a.height)
	if err != nil {
		return err
	}
	a.geom = g
	if a.Logger != nil {
		a.Logger.Infof("hexgrid", "geometry: radius=%.2f rowStep=%.2f wrap=%.2f rows=%d", g.Radius, g.RowStep, g.WrapDistance, g.Rows)
	}
	return nil
}

// OnResize re-sizes the surface and geometry. The scroll offset is kept.
func (a *Animator) OnResize() error {
	if err := a.setupSurface(); err != nil {
		return err
	}
	if err := a.RecomputeGeometry(); err != nil {
		return err
	}
	a.offset = a.geom.Normalize(a.offset)
	if a.Logger != nil {
		a.Logger.Infof("hexgrid", "resized to %.0fx%.0f @%.2fx, offset=%.2f", a.width, a.height, a.ratio, a.offset)
	}
	return nil
}

// Advance moves the offset by ScrollSpeed*dt and wraps it into [0, WrapDistance).
func (a *Animator) Advance(dt float64) {
	if !finite(dt) {
		return
	}
	a.offset = a.geom.Normalize(a.offset + a.cfg.ScrollSpeed*dt)
}

// Tick is the per-refresh callback. now is a monotonic timestamp; the first
// call does not move the grid.
func (a *Animator) Tick(now time.Duration) error {
	dt := 0.0
	if a.ticked {
		dt = (now - a.lastTick).Seconds()
	}
	a.lastTick = now
	a.ticked = true
	a.Advance(dt)
	return a.DrawFrame()
}

// DrawFrame clears the surface and strokes every hexagon that can touch the viewport.
func (a *Animator) DrawFrame() error {
	g := a.geom
	a.surface.ClearRect(0, 0, a.width, a.height)
	a.surface.SetStrokeStyle(a.cfg.StrokeColor, a.cfg.StrokeWidth)

	offset := g.Normalize(a.offset)
	reach := g.HexHeight/2 + a.cfg.StrokeWidth
	copies := [3]float64{0, -g.WrapDistance, g.WrapDistance}
	for j := 0; j < g.Rows; j++ {
		y := g.RowY(j) + offset
		for x := g.RowX(j); x < a.width+g.HexWidth; x += g.ColumnStep {
			for _, shift := range copies {
				cy := y + shift
				if cy+reach < 0 || cy-reach > a.height {
					continue
				}
				if err := a.drawHex(x, cy); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (a *Animator) drawHex(cx, cy float64) error {
	h := a.cfg.Radius
	a.surface.BeginPath()
	a.surface.MoveTo(cx+h*hexUnit[0][0], cy+h*hexUnit[0][1])
	for i := 1; i < len(hexUnit); i++ {
		a.surface.LineTo(cx+h*hexUnit[i][0], cy+h*hexUnit[i][1])
	}
	a.surface.ClosePath()
	return a.surface.Stroke()
}
