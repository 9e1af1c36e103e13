package hexgrid

import "image/color"

// Surface is the 2D drawing target the animator renders into.
// It mirrors the subset of a canvas 2D context the grid needs.
type Surface interface {
	// SetPixelSize sets the backing pixel buffer size.
	SetPixelSize(width, height int) error
	// SetDisplaySize sets the logical (CSS-facing) size used for layout.
	SetDisplaySize(width, height float64)
	// SetScale replaces the current transform with a pure scale.
	SetScale(sx, sy float64)

	ClearRect(x, y, width, height float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	SetStrokeStyle(c color.Color, width float64)
	Stroke() error
}

// Viewport is provided by the host environment.
type Viewport interface {
	// Size returns the logical viewport size.
	Size() (width, height float64)
	// PixelRatio returns device pixels per logical unit.
	PixelRatio() float64
}

// FixedViewport is a Viewport with constant values, used by headless hosts.
type FixedViewport struct {
	Width, Height float64
	Ratio         float64
}

func (v FixedViewport) Size() (float64, float64) { return v.Width, v.Height }
func (v FixedViewport) PixelRatio() float64       { return v.Ratio }
