package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Canvas is a hexgrid.Surface backed by a gg software context.
// Pixel data is premultiplied RGBA.
type Canvas struct {
	dc *gg.Context

	displayWidth  float64
	displayHeight float64
}

func NewCanvas(width, height int) *Canvas {
	width, height = clampSize(width, height)
	return &Canvas{dc: gg.NewContext(width, height), displayWidth: float64(width), displayHeight: float64(height)}
}

func clampSize(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// SetPixelSize reallocates the pixel buffer. Sizes below 1 are clamped to 1.
func (c *Canvas) SetPixelSize(width, height int) error {
	width, height = clampSize(width, height)
	return c.dc.Resize(width, height)
}

func (c *Canvas) SetDisplaySize(width, height float64) {
	c.displayWidth, c.displayHeight = width, height
}

func (c *Canvas) SetScale(sx, sy float64) { c.dc.SetTransform(gg.Scale(sx, sy)) }

// ClearRect clears a logical rectangle to transparent.
func (c *Canvas) ClearRect(x, y, width, height float64) {
	x0, y0 := c.dc.TransformPoint(x, y)
	x1, y1 := c.dc.TransformPoint(x+width, y+height)
	rect := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	bounds := c.Bounds()
	rect = rect.Canon().Intersect(bounds)
	if rect == bounds {
		c.dc.Clear()
		return
	}
	pm := c.dc.ResizeTarget()
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			pm.SetPixel(px, py, gg.Transparent)
		}
	}
}

func (c *Canvas) BeginPath()          { c.dc.ClearPath() }
func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }
func (c *Canvas) ClosePath()          { c.dc.ClosePath() }

func (c *Canvas) SetStrokeStyle(col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
}

func (c *Canvas) Stroke() error { return c.dc.Stroke() }

// Bounds returns the pixel buffer bounds.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.dc.Width(), c.dc.Height()) }

// DisplaySize returns the logical size last set with SetDisplaySize.
func (c *Canvas) DisplaySize() (width, height float64) { return c.displayWidth, c.displayHeight }

// Pixels returns the live pixel buffer, 4 bytes per pixel.
func (c *Canvas) Pixels() []byte { return c.dc.ResizeTarget().Data() }

// RGBA returns an image sharing the canvas pixel buffer. It is invalidated by SetPixelSize.
func (c *Canvas) RGBA() *image.RGBA {
	b := c.Bounds()
	return &image.RGBA{Pix: c.Pixels(), Stride: 4 * b.Dx(), Rect: b}
}

func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

func (c *Canvas) Close() error { return c.dc.Close() }
