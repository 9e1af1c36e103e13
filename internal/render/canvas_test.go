package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/rook-computer/hexdrift/internal/hexgrid"
)

var opaqueRed = color.NRGBA{R: 255, A: 255}

func alphaAt(c *Canvas, x, y int) uint8 { return c.RGBA().RGBAAt(x, y).A }

// anyInked reports whether any pixel in the 3x3 block around (x,y) has coverage.
func anyInked(c *Canvas, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if alphaAt(c, x+dx, y+dy) > 0 {
				return true
			}
		}
	}
	return false
}

func TestCanvasClampsSize(t *testing.T) {
	c := NewCanvas(0, -3)
	if c.Bounds() != image.Rect(0, 0, 1, 1) {
		t.Fatalf("bounds %v, want 1x1", c.Bounds())
	}
	if err := c.SetPixelSize(0, 0); err != nil {
		t.Fatalf("SetPixelSize(0,0): %v", err)
	}
	if err := c.SetPixelSize(40, 30); err != nil {
		t.Fatal(err)
	}
	if c.Bounds() != image.Rect(0, 0, 40, 30) || len(c.Pixels()) != 40*30*4 {
		t.Fatalf("bounds %v, %d bytes", c.Bounds(), len(c.Pixels()))
	}
}

func TestCanvasStrokeUsesScale(t *testing.T) {
	c := NewCanvas(40, 40)
	c.SetScale(2, 2)
	c.SetStrokeStyle(opaqueRed, 2)
	c.BeginPath()
	c.MoveTo(0, 5)
	c.LineTo(20, 5)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	// Logical y=5 lands on device y=10.
	px := c.RGBA().RGBAAt(20, 9)
	if px.A == 0 || px.R == 0 || px.G != 0 || px.B != 0 {
		t.Fatalf("pixel on the line is %v, want red", px)
	}
	if a := alphaAt(c, 20, 25); a != 0 {
		t.Fatalf("pixel off the line has alpha %d", a)
	}
}

func TestCanvasClearRect(t *testing.T) {
	c := NewCanvas(20, 20)
	img := c.RGBA()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	c.SetScale(2, 2)
	c.ClearRect(0, 0, 5, 5)
	if a := alphaAt(c, 9, 9); a != 0 {
		t.Fatalf("cleared pixel has alpha %d", a)
	}
	if a := alphaAt(c, 10, 10); a != 255 {
		t.Fatalf("pixel outside the cleared rect has alpha %d", a)
	}

	c.ClearRect(0, 0, 10, 10)
	for i := 3; i < len(c.Pixels()); i += 4 {
		if c.Pixels()[i] != 0 {
			t.Fatalf("full clear left alpha %d at byte %d", c.Pixels()[i], i)
		}
	}
}

func TestCanvasDisplaySize(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetDisplaySize(5, 4.5)
	if w, h := c.DisplaySize(); w != 5 || h != 4.5 {
		t.Fatalf("display size %vx%v", w, h)
	}
}

func TestAnimatorOnCanvas(t *testing.T) {
	c := NewCanvas(1, 1)
	cfg := hexgrid.DefaultConfig()
	cfg.StrokeColor = opaqueRed
	a, err := hexgrid.New(c, hexgrid.FixedViewport{Width: 100, Height: 80, Ratio: 2}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if c.Bounds() != image.Rect(0, 0, 200, 160) {
		t.Fatalf("canvas bounds %v, want 200x160", c.Bounds())
	}
	if err := a.DrawFrame(); err != nil {
		t.Fatal(err)
	}

	// Hexagon centered at logical (30, 25.98): edges are stroked, the inside is not filled.
	if a := alphaAt(c, 60, 52); a != 0 {
		t.Fatalf("hexagon center has alpha %d, want unfilled", a)
	}
	// Midpoint of the edge between vertices 0 and 1: (52.5, 38.97) logical.
	if !anyInked(c, 105, 78) {
		t.Fatal("hexagon edge not stroked")
	}
}
