package render

import (
	"context"
	"time"

	"github.com/rook-computer/hexdrift/internal/hexgrid"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	// Canvas and Viewport are valid after Start.
	Canvas() *Canvas
	Viewport() hexgrid.Viewport
	SetScene(scene Scene)
	RunLoop(ctx context.Context)
	Redraw(now time.Duration)
}

// Scene is ticked once per frame and draws into the renderer's canvas.
type Scene interface {
	Tick(now time.Duration) error
}

// SceneStats is optionally implemented by scenes that can report HUD values.
type SceneStats interface {
	Offset() float64
	Geometry() hexgrid.Geometry
}

// NoopRenderer draws into an offscreen canvas and never presents it.
type NoopRenderer struct {
	canvas *Canvas
	scene  Scene
	View   hexgrid.FixedViewport
}

func (n *NoopRenderer) Start(ctx context.Context) error {
	if n.View.Width == 0 && n.View.Height == 0 {
		n.View = hexgrid.FixedViewport{Width: 320, Height: 240, Ratio: 1}
	}
	n.canvas = NewCanvas(int(n.View.Width), int(n.View.Height))
	return nil
}
func (n *NoopRenderer) Stop() error                 { return nil }
func (n *NoopRenderer) Canvas() *Canvas             { return n.canvas }
func (n *NoopRenderer) Viewport() hexgrid.Viewport  { return n.View }
func (n *NoopRenderer) SetScene(scene Scene)        { n.scene = scene }
func (n *NoopRenderer) RunLoop(ctx context.Context) { <-ctx.Done() }
func (n *NoopRenderer) Redraw(now time.Duration) {
	if n.scene != nil {
		_ = n.scene.Tick(now)
	}
}
