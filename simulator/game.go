package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rook-computer/hexdrift/internal/hexgrid"
	"github.com/rook-computer/hexdrift/internal/render"
)

// windowViewport is updated from Layout and read by the animator on resize.
type windowViewport struct {
	width, height float64
	ratio         float64
}

func (v *windowViewport) Size() (float64, float64) { return v.width, v.height }
func (v *windowViewport) PixelRatio() float64       { return v.ratio }

// Game hosts the animator in an Ebiten window. Ebiten calls Layout, Update
// and Draw from one goroutine, which is what the animator requires.
type Game struct {
	view     *windowViewport
	canvas   *render.Canvas
	animator *hexgrid.Animator
	grid     *ebiten.Image
	start    time.Time
	debug    bool
	err      error
}

func newGame(width, height float64, cfg hexgrid.Config, debug bool) (*Game, error) {
	view := &windowViewport{width: width, height: height, ratio: 1}
	canvas := render.NewCanvas(int(width), int(height))
	animator, err := hexgrid.New(canvas, view, cfg)
	if err != nil {
		return nil, err
	}
	return &Game{view: view, canvas: canvas, animator: animator, start: time.Now(), debug: debug}, nil
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.animator.Tick(time.Since(g.start))
}

func (g *Game) Draw(screen *ebiten.Image) {
	bounds := g.canvas.Bounds()
	if g.grid == nil || g.grid.Bounds().Size() != bounds.Size() {
		if g.grid != nil {
			g.grid.Deallocate()
		}
		g.grid = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	g.grid.WritePixels(g.canvas.Pixels())

	screen.Fill(render.Background)
	screen.DrawImage(g.grid, nil)

	if g.debug {
		geom := g.animator.Geometry()
		msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nOffset: %.2f / %.2f\nViewport: %.0fx%.0f @%.2fx",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.animator.Offset(), geom.WrapDistance,
			g.view.width, g.view.height, g.view.ratio)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports a device-resolution screen and resizes the animator when
// the window size or scale factor changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := ebiten.Monitor().DeviceScaleFactor()
	width, height := float64(outsideWidth), float64(outsideHeight)
	if width != g.view.width || height != g.view.height || ratio != g.view.ratio {
		g.view.width, g.view.height, g.view.ratio = width, height, ratio
		if err := g.animator.OnResize(); err != nil {
			g.err = err
		}
	}
	bounds := g.canvas.Bounds()
	return bounds.Dx(), bounds.Dy()
}
