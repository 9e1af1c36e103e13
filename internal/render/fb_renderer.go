package render

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/hexdrift/internal/hexgrid"
	xdraw "golang.org/x/image/draw"
)

const defaultFPS = 30

// FBRenderer renders to the Linux framebuffer. The grid canvas is kept at
// framebuffer resolution and composed over Background each frame.
type FBRenderer struct {
	Device string
	FPS    int

	fbDev    *fb.Device
	canvas   *Canvas
	frame    *image.RGBA
	viewport hexgrid.FixedViewport
	hud      *HUD
	running  atomic.Bool
	current  Scene
	fps      float64
	Logger   interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
	Debug bool
}

func NewFBRenderer() *FBRenderer { return &FBRenderer{Device: "/dev/fb0", FPS: defaultFPS} }

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", hexgrid.ErrSurfaceUnavailable, r.Device, err)
	}
	r.fbDev = dev
	bounds := dev.Bounds()
	if r.Logger != nil {
		r.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	r.viewport = FramebufferViewport(bounds.Dx(), bounds.Dy())
	r.canvas = NewCanvas(bounds.Dx(), bounds.Dy())
	r.frame = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if r.Debug {
		r.hud = NewHUD(14*r.viewport.Ratio, r.Logger)
	}

	r.running.Store(true)
	return nil
}

// FramebufferViewport maps a framebuffer of the given size onto a logical
// canvas CanvasHeight units tall, keeping the physical aspect ratio.
func FramebufferViewport(fbWidth, fbHeight int) hexgrid.FixedViewport {
	if fbWidth <= 0 || fbHeight <= 0 || CanvasHeight <= 0 {
		return hexgrid.FixedViewport{Width: float64(fbWidth), Height: float64(fbHeight), Ratio: 1}
	}
	ratio := float64(fbHeight) / float64(CanvasHeight)
	return hexgrid.FixedViewport{Width: float64(fbWidth) / ratio, Height: float64(CanvasHeight), Ratio: ratio}
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
	}
	return nil
}

func (r *FBRenderer) Canvas() *Canvas            { return r.canvas }
func (r *FBRenderer) Viewport() hexgrid.Viewport { return r.viewport }

// SetScene sets the scene ticked on every redraw.
func (r *FBRenderer) SetScene(scene Scene) { r.current = scene }

// Redraw ticks the scene and presents the frame.
func (r *FBRenderer) Redraw(now time.Duration) {
	if !r.running.Load() || r.current == nil || r.fbDev == nil {
		return
	}
	if err := r.current.Tick(now); err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("fb", "scene tick failed: %v", err)
		}
		return
	}
	r.compose()
	blitToFB(r.fbDev, r.frame)
}

func (r *FBRenderer) compose() {
	draw.Draw(r.frame, r.frame.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	grid := r.canvas.RGBA()
	draw.Draw(r.frame, r.frame.Bounds(), grid, grid.Bounds().Min, draw.Over)
	if r.hud != nil {
		r.hud.Draw(r.frame, r.hudLines())
	}
}

func (r *FBRenderer) hudLines() []string {
	lines := []string{fmt.Sprintf("fps %.1f", r.fps)}
	if stats, ok := r.current.(SceneStats); ok {
		g := stats.Geometry()
		lines = append(lines,
			fmt.Sprintf("offset %.2f / %.2f", stats.Offset(), g.WrapDistance),
			fmt.Sprintf("rows %d  step %.2f", g.Rows, g.RowStep),
		)
	}
	return lines
}

// RunLoop redraws at FPS until the context is done.
func (r *FBRenderer) RunLoop(ctx context.Context) {
	fps := r.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	start := time.Now()
	lastLog := start
	frames := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Redraw(time.Since(start))
			frames++
			if elapsed := time.Since(lastLog); elapsed > time.Second {
				r.fps = float64(frames) / elapsed.Seconds()
				if r.Logger != nil {
					r.Logger.Infof("fb", "heartbeat frame, fps=%.1f", r.fps)
				}
				frames = 0
				lastLog = time.Now()
			}
		}
	}
}

// Helper: blit the composed frame to the framebuffer, scaling if sizes differ.
func blitToFB(dev draw.Image, frame *image.RGBA) {
	if dev == nil {
		return
	}
	bounds := dev.Bounds()
	if bounds.Size() == frame.Bounds().Size() {
		draw.Draw(dev, bounds, frame, frame.Bounds().Min, draw.Src)
		return
	}
	xdraw.NearestNeighbor.Scale(dev, bounds, frame, frame.Bounds(), xdraw.Src, nil)
}
