package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rook-computer/hexdrift/internal/hexgrid"
	"github.com/rook-computer/hexdrift/internal/render"
	"github.com/rook-computer/hexdrift/internal/system"
)

type App struct {
	Render render.Renderer
	Grid   hexgrid.Config
	Logger Logger
	Debug  bool
	// Console switches the active VT to graphics mode and hides the cursor while running.
	Console bool
	// ExitOnF4 watches evdev keyboards and exits on F4.
	ExitOnF4 bool

	animator *hexgrid.Animator

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(renderer render.Renderer, grid hexgrid.Config) *App {
	return &App{Render: renderer, Grid: grid, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running. Only the first call has an effect.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Animator returns the running animator, or nil before Start has built it.
func (app *App) Animator() *hexgrid.Animator { return app.animator }

// Start runs the grid until ctx is done or Exit is called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	if app.Render == nil {
		app.Render = render.NewFBRenderer()
	}
	if fb, ok := app.Render.(*render.FBRenderer); ok {
		fb.Logger = app.Logger
		fb.Debug = app.Debug
	}
	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	canvas := app.Render.Canvas()
	if canvas == nil {
		return fmt.Errorf("%w: renderer has no canvas", hexgrid.ErrSurfaceUnavailable)
	}
	animator, err := hexgrid.New(canvas, app.Render.Viewport(), app.Grid)
	if err != nil {
		app.Logger.Errorf("app", "animator init error: %v", err)
		return err
	}
	animator.Logger = app.Logger
	app.animator = animator
	app.Render.SetScene(animator)

	if app.Console {
		// Switch console to KD_GRAPHICS to suppress hardware cursor
		if err := system.SetGraphicsModeWithLog(app.Logger); err != nil {
			app.Logger.Errorf("tty", "set graphics mode failed: %v", err)
		}
		_ = system.HideCursorWithLog(app.Logger)
		defer func() { _ = system.ShowCursorWithLog(app.Logger); _ = system.RestoreTextModeWithLog(app.Logger) }()
	}

	// Draw the first frame before the loop's first tick.
	app.Render.Redraw(0)

	loopCtx, cancel := context.WithCancel(ctx)
	if app.ExitOnF4 {
		system.StartExitOnF4(loopCtx, app.Logger, func() { app.Exit(nil) })
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Render.RunLoop(loopCtx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case runErr = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	return runErr
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
