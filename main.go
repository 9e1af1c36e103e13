package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gg"
	"github.com/rook-computer/hexdrift/internal/app"
	"github.com/rook-computer/hexdrift/internal/config"
	"github.com/rook-computer/hexdrift/internal/hexgrid"
	"github.com/rook-computer/hexdrift/internal/render"
)

func main() {
	fmt.Println("hexdrift starting")

	settings, err := config.FromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	settings.RegisterFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "enable debug logging to ./hexdrift-debug.log and the on-screen HUD")
	device := flag.String("fb", "/dev/fb0", "framebuffer device")
	noConsole := flag.Bool("no-console", false, "leave the VT in text mode and keep the cursor")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if settings.StdioLog != "" {
		if err := redirectStdIO(settings.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./hexdrift-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
			gg.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewFBRenderer()
	renderer.Device = *device
	renderer.FPS = settings.FPS

	a := app.New(renderer, settings.Grid())
	a.Logger = logger
	a.Debug = *debug
	a.Console = !*noConsole
	a.ExitOnF4 = true

	err = a.Start(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, hexgrid.ErrInvalidConfiguration):
		fmt.Println("config error:", err)
		os.Exit(2)
	default:
		fmt.Println("app error:", err)
		os.Exit(1)
	}
}
