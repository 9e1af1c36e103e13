package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rook-computer/hexdrift/internal/config"
	"github.com/rook-computer/hexdrift/internal/hexgrid"
	"github.com/rook-computer/hexdrift/internal/render"
)

func main() {
	settings, err := config.FromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	settings.RegisterFlags(flag.CommandLine)
	width := flag.Int("width", 960, "window width (or snapshot width) in logical units")
	height := flag.Int("height", 540, "window height (or snapshot height) in logical units")
	debug := flag.Bool("debug", false, "show the debug overlay")
	snapshot := flag.String("snapshot", "", "render one frame to this PNG file and exit instead of opening a window")
	ratio := flag.Float64("ratio", 1, "device pixel ratio used by -snapshot")
	at := flag.Duration("at", 0, "scroll time rendered by -snapshot")
	flag.Parse()

	if *snapshot != "" {
		view := hexgrid.FixedViewport{Width: float64(*width), Height: float64(*height), Ratio: *ratio}
		if err := renderSnapshot(*snapshot, view, settings.Grid(), *at); err != nil {
			fmt.Println("snapshot error:", err)
			os.Exit(1)
		}
		fmt.Println("snapshot written to", *snapshot)
		return
	}

	game, err := newGame(float64(*width), float64(*height), settings.Grid(), *debug)
	if err != nil {
		fmt.Println("simulator init error:", err)
		os.Exit(2)
	}
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("hexdrift simulator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		fmt.Println("simulator error:", err)
		os.Exit(1)
	}
}

// renderSnapshot draws the grid as it looks after scrolling for at and writes it as PNG.
func renderSnapshot(path string, view hexgrid.FixedViewport, cfg hexgrid.Config, at time.Duration) error {
	canvas := render.NewCanvas(1, 1)
	defer canvas.Close()
	animator, err := hexgrid.New(canvas, view, cfg)
	if err != nil {
		return err
	}
	animator.Advance(at.Seconds())
	if err := animator.DrawFrame(); err != nil {
		return err
	}
	return canvas.SavePNG(path)
}
