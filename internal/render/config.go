package render

import "image/color"

// Global render configuration for colors and logical canvas.
var (
	// Foreground is used for HUD text; Background sits behind the grid.
	Foreground = color.RGBA{R: 0xE0, G: 0xFF, B: 0xE0, A: 0xFF}
	Background = color.RGBA{R: 0x0B, G: 0x10, B: 0x14, A: 0xFF}

	// Logical canvas height; the width follows the framebuffer aspect ratio.
	CanvasHeight = 1080
)
