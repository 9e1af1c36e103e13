package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/hexdrift/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	hudPaddingPx = 16
	hudMarginPx  = 24
)

var hudPanel = color.RGBA{A: 0xA0}

// HUD draws a small text panel in the top-left corner of a frame.
type HUD struct {
	face font.Face
}

// NewHUD loads the Go regular font at sizePt. On failure it falls back to basicfont.
func NewHUD(sizePt float64, logger interface {
	Errorf(string, string, ...interface{})
}) *HUD {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		if logger != nil {
			logger.Errorf("hud", "truetype parse failed, using basicfont: %v", err)
		}
		return &HUD{face: basicfont.Face7x13}
	}
	return &HUD{face: truetype.NewFace(tt, &truetype.Options{Size: sizePt, DPI: 96, Hinting: font.HintingFull})}
}

// Panel returns the rectangle the given lines occupy inside bounds.
func (h *HUD) Panel(bounds image.Rectangle, lines []string) image.Rectangle {
	metrics := h.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(h.face, line).Ceil(); w > width {
			width = w
		}
	}
	area := layout.Inset(bounds, hudMarginPx)
	return layout.AnchorTopLeft(area, width+2*hudPaddingPx, len(lines)*lineHeight+2*hudPaddingPx)
}

func (h *HUD) Draw(dst draw.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	panel := h.Panel(dst.Bounds(), lines)
	draw.Draw(dst, panel, &image.Uniform{C: hudPanel}, image.Point{}, draw.Over)

	metrics := h.face.Metrics()
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(Foreground), Face: h.face}
	baseline := panel.Min.Y + hudPaddingPx + metrics.Ascent.Ceil()
	for _, line := range lines {
		drawer.Dot = fixed.P(panel.Min.X+hudPaddingPx, baseline)
		drawer.DrawString(line)
		baseline += metrics.Height.Ceil()
	}
}
