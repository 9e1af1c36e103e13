//go:build js && wasm

package main

import (
	"fmt"
	"image/color"
	"syscall/js"

	"github.com/rook-computer/hexdrift/internal/config"
	"github.com/rook-computer/hexdrift/internal/hexgrid"
)

// jsCanvas is a hexgrid.Surface over an HTML canvas element.
type jsCanvas struct {
	el  js.Value
	ctx js.Value
}

func newJSCanvas(el js.Value) (*jsCanvas, error) {
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, fmt.Errorf("%w: getContext(\"2d\") returned null", hexgrid.ErrSurfaceUnavailable)
	}
	return &jsCanvas{el: el, ctx: ctx}, nil
}

func (c *jsCanvas) SetPixelSize(width, height int) error {
	c.el.Set("width", width)
	c.el.Set("height", height)
	return nil
}

func (c *jsCanvas) SetDisplaySize(width, height float64) {
	style := c.el.Get("style")
	style.Set("width", fmt.Sprintf("%gpx", width))
	style.Set("height", fmt.Sprintf("%gpx", height))
}

func (c *jsCanvas) SetScale(sx, sy float64) { c.ctx.Call("setTransform", sx, 0, 0, sy, 0, 0) }

func (c *jsCanvas) ClearRect(x, y, width, height float64) {
	c.ctx.Call("clearRect", x, y, width, height)
}

func (c *jsCanvas) BeginPath()          { c.ctx.Call("beginPath") }
func (c *jsCanvas) MoveTo(x, y float64) { c.ctx.Call("moveTo", x, y) }
func (c *jsCanvas) LineTo(x, y float64) { c.ctx.Call("lineTo", x, y) }
func (c *jsCanvas) ClosePath()          { c.ctx.Call("closePath") }

func (c *jsCanvas) SetStrokeStyle(col color.Color, width float64) {
	c.ctx.Set("strokeStyle", config.FormatColor(color.NRGBAModel.Convert(col).(color.NRGBA)))
	c.ctx.Set("lineWidth", width)
}

func (c *jsCanvas) Stroke() error {
	c.ctx.Call("stroke")
	return nil
}

// windowViewport reads the browser window on every call.
type windowViewport struct{ window js.Value }

func (v windowViewport) Size() (float64, float64) {
	return v.window.Get("innerWidth").Float(), v.window.Get("innerHeight").Float()
}

func (v windowViewport) PixelRatio() float64 {
	ratio := v.window.Get("devicePixelRatio")
	if ratio.Type() != js.TypeNumber {
		return 1
	}
	return ratio.Float()
}
