//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"
	"time"

	"github.com/rook-computer/hexdrift/internal/config"
	"github.com/rook-computer/hexdrift/internal/hexgrid"
)

// consoleLogger writes component-tagged lines to the browser console.
type consoleLogger struct{ console js.Value }

func (l consoleLogger) Infof(component, format string, args ...interface{}) {
	l.console.Call("log", component+": "+fmt.Sprintf(format, args...))
}

func (l consoleLogger) Errorf(component, format string, args ...interface{}) {
	l.console.Call("error", component+": "+fmt.Sprintf(format, args...))
}

func main() {
	global := js.Global()
	logger := consoleLogger{console: global.Get("console")}
	doc := global.Get("document")

	el := doc.Call("createElement", "canvas")
	style := el.Get("style")
	style.Set("position", "fixed")
	style.Set("top", "0")
	style.Set("left", "0")
	style.Set("zIndex", "-1")
	style.Set("pointerEvents", "none")
	doc.Get("body").Call("appendChild", el)

	surface, err := newJSCanvas(el)
	if err != nil {
		logger.Errorf("web", "%v", err)
		return
	}
	animator, err := hexgrid.New(surface, windowViewport{window: global}, config.Defaults().Grid())
	if err != nil {
		logger.Errorf("web", "animator init error: %v", err)
		return
	}
	animator.Logger = logger

	global.Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		if err := animator.OnResize(); err != nil {
			logger.Errorf("web", "resize: %v", err)
		}
		return nil
	}))

	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		// requestAnimationFrame passes a DOMHighResTimeStamp in milliseconds.
		now := time.Duration(args[0].Float() * float64(time.Millisecond))
		if err := animator.Tick(now); err != nil {
			logger.Errorf("web", "frame: %v", err)
			return nil
		}
		global.Call("requestAnimationFrame", frame)
		return nil
	})
	global.Call("requestAnimationFrame", frame)

	select {}
}
