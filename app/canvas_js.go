// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"image"
	"syscall/js"

	"nextgl.dev/gpu"
	"nextgl.dev/internal/gl"
	"nextgl.dev/internal/webgl"
)

// Canvas is a gpu.Surface backed by an HTML canvas element.
type Canvas struct {
	cnv    js.Value
	window js.Value
	funcs  *webgl.Functions
}

var _ gpu.Surface = (*Canvas)(nil)

// NewCanvas wraps a canvas element.
func NewCanvas(cnv js.Value) *Canvas {
	return &Canvas{
		cnv:    cnv,
		window: js.Global().Get("window"),
	}
}

// CanvasByID returns the canvas element with the given id, or creates a
// canvas covering the whole page if there is none.
func CanvasByID(id string) *Canvas {
	doc := js.Global().Get("document")
	cnv := doc.Call("getElementById", id)
	if cnv.IsNull() {
		cnv = doc.Call("createElement", "canvas")
		cnv.Set("id", id)
		style := cnv.Get("style")
		style.Set("position", "fixed")
		style.Set("width", "100%")
		style.Set("height", "100%")
		doc.Get("body").Call("appendChild", cnv)
	}
	return NewCanvas(cnv)
}

func (c *Canvas) Context(antialias bool) (gl.Functions, error) {
	args := map[string]interface{}{
		"antialias":             antialias,
		"preserveDrawingBuffer": false,
		"powerPreference":       "high-performance",
	}
	ctx := c.cnv.Call("getContext", "webgl2", args)
	if ctx.IsNull() {
		return nil, errors.New("app: webgl2 is not supported")
	}
	f, err := webgl.NewFunctions(ctx)
	if err != nil {
		return nil, err
	}
	c.funcs = f
	return f, nil
}

func (c *Canvas) ClientSize() (width, height float64) {
	return c.cnv.Get("clientWidth").Float(), c.cnv.Get("clientHeight").Float()
}

func (c *Canvas) BufferSize() image.Point {
	return image.Point{X: c.cnv.Get("width").Int(), Y: c.cnv.Get("height").Int()}
}

func (c *Canvas) SetBufferSize(sz image.Point) {
	c.cnv.Set("width", sz.X)
	c.cnv.Set("height", sz.Y)
}

func (c *Canvas) DrawingBufferSize() image.Point {
	if c.funcs == nil {
		return c.BufferSize()
	}
	w, h := c.funcs.DrawingBufferSize()
	return image.Point{X: w, Y: h}
}

func (c *Canvas) PixelRatio() float64 {
	r := c.window.Get("devicePixelRatio")
	if r.Type() != js.TypeNumber {
		return 0
	}
	return r.Float()
}

// Run calls draw once per animation frame, after resizing the
// backbuffer and uploading loaded textures. It never returns.
func (c *Canvas) Run(ctx *gpu.Context, draw func()) {
	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if !ctx.Valid() {
			frame.Release()
			return nil
		}
		ctx.CheckAndResize()
		ctx.FlushTextures()
		draw()
		c.window.Call("requestAnimationFrame", frame)
		return nil
	})
	c.window.Call("requestAnimationFrame", frame)
	select {}
}

// Alert notifies the user with a blocking browser dialog. It is meant
// for gpu.OnFatal.
func Alert(err error) {
	js.Global().Call("alert", "Unable to initialize WebGL. Your browser may not support it.\n\n"+err.Error())
}
