// SPDX-License-Identifier: Unlicense OR MIT

// Package gpu manages the GPU context of a drawing surface: its render
// state, a content-addressed cache of shader programs, backbuffer
// resizing and texture loading.
//
// A Context is not safe for concurrent use. All methods must be called
// from the goroutine that owns the underlying GL context, typically the
// render loop.
package gpu

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/exp/slog"

	"nextgl.dev/internal/gl"
)

// Surface is a drawing surface able to provide a GPU context, such as
// an HTML canvas or a desktop window.
type Surface interface {
	// Context requests the GPU context of the surface.
	Context(antialias bool) (gl.Functions, error)
	// ClientSize reports the layout size of the surface in
	// device-independent pixels.
	ClientSize() (width, height float64)
	// BufferSize reports the current backbuffer allocation.
	BufferSize() image.Point
	// SetBufferSize reallocates the backbuffer.
	SetBufferSize(sz image.Point)
	// DrawingBufferSize reports the size the context actually renders
	// into, which the host may clamp below BufferSize.
	DrawingBufferSize() image.Point
	// PixelRatio reports the host display density, or 0 if unknown.
	PixelRatio() float64
}

// Context is the GPU context of a Surface.
type Context struct {
	funcs      gl.Functions
	surface    Surface
	log        *slog.Logger
	syntax     Syntax
	pixelRatio float64
	clearColor [4]float32
	fetcher    Fetcher

	programs map[Key]*Program
	state    glState

	// mu guards the texture upload queue shared with loader goroutines.
	mu       sync.Mutex
	uploads  []*textureUpload
	released bool
}

// glState tracks GL state to skip redundant calls.
type glState struct {
	prog *Program
	// vao is the empty vertex array bound for attribute-less draws.
	vao gl.VertexArray
}

// NewContext acquires and configures the GPU context of a surface.
//
// When the surface refuses to provide a context, the OnFatal hook is
// called and the returned error wraps ErrNoContext.
func NewContext(s Surface, options ...Option) (*Context, error) {
	if s == nil {
		panic("gpu: nil surface")
	}
	cnf := defaultConfig()
	cnf.apply(options)
	f, err := s.Context(cnf.Antialias)
	if err == nil && f == nil {
		err = ErrNoContext
	}
	if err != nil {
		if !errors.Is(err, ErrNoContext) {
			err = fmt.Errorf("%w: %v", ErrNoContext, err)
		}
		cnf.Logger.Error("unable to initialize the GPU context", "err", err)
		if cnf.OnFatal != nil {
			cnf.OnFatal(err)
		}
		return nil, err
	}
	// Surfaces may only know their density once the context exists.
	if cnf.PixelRatio <= 0 {
		cnf.PixelRatio = s.PixelRatio()
	}
	if cnf.PixelRatio <= 0 {
		cnf.PixelRatio = 1
	}
	c := &Context{
		funcs:      f,
		surface:    s,
		log:        cnf.Logger,
		syntax:     cnf.Syntax,
		pixelRatio: cnf.PixelRatio,
		fetcher:    cnf.Fetcher,
		programs:   make(map[Key]*Program),
	}
	alpha := float32(1)
	if cnf.Transparent {
		alpha = 0
	}
	col := cnf.ClearColor
	c.clearColor = [4]float32{
		float32(col.R) / 0xff,
		float32(col.G) / 0xff,
		float32(col.B) / 0xff,
		alpha,
	}
	f.ClearColor(c.clearColor[0], c.clearColor[1], c.clearColor[2], c.clearColor[3])
	f.ClearDepthf(1)
	f.Enable(gl.DEPTH_TEST)
	f.DepthFunc(gl.LEQUAL)
	f.Enable(gl.CULL_FACE)

	glVer := f.GetString(gl.VERSION)
	if ver, gles, err := gl.ParseGLVersion(glVer); err != nil {
		c.log.Warn("unrecognized GL version", "version", glVer)
	} else {
		c.log.Info("GPU context acquired", "version", fmt.Sprintf("%d.%d", ver[0], ver[1]), "gles", gles, "renderer", f.GetString(gl.RENDERER))
	}
	return c, nil
}

// Valid reports whether the context can still issue GL calls.
func (c *Context) Valid() bool {
	return c != nil && c.funcs != nil
}

// ClearColor returns the configured clear color channels.
func (c *Context) ClearColor() [4]float32 {
	return c.clearColor
}

// PixelRatio returns the backbuffer pixels per layout pixel.
func (c *Context) PixelRatio() float64 {
	return c.pixelRatio
}

// CheckAndResize reallocates the backbuffer when the layout size of the
// surface, scaled by the pixel ratio, no longer matches it, and resets
// the viewport to the full drawing buffer. It reports whether a resize
// happened. Call it once per frame before drawing.
func (c *Context) CheckAndResize() bool {
	if !c.Valid() {
		return false
	}
	w, h := c.surface.ClientSize()
	sz := image.Point{
		X: int(math.Floor(w * c.pixelRatio)),
		Y: int(math.Floor(h * c.pixelRatio)),
	}
	if c.surface.BufferSize() == sz {
		return false
	}
	c.surface.SetBufferSize(sz)
	db := c.surface.DrawingBufferSize()
	c.funcs.Viewport(0, 0, db.X, db.Y)
	return true
}

// Clear clears the color and depth buffers.
func (c *Context) Clear() {
	if !c.Valid() {
		return
	}
	c.funcs.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// UseProgram binds p for subsequent draw calls. A nil p unbinds the
// current program.
func (c *Context) UseProgram(p *Program) {
	if !c.Valid() || c.state.prog == p {
		return
	}
	var obj gl.Program
	if p != nil {
		obj = p.obj
	}
	c.funcs.UseProgram(obj)
	c.state.prog = p
}

// Functions returns the GL function table of the context.
func (c *Context) Functions() gl.Functions {
	return c.funcs
}

// Release deletes every cached program and abandons pending texture
// loads. The context is invalid afterwards.
func (c *Context) Release() {
	if !c.Valid() {
		return
	}
	for k, p := range c.programs {
		p.release()
		delete(c.programs, k)
	}
	if c.state.vao.Valid() {
		c.funcs.DeleteVertexArray(c.state.vao)
	}
	c.mu.Lock()
	for _, u := range c.uploads {
		u.tex.complete(ErrReleased)
	}
	c.uploads = nil
	c.released = true
	c.mu.Unlock()
	c.state = glState{}
	c.funcs = nil
}
