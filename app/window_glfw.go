// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js && !android && !ios
// +build !js,!android,!ios

package app

import (
	"errors"
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"nextgl.dev/gpu"
	"nextgl.dev/internal/desktopgl"
	"nextgl.dev/internal/gl"
)

func init() {
	// glfw must run on the main thread.
	runtime.LockOSThread()
}

// Window is a gpu.Surface backed by a desktop window with an OpenGL 4.1
// core context. The window is created by the first call to Context.
type Window struct {
	title string
	size  image.Point
	win   *glfw.Window
	buf   image.Point

	hidden bool
}

var _ gpu.Surface = (*Window)(nil)

// NewWindow initializes glfw and returns a Window that will open with
// the given title and size in screen coordinates. NewWindow must be
// called from the main goroutine.
func NewWindow(title string, width, height int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("app: invalid window size %dx%d", width, height)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("app: glfw: %w", err)
	}
	return &Window{
		title: title,
		size:  image.Pt(width, height),
	}, nil
}

func (w *Window) Context(antialias bool) (gl.Functions, error) {
	if w.win != nil {
		return nil, errors.New("app: window already has a context")
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	if antialias {
		glfw.WindowHint(glfw.Samples, 4)
	}
	if w.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	win, err := glfw.CreateWindow(w.size.X, w.size.Y, w.title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("app: glfw: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	f, err := desktopgl.NewFunctions()
	if err != nil {
		win.Destroy()
		return nil, err
	}
	w.win = win
	return f, nil
}

// Hide hides the window, or keeps it from being shown when its context
// is created. A hidden window still has a working GL context.
func (w *Window) Hide() {
	w.hidden = true
	if w.win != nil {
		w.win.Hide()
	}
}

// ClientSize reports the window size in window coordinates.
func (w *Window) ClientSize() (width, height float64) {
	if w.win == nil {
		return float64(w.size.X), float64(w.size.Y)
	}
	x, y := w.win.GetSize()
	return float64(x), float64(y)
}

func (w *Window) BufferSize() image.Point {
	return w.buf
}

// SetBufferSize records the requested size. The default framebuffer of
// a window follows the window size, so there is nothing to allocate.
func (w *Window) SetBufferSize(sz image.Point) {
	w.buf = sz
}

func (w *Window) DrawingBufferSize() image.Point {
	if w.win == nil {
		return w.buf
	}
	x, y := w.win.GetFramebufferSize()
	return image.Pt(x, y)
}

// PixelRatio reports framebuffer pixels per window coordinate. Window
// coordinates are points on macOS but already pixels on Windows and X11,
// where the ratio is 1 regardless of the monitor content scale.
func (w *Window) PixelRatio() float64 {
	if w.win == nil {
		return 0
	}
	ww, _ := w.win.GetSize()
	fw, _ := w.win.GetFramebufferSize()
	return framebufferRatio(ww, fw)
}

func framebufferRatio(windowWidth, framebufferWidth int) float64 {
	if windowWidth <= 0 || framebufferWidth <= 0 {
		return 0
	}
	return float64(framebufferWidth) / float64(windowWidth)
}

// Run calls draw once per frame, after resizing the backbuffer and
// uploading loaded textures, until the window is closed.
func (w *Window) Run(ctx *gpu.Context, draw func()) error {
	if w.win == nil || !ctx.Valid() {
		return gpu.ErrNoContext
	}
	for !w.win.ShouldClose() {
		ctx.CheckAndResize()
		ctx.FlushTextures()
		draw()
		w.win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
