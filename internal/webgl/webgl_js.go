// SPDX-License-Identifier: Unlicense OR MIT

// Package webgl implements gl.Functions on top of a WebGL 2
// rendering context.
package webgl

import (
	"errors"
	"syscall/js"

	"nextgl.dev/internal/gl"
)

type Functions struct {
	Ctx js.Value

	// Cached reference to the Uint8Array JS type.
	uint8Array js.Value
	// Cached JS array.
	arrayBuf js.Value
}

var _ gl.Functions = (*Functions)(nil)

// NewFunctions wraps a WebGL 2 rendering context.
func NewFunctions(ctx js.Value) (*Functions, error) {
	webgl2Class := js.Global().Get("WebGL2RenderingContext")
	if webgl2Class.IsUndefined() || !ctx.InstanceOf(webgl2Class) {
		return nil, errors.New("webgl: not a WebGL 2 rendering context")
	}
	return &Functions{
		Ctx:        ctx,
		uint8Array: js.Global().Get("Uint8Array"),
	}, nil
}

// DrawingBufferSize reports the actual size of the drawing buffer, which
// the browser may clamp below the canvas size.
func (f *Functions) DrawingBufferSize() (width, height int) {
	return f.Ctx.Get("drawingBufferWidth").Int(), f.Ctx.Get("drawingBufferHeight").Int()
}

func (f *Functions) ActiveTexture(t gl.Enum) {
	f.Ctx.Call("activeTexture", int(t))
}
func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	f.Ctx.Call("attachShader", js.Value(p), js.Value(s))
}
func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	f.Ctx.Call("bindTexture", int(target), js.Value(t))
}
func (f *Functions) BindVertexArray(a gl.VertexArray) {
	f.Ctx.Call("bindVertexArray", js.Value(a))
}
func (f *Functions) Clear(mask gl.Enum) {
	f.Ctx.Call("clear", int(mask))
}
func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.Ctx.Call("clearColor", red, green, blue, alpha)
}
func (f *Functions) ClearDepthf(d float32) {
	f.Ctx.Call("clearDepth", d)
}
func (f *Functions) CompileShader(s gl.Shader) {
	f.Ctx.Call("compileShader", js.Value(s))
}
func (f *Functions) CreateProgram() gl.Program {
	return gl.Program(f.Ctx.Call("createProgram"))
}
func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	return gl.Shader(f.Ctx.Call("createShader", int(ty)))
}
func (f *Functions) CreateTexture() gl.Texture {
	return gl.Texture(f.Ctx.Call("createTexture"))
}
func (f *Functions) CreateVertexArray() gl.VertexArray {
	return gl.VertexArray(f.Ctx.Call("createVertexArray"))
}
func (f *Functions) DeleteProgram(p gl.Program) {
	f.Ctx.Call("deleteProgram", js.Value(p))
}
func (f *Functions) DeleteShader(s gl.Shader) {
	f.Ctx.Call("deleteShader", js.Value(s))
}
func (f *Functions) DeleteTexture(t gl.Texture) {
	f.Ctx.Call("deleteTexture", js.Value(t))
}
func (f *Functions) DeleteVertexArray(a gl.VertexArray) {
	f.Ctx.Call("deleteVertexArray", js.Value(a))
}
func (f *Functions) DepthFunc(fn gl.Enum) {
	f.Ctx.Call("depthFunc", int(fn))
}
func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	f.Ctx.Call("drawArrays", int(mode), first, count)
}
func (f *Functions) Enable(cap gl.Enum) {
	f.Ctx.Call("enable", int(cap))
}
func (f *Functions) GenerateMipmap(target gl.Enum) {
	f.Ctx.Call("generateMipmap", int(target))
}
func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	return stringVal(f.Ctx.Call("getProgramInfoLog", js.Value(p)))
}
func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	return paramVal(f.Ctx.Call("getProgramParameter", js.Value(p), int(pname)))
}
func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	return stringVal(f.Ctx.Call("getShaderInfoLog", js.Value(s)))
}
func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	return paramVal(f.Ctx.Call("getShaderParameter", js.Value(s), int(pname)))
}
func (f *Functions) GetString(pname gl.Enum) string {
	return stringVal(f.Ctx.Call("getParameter", int(pname)))
}
func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform(f.Ctx.Call("getUniformLocation", js.Value(p), name))
}
func (f *Functions) LinkProgram(p gl.Program) {
	f.Ctx.Call("linkProgram", js.Value(p))
}
func (f *Functions) ShaderSource(s gl.Shader, src string) {
	f.Ctx.Call("shaderSource", js.Value(s), src)
}
func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, pixels []byte) {
	f.Ctx.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(ty), f.byteArrayOf(pixels))
}
func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	f.Ctx.Call("texParameteri", int(target), int(pname), param)
}
func (f *Functions) Uniform1f(dst gl.Uniform, v float32) {
	f.Ctx.Call("uniform1f", js.Value(dst), v)
}
func (f *Functions) Uniform1i(dst gl.Uniform, v int) {
	f.Ctx.Call("uniform1i", js.Value(dst), v)
}
func (f *Functions) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.Ctx.Call("uniform2f", js.Value(dst), v0, v1)
}
func (f *Functions) UseProgram(p gl.Program) {
	if !p.Valid() {
		f.Ctx.Call("useProgram", js.Null())
		return
	}
	f.Ctx.Call("useProgram", js.Value(p))
}
func (f *Functions) Viewport(x, y, width, height int) {
	f.Ctx.Call("viewport", x, y, width, height)
}

func (f *Functions) byteArrayOf(data []byte) js.Value {
	if len(data) == 0 {
		return js.Null()
	}
	f.resizeByteBuffer(len(data))
	ba := f.uint8Array.New(f.arrayBuf, int(0), int(len(data)))
	js.CopyBytesToJS(ba, data)
	return ba
}

func (f *Functions) resizeByteBuffer(n int) {
	if n == 0 {
		return
	}
	if !f.arrayBuf.IsUndefined() && f.arrayBuf.Get("byteLength").Int() >= n {
		return
	}
	f.arrayBuf = js.Global().Get("ArrayBuffer").New(n)
}

func paramVal(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if b := v.Bool(); b {
			return 1
		} else {
			return 0
		}
	case js.TypeNumber:
		return v.Int()
	default:
		panic("unknown parameter type")
	}
}

// stringVal maps the null returned for objects without a log to "".
func stringVal(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
