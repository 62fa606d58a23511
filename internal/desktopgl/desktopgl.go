// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

// Package desktopgl implements gl.Functions on top of a desktop
// OpenGL 4.1 core profile context.
package desktopgl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	glapi "nextgl.dev/internal/gl"
)

type Functions struct{}

var _ glapi.Functions = (*Functions)(nil)

// NewFunctions loads the GL entry points of the context current on the
// calling thread.
func NewFunctions() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Functions{}, nil
}

func (f *Functions) ActiveTexture(t glapi.Enum) {
	gl.ActiveTexture(uint32(t))
}
func (f *Functions) AttachShader(p glapi.Program, s glapi.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}
func (f *Functions) BindTexture(target glapi.Enum, t glapi.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}
func (f *Functions) BindVertexArray(a glapi.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}
func (f *Functions) Clear(mask glapi.Enum) {
	gl.Clear(uint32(mask))
}
func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}
func (f *Functions) ClearDepthf(d float32) {
	gl.ClearDepthf(d)
}
func (f *Functions) CompileShader(s glapi.Shader) {
	gl.CompileShader(uint32(s.V))
}
func (f *Functions) CreateProgram() glapi.Program {
	return glapi.Program{V: uint(gl.CreateProgram())}
}
func (f *Functions) CreateShader(ty glapi.Enum) glapi.Shader {
	return glapi.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}
func (f *Functions) CreateTexture() glapi.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return glapi.Texture{V: uint(t)}
}
func (f *Functions) CreateVertexArray() glapi.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return glapi.VertexArray{V: uint(a)}
}
func (f *Functions) DeleteProgram(p glapi.Program) {
	gl.DeleteProgram(uint32(p.V))
}
func (f *Functions) DeleteShader(s glapi.Shader) {
	gl.DeleteShader(uint32(s.V))
}
func (f *Functions) DeleteTexture(t glapi.Texture) {
	v := uint32(t.V)
	gl.DeleteTextures(1, &v)
}
func (f *Functions) DeleteVertexArray(a glapi.VertexArray) {
	v := uint32(a.V)
	gl.DeleteVertexArrays(1, &v)
}
func (f *Functions) DepthFunc(fn glapi.Enum) {
	gl.DepthFunc(uint32(fn))
}
func (f *Functions) DrawArrays(mode glapi.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}
func (f *Functions) Enable(cap glapi.Enum) {
	gl.Enable(uint32(cap))
}
func (f *Functions) GenerateMipmap(target glapi.Enum) {
	gl.GenerateMipmap(uint32(target))
}
func (f *Functions) GetProgramInfoLog(p glapi.Program) string {
	n := f.GetProgrami(p, glapi.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(uint32(p.V), int32(len(buf)), nil, &buf[0])
	return goString(buf)
}
func (f *Functions) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}
func (f *Functions) GetShaderInfoLog(s glapi.Shader) string {
	n := f.GetShaderi(s, glapi.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(uint32(s.V), int32(len(buf)), nil, &buf[0])
	return goString(buf)
}
func (f *Functions) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}
func (f *Functions) GetString(pname glapi.Enum) string {
	s := gl.GetString(uint32(pname))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
func (f *Functions) GetUniformLocation(p glapi.Program, name string) glapi.Uniform {
	return glapi.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), gl.Str(name+"\x00")))}
}
func (f *Functions) LinkProgram(p glapi.Program) {
	gl.LinkProgram(uint32(p.V))
}
func (f *Functions) ShaderSource(s glapi.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(s.V), 1, csrc, nil)
}
func (f *Functions) TexImage2D(target glapi.Enum, level int, internalFormat glapi.Enum, width, height int, format, ty glapi.Enum, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr)
}
func (f *Functions) TexParameteri(target, pname glapi.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}
func (f *Functions) Uniform1f(dst glapi.Uniform, v float32) {
	gl.Uniform1f(int32(dst.V), v)
}
func (f *Functions) Uniform1i(dst glapi.Uniform, v int) {
	gl.Uniform1i(int32(dst.V), int32(v))
}
func (f *Functions) Uniform2f(dst glapi.Uniform, v0, v1 float32) {
	gl.Uniform2f(int32(dst.V), v0, v1)
}
func (f *Functions) UseProgram(p glapi.Program) {
	gl.UseProgram(uint32(p.V))
}
func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// goString converts a NUL-terminated info log to a Go string.
func goString(s []byte) string {
	if i := strings.IndexByte(string(s), 0); i >= 0 {
		s = s[:i]
	}
	return string(s)
}
