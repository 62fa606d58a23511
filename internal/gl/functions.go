// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the subset of OpenGL ES 3 / WebGL 2 entry points the
// renderer issues. Implementations are not safe for concurrent use and
// must be called from the goroutine that owns the context.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindTexture(target Enum, t Texture)
	BindVertexArray(a VertexArray)
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(d float32)
	CompileShader(s Shader)
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	CreateVertexArray() VertexArray
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	DeleteVertexArray(a VertexArray)
	DepthFunc(fn Enum)
	DrawArrays(mode Enum, first, count int)
	Enable(cap Enum)
	GenerateMipmap(target Enum)
	GetProgramInfoLog(p Program) string
	GetProgrami(p Program, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetShaderi(s Shader, pname Enum) int
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	ShaderSource(s Shader, src string)
	// TexImage2D specifies a two-dimensional texture image from
	// tightly packed pixels. A nil pixels slice allocates storage only.
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, pixels []byte)
	TexParameteri(target, pname Enum, param int)
	Uniform1f(dst Uniform, v float32)
	Uniform1i(dst Uniform, v int)
	Uniform2f(dst Uniform, v0, v1 float32)
	UseProgram(p Program)
	Viewport(x, y, width, height int)
}
