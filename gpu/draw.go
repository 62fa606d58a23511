// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "nextgl.dev/internal/gl"

// DrawFullscreen draws a single triangle of three vertices with the bound
// program and no vertex attributes. The vertex shader is expected to
// derive positions from gl_VertexID.
func (c *Context) DrawFullscreen() {
	if !c.Valid() {
		return
	}
	if !c.state.vao.Valid() {
		c.state.vao = c.funcs.CreateVertexArray()
		c.funcs.BindVertexArray(c.state.vao)
	}
	c.funcs.DrawArrays(gl.TRIANGLES, 0, 3)
}

// BindTexture binds t to the texture unit.
func (c *Context) BindTexture(unit int, t *Texture) {
	if !c.Valid() {
		return
	}
	c.funcs.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	c.funcs.BindTexture(gl.TEXTURE_2D, t.obj)
}

// SetFloat sets a float uniform of p. The program must be in use.
// Uniforms the program does not have are ignored.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Uniform(name); loc.Valid() {
		p.ctx.funcs.Uniform1f(loc, v)
	}
}

// SetVec2 sets a vec2 uniform of p.
func (p *Program) SetVec2(name string, x, y float32) {
	if loc := p.Uniform(name); loc.Valid() {
		p.ctx.funcs.Uniform2f(loc, x, y)
	}
}

// SetInt sets an int or sampler uniform of p.
func (p *Program) SetInt(name string, v int) {
	if loc := p.Uniform(name); loc.Valid() {
		p.ctx.funcs.Uniform1i(loc, v)
	}
}
