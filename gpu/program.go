// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"

	"nextgl.dev/internal/gl"
)

// Program is a linked vertex and fragment shader pair. A Program is
// owned by the Context that built it and stays valid until the Context
// is released.
type Program struct {
	ctx  *Context
	obj  gl.Program
	vert gl.Shader
	frag gl.Shader
	key  Key
	// uniforms caches uniform locations by name.
	uniforms map[string]gl.Uniform
}

// InitProgram returns a linked program for the vertex and fragment
// sources with defines injected after their first line. Requests whose
// final sources are identical return the same Program without issuing
// any GL calls.
//
// Failed builds are logged and not cached.
func (c *Context) InitProgram(vertSrc, fragSrc string, defines Defines) (*Program, error) {
	if !c.Valid() {
		return nil, ErrReleased
	}
	if err := defines.validate(); err != nil {
		return nil, err
	}
	if block := defines.block(c.syntax); block != "" {
		vertSrc = injectDefines(vertSrc, block)
		fragSrc = injectDefines(fragSrc, block)
	}
	key := programKey(vertSrc, fragSrc)
	if p, ok := c.programs[key]; ok {
		return p, nil
	}
	p, err := c.createProgram(key, vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	c.programs[key] = p
	c.log.Debug("program created", "key", key)
	return p, nil
}

// Programs returns the number of cached programs.
func (c *Context) Programs() int {
	return len(c.programs)
}

func (c *Context) createProgram(key Key, vertSrc, fragSrc string) (*Program, error) {
	vs, verr := c.createShader(key, VertexStage, vertSrc)
	fs, ferr := c.createShader(key, FragmentStage, fragSrc)
	if err := errors.Join(verr, ferr); err != nil {
		if verr == nil {
			c.funcs.DeleteShader(vs)
		}
		if ferr == nil {
			c.funcs.DeleteShader(fs)
		}
		return nil, err
	}
	prog := c.funcs.CreateProgram()
	if !prog.Valid() {
		c.funcs.DeleteShader(vs)
		c.funcs.DeleteShader(fs)
		return nil, fmt.Errorf("gpu: program %v: glCreateProgram failed", key)
	}
	c.funcs.AttachShader(prog, vs)
	c.funcs.AttachShader(prog, fs)
	c.funcs.LinkProgram(prog)
	if c.funcs.GetProgrami(prog, gl.LINK_STATUS) == gl.FALSE {
		err := &LinkError{Key: key, Log: c.funcs.GetProgramInfoLog(prog)}
		c.log.Error("unable to initialize the shader program", "key", key, "log", err.Log)
		c.funcs.DeleteProgram(prog)
		c.funcs.DeleteShader(vs)
		c.funcs.DeleteShader(fs)
		return nil, err
	}
	return &Program{
		ctx:  c,
		obj:  prog,
		vert: vs,
		frag: fs,
		key:  key,
	}, nil
}

func (c *Context) createShader(key Key, stage Stage, src string) (gl.Shader, error) {
	typ := gl.Enum(gl.VERTEX_SHADER)
	if stage == FragmentStage {
		typ = gl.FRAGMENT_SHADER
	}
	sh := c.funcs.CreateShader(typ)
	if !sh.Valid() {
		return gl.Shader{}, fmt.Errorf("gpu: %v shader: glCreateShader failed", stage)
	}
	c.funcs.ShaderSource(sh, src)
	c.funcs.CompileShader(sh)
	if c.funcs.GetShaderi(sh, gl.COMPILE_STATUS) == gl.FALSE {
		err := &CompileError{Stage: stage, Log: c.funcs.GetShaderInfoLog(sh)}
		c.log.Error("an error occurred compiling the shaders", "key", key, "stage", stage, "log", err.Log)
		c.funcs.DeleteShader(sh)
		return gl.Shader{}, err
	}
	return sh, nil
}

// Key returns the content key the program is cached under.
func (p *Program) Key() Key {
	return p.key
}

// Object returns the underlying GL program object.
func (p *Program) Object() gl.Program {
	return p.obj
}

// Uniform returns the location of the named uniform, or an invalid
// location if the program has no active uniform by that name or its
// context is released.
func (p *Program) Uniform(name string) gl.Uniform {
	if !p.ctx.Valid() {
		return gl.NoUniform
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.ctx.funcs.GetUniformLocation(p.obj, name)
	if p.uniforms == nil {
		p.uniforms = make(map[string]gl.Uniform)
	}
	p.uniforms[name] = loc
	return loc
}

func (p *Program) release() {
	f := p.ctx.funcs
	f.DeleteProgram(p.obj)
	f.DeleteShader(p.vert)
	f.DeleteShader(p.frag)
	p.uniforms = nil
}
