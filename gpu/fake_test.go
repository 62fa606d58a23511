// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"image"
	"io"
	"strings"

	"golang.org/x/exp/slog"

	"nextgl.dev/internal/gl"
)

// fakeGL is an in-memory gl.Functions that records the calls issued.
type fakeGL struct {
	next     uint
	shaders  map[uint]*fakeShader
	programs map[uint]*fakeProgram
	textures map[uint]*fakeTexture
	calls    []string

	// failCompile reports whether a shader source fails to compile.
	failCompile func(src string) bool
	failLink    bool

	clearColor [4]float32
	clearDepth float32
	enabled    map[gl.Enum]bool
	depthFunc  gl.Enum
	viewport   [4]int
	bound      gl.Program
	boundTex   uint
	activeTex  gl.Enum
	vaos       map[uint]bool
	draws      int
	// uniforms holds the last value set per uniform location.
	uniforms map[int][]float32
	version  string
	// srcs holds every source passed to ShaderSource.
	srcs []string
}

type fakeShader struct {
	typ      gl.Enum
	src      string
	compiled bool
	log      string
}

type fakeProgram struct {
	attached []uint
	linked   bool
	log      string
}

type fakeTexture struct {
	width, height int
	pixels        []byte
	mipmaps       bool
	minFilter     int
}

// fakeSurface is a drawing surface with a settable layout size.
type fakeSurface struct {
	funcs *fakeGL
	err   error

	antialias bool
	client    [2]float64
	buf       image.Point
	// maxBuf clamps the drawing buffer when non-zero.
	maxBuf image.Point
	ratio  float64
	// contextRatio, when non-zero, becomes the ratio once a context
	// exists.
	contextRatio float64
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaders:  make(map[uint]*fakeShader),
		programs: make(map[uint]*fakeProgram),
		textures: make(map[uint]*fakeTexture),
		enabled:  make(map[gl.Enum]bool),
		vaos:     make(map[uint]bool),
		uniforms: make(map[int][]float32),
		version:  "OpenGL ES 3.0 fake",
	}
}

func newTestContext(options ...Option) (*Context, *fakeGL, *fakeSurface) {
	f := newFakeGL()
	s := &fakeSurface{funcs: f, ratio: 1}
	options = append([]Option{Logger(discardLogger())}, options...)
	c, err := NewContext(s, options...)
	if err != nil {
		panic(err)
	}
	f.calls = nil
	return c, f, s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *fakeGL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeGL) id() uint {
	f.next++
	return f.next
}

func (f *fakeGL) ActiveTexture(t gl.Enum) {
	f.record("ActiveTexture")
	f.activeTex = t
}

func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader")
	f.programs[p.V].attached = append(f.programs[p.V].attached, s.V)
}

func (f *fakeGL) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("BindTexture")
	f.boundTex = t.V
}

func (f *fakeGL) BindVertexArray(a gl.VertexArray) {
	f.record("BindVertexArray")
}

func (f *fakeGL) Clear(mask gl.Enum) {
	f.record("Clear %#x", uint(mask))
}

func (f *fakeGL) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor")
	f.clearColor = [4]float32{red, green, blue, alpha}
}

func (f *fakeGL) ClearDepthf(d float32) {
	f.record("ClearDepthf")
	f.clearDepth = d
}

func (f *fakeGL) CompileShader(s gl.Shader) {
	f.record("CompileShader")
	sh := f.shaders[s.V]
	if f.failCompile != nil && f.failCompile(sh.src) {
		sh.log = "ERROR: 0:1: syntax error\n"
		return
	}
	sh.compiled = true
}

func (f *fakeGL) CreateProgram() gl.Program {
	f.record("CreateProgram")
	id := f.id()
	f.programs[id] = new(fakeProgram)
	return gl.Program{V: id}
}

func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader {
	f.record("CreateShader")
	id := f.id()
	f.shaders[id] = &fakeShader{typ: ty}
	return gl.Shader{V: id}
}

func (f *fakeGL) CreateTexture() gl.Texture {
	f.record("CreateTexture")
	id := f.id()
	f.textures[id] = new(fakeTexture)
	return gl.Texture{V: id}
}

func (f *fakeGL) CreateVertexArray() gl.VertexArray {
	f.record("CreateVertexArray")
	id := f.id()
	f.vaos[id] = true
	return gl.VertexArray{V: id}
}

func (f *fakeGL) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram")
	delete(f.programs, p.V)
}

func (f *fakeGL) DeleteShader(s gl.Shader) {
	f.record("DeleteShader")
	delete(f.shaders, s.V)
}

func (f *fakeGL) DeleteTexture(t gl.Texture) {
	f.record("DeleteTexture")
	delete(f.textures, t.V)
}

func (f *fakeGL) DeleteVertexArray(a gl.VertexArray) {
	f.record("DeleteVertexArray")
	delete(f.vaos, a.V)
}

func (f *fakeGL) DepthFunc(fn gl.Enum) {
	f.record("DepthFunc")
	f.depthFunc = fn
}

func (f *fakeGL) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays %d", count)
	f.draws++
}

func (f *fakeGL) Enable(cap gl.Enum) {
	f.record("Enable")
	f.enabled[cap] = true
}

func (f *fakeGL) GenerateMipmap(target gl.Enum) {
	f.record("GenerateMipmap")
	f.lastBound().mipmaps = true
}

func (f *fakeGL) GetProgramInfoLog(p gl.Program) string {
	return f.programs[p.V].log
}

func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	switch pname {
	case gl.LINK_STATUS:
		if f.programs[p.V].linked {
			return gl.TRUE
		}
		return gl.FALSE
	default:
		panic("unsupported program parameter")
	}
}

func (f *fakeGL) GetShaderInfoLog(s gl.Shader) string {
	return f.shaders[s.V].log
}

func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	switch pname {
	case gl.COMPILE_STATUS:
		if f.shaders[s.V].compiled {
			return gl.TRUE
		}
		return gl.FALSE
	default:
		panic("unsupported shader parameter")
	}
}

func (f *fakeGL) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VERSION:
		return f.version
	default:
		return "fake"
	}
}

func (f *fakeGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation %s", name)
	if name == "missing" {
		return gl.Uniform{V: -1}
	}
	return gl.Uniform{V: len(name)}
}

func (f *fakeGL) LinkProgram(p gl.Program) {
	f.record("LinkProgram")
	prog := f.programs[p.V]
	if f.failLink || len(prog.attached) != 2 {
		prog.log = "error: unresolved varying\n"
		return
	}
	prog.linked = true
}

func (f *fakeGL) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource")
	f.shaders[s.V].src = src
	f.srcs = append(f.srcs, src)
}

func (f *fakeGL) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, pixels []byte) {
	f.record("TexImage2D %dx%d", width, height)
	t := f.lastBound()
	t.width, t.height = width, height
	t.pixels = append([]byte(nil), pixels...)
}

func (f *fakeGL) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri")
	if pname == gl.TEXTURE_MIN_FILTER {
		f.lastBound().minFilter = param
	}
}

func (f *fakeGL) Uniform1f(dst gl.Uniform, v float32) {
	f.record("Uniform1f")
	f.uniforms[dst.V] = []float32{v}
}

func (f *fakeGL) Uniform1i(dst gl.Uniform, v int) {
	f.record("Uniform1i")
	f.uniforms[dst.V] = []float32{float32(v)}
}

func (f *fakeGL) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.record("Uniform2f")
	f.uniforms[dst.V] = []float32{v0, v1}
}

func (f *fakeGL) UseProgram(p gl.Program) {
	f.record("UseProgram")
	f.bound = p
}

func (f *fakeGL) Viewport(x, y, width, height int) {
	f.record("Viewport")
	f.viewport = [4]int{x, y, width, height}
}

// lastBound returns the texture bound by the most recent BindTexture.
func (f *fakeGL) lastBound() *fakeTexture {
	return f.textures[f.boundTex]
}

func (s *fakeSurface) Context(antialias bool) (gl.Functions, error) {
	s.antialias = antialias
	if s.err != nil {
		return nil, s.err
	}
	if s.contextRatio != 0 {
		s.ratio = s.contextRatio
	}
	return s.funcs, nil
}

func (s *fakeSurface) ClientSize() (width, height float64) {
	return s.client[0], s.client[1]
}

func (s *fakeSurface) BufferSize() image.Point {
	return s.buf
}

func (s *fakeSurface) SetBufferSize(sz image.Point) {
	s.buf = sz
}

func (s *fakeSurface) DrawingBufferSize() image.Point {
	sz := s.buf
	if s.maxBuf.X > 0 && sz.X > s.maxBuf.X {
		sz.X = s.maxBuf.X
	}
	if s.maxBuf.Y > 0 && sz.Y > s.maxBuf.Y {
		sz.Y = s.maxBuf.Y
	}
	return sz
}

func (s *fakeSurface) PixelRatio() float64 {
	return s.ratio
}
