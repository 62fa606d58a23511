// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "syscall/js"

type (
	Program     js.Value
	Shader      js.Value
	Texture     js.Value
	Uniform     js.Value
	VertexArray js.Value
)

func (p Program) Valid() bool {
	return !js.Value(p).IsUndefined() && !js.Value(p).IsNull()
}

func (s Shader) Valid() bool {
	return !js.Value(s).IsUndefined() && !js.Value(s).IsNull()
}

func (t Texture) Valid() bool {
	return !js.Value(t).IsUndefined() && !js.Value(t).IsNull()
}

// NoUniform is the location of a uniform a program does not have.
var NoUniform = Uniform(js.Null())

func (u Uniform) Valid() bool {
	return !js.Value(u).IsUndefined() && !js.Value(u).IsNull()
}

func (a VertexArray) Valid() bool {
	return !js.Value(a).IsUndefined() && !js.Value(a).IsNull()
}
