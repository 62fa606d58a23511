// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoContext is returned by NewContext when the surface refuses
	// to provide a GPU context.
	ErrNoContext = errors.New("gpu: unable to acquire a GPU context")
	// ErrReleased is returned by operations on a released Context.
	ErrReleased = errors.New("gpu: context released")
	// ErrDeleted completes textures deleted before their image loaded.
	ErrDeleted = errors.New("gpu: texture deleted")
)

// Stage identifies a shader stage.
type Stage uint8

const (
	// VertexStage is the vertex shader stage.
	VertexStage Stage = iota
	// FragmentStage is the fragment shader stage.
	FragmentStage
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage Stage
	// Log is the compiler diagnostic.
	Log string
}

// LinkError reports a program whose stages compiled but failed to link.
type LinkError struct {
	Key Key
	Log string
}

// DefineError reports a define whose name is not a shader identifier,
// or whose value has no GLSL literal.
type DefineError struct {
	Name string
	// Value is the offending value, empty for an invalid name.
	Value string
}

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		panic("invalid stage")
	}
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: %v shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: program %v link failed: %s", e.Key, strings.TrimSpace(e.Log))
}

func (e *DefineError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("gpu: invalid value %s for define %q", e.Value, e.Name)
	}
	return fmt.Sprintf("gpu: invalid define name %q", e.Name)
}
