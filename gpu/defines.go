// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Defines maps macro names to the values injected into shader sources.
// The order of insertion is irrelevant: defines are always emitted
// sorted by name.
type Defines map[string]Value

// Value is a define value: a boolean, an integer or a float.
type Value struct {
	kind valueKind
	b    bool
	i    int64
	f    float64
}

type valueKind uint8

// Syntax selects the textual form of injected defines.
type Syntax uint8

const (
	kindBool valueKind = iota
	kindInt
	kindFloat
)

const (
	// StandardDefines emits preprocessor directives of the form
	// "#define NAME VALUE".
	StandardDefines Syntax = iota
	// LegacyDefines emits "#define NAME = VALUE;" lines. Shaders
	// written for that form reference the macros only through
	// #ifdef and friends.
	LegacyDefines
)

// Bool returns a boolean define value.
func Bool(v bool) Value {
	return Value{kind: kindBool, b: v}
}

// Int returns an integer define value.
func Int(v int64) Value {
	return Value{kind: kindInt, i: v}
}

// Float returns a float define value. It must be finite.
func Float(v float64) Value {
	return Value{kind: kindFloat, f: v}
}

// String formats the value as a GLSL literal.
func (v Value) String() string {
	switch v.kind {
	case kindBool:
		return strconv.FormatBool(v.b)
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		// GLSL needs a decimal point or exponent to type the literal
		// as a float.
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	default:
		panic("invalid define value")
	}
}

// Names returns the define names in canonical order.
func (d Defines) Names() []string {
	names := maps.Keys(d)
	slices.Sort(names)
	return names
}

// validate checks that every name is a shader identifier and every
// value has a GLSL literal.
func (d Defines) validate() error {
	for _, name := range d.Names() {
		if !isIdent(name) {
			return &DefineError{Name: name}
		}
		if v := d[name]; v.kind == kindFloat && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
			return &DefineError{Name: name, Value: v.String()}
		}
	}
	return nil
}

// block serializes the defines in canonical order, one line each.
func (d Defines) block(syn Syntax) string {
	if len(d) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range d.Names() {
		b.WriteString("#define ")
		b.WriteString(name)
		switch syn {
		case LegacyDefines:
			b.WriteString(" = ")
			b.WriteString(d[name].String())
			b.WriteString(";\n")
		default:
			b.WriteByte(' ')
			b.WriteString(d[name].String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// injectDefines inserts block after the first line of src, leaving any
// leading #version directive in place.
func injectDefines(src, block string) string {
	if block == "" {
		return src
	}
	i := strings.IndexByte(src, '\n')
	if i == -1 {
		return src + "\n" + block
	}
	return src[:i+1] + block + src[i+1:]
}

func isIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
