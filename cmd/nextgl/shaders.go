// SPDX-License-Identifier: Unlicense OR MIT

package main

// The built-in shaders cover the window with one triangle derived from
// gl_VertexID. Define USE_TEXTURE to sample u_texture.
const (
	defaultVertexShader = `#version 410 core
out vec2 v_uv;

void main() {
	vec2 p = vec2(float((gl_VertexID << 1) & 2), float(gl_VertexID & 2));
	v_uv = vec2(p.x, 1.0 - p.y);
	gl_Position = vec4(p * 2.0 - 1.0, 0.0, 1.0);
}
`

	defaultFragmentShader = `#version 410 core
in vec2 v_uv;
out vec4 frag_color;

uniform float u_time;
uniform vec2 u_resolution;
#ifdef USE_TEXTURE
uniform sampler2D u_texture;
#endif

void main() {
#ifdef USE_TEXTURE
	frag_color = texture(u_texture, v_uv);
#else
	vec2 st = gl_FragCoord.xy / u_resolution;
	frag_color = vec4(st, 0.5 + 0.5 * sin(u_time), 1.0);
#endif
}
`
)
