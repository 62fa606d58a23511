// SPDX-License-Identifier: Unlicense OR MIT

// Package gl holds the OpenGL ES 3 / WebGL 2 vocabulary shared by the
// platform bindings: enums, object handles and the Functions table.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	BACK                     = 0x0405
	CLAMP_TO_EDGE            = 0x812f
	COLOR_BUFFER_BIT         = 0x4000
	COMPILE_STATUS           = 0x8b81
	CULL_FACE                = 0xb44
	DEPTH_BUFFER_BIT         = 0x100
	DEPTH_TEST               = 0xb71
	FALSE                    = 0
	FRAGMENT_SHADER          = 0x8b30
	INFO_LOG_LENGTH          = 0x8B84
	LEQUAL                   = 0x203
	LESS                     = 0x201
	LINEAR                   = 0x2601
	LINEAR_MIPMAP_LINEAR     = 0x2703
	LINK_STATUS              = 0x8b82
	MAX_TEXTURE_SIZE         = 0xd33
	NEAREST                  = 0x2600
	RENDERER                 = 0x1F01
	REPEAT                   = 0x2901
	RGBA                     = 0x1908
	RGBA8                    = 0x8058
	SHADING_LANGUAGE_VERSION = 0x8B8C
	TEXTURE_2D               = 0xde1
	TEXTURE_MAG_FILTER       = 0x2800
	TEXTURE_MIN_FILTER       = 0x2801
	TEXTURE_WRAP_S           = 0x2802
	TEXTURE_WRAP_T           = 0x2803
	TEXTURE0                 = 0x84c0
	TRIANGLES                = 0x4
	TRUE                     = 1
	UNPACK_ALIGNMENT         = 0xcf5
	UNSIGNED_BYTE            = 0x1401
	VERSION                  = 0x1f02
	VERTEX_SHADER            = 0x8b31
)
