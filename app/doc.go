// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app provides the drawing surfaces a gpu.Context renders to.

On js/wasm, a Canvas wraps an HTML canvas element and requests a WebGL2
context from it. On desktop platforms, a Window opens a glfw window with
an OpenGL 4.1 core context.

Both surfaces drive a render loop through Run, which reconciles the
backbuffer size and uploads loaded textures before every frame:

	w, err := app.NewWindow("nextgl", 800, 600)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()
	ctx, err := gpu.NewContext(w)
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Release()
	prog, err := ctx.InitProgram(vertSrc, fragSrc, nil)
	...
	w.Run(ctx, func() {
		ctx.Clear()
		ctx.UseProgram(prog)
		...
	})

On js/wasm, install Alert with gpu.OnFatal to tell the user when WebGL2
is unavailable.
*/
package app
