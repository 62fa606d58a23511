// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"nextgl.dev/app"
	"nextgl.dev/gpu"
)

func compileCmd(ctx *cli.Context) error {
	cfg, logger, err := setup(ctx)
	if err != nil {
		return err
	}
	vert, frag, err := cfg.sources()
	if err != nil {
		return err
	}
	defines, err := cfg.defines()
	if err != nil {
		return err
	}
	w, err := app.NewWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer w.Close()
	w.Hide()
	gctx, err := gpu.NewContext(w, cfg.options(logger)...)
	if err != nil {
		return err
	}
	defer gctx.Release()
	p, err := gctx.InitProgram(vert, frag, defines)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, p.Key())
	return nil
}

func viewCmd(ctx *cli.Context) error {
	cfg, logger, err := setup(ctx)
	if err != nil {
		return err
	}
	vert, frag, err := cfg.sources()
	if err != nil {
		return err
	}
	defines, err := cfg.defines()
	if err != nil {
		return err
	}
	if cfg.Shader.Texture != "" {
		if _, ok := defines["USE_TEXTURE"]; !ok {
			defines["USE_TEXTURE"] = gpu.Bool(true)
		}
	}
	w, err := app.NewWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer w.Close()
	gctx, err := gpu.NewContext(w, cfg.options(logger)...)
	if err != nil {
		return err
	}
	defer gctx.Release()
	p, err := gctx.InitProgram(vert, frag, defines)
	if err != nil {
		return err
	}
	var tex *gpu.Texture
	if url := cfg.Shader.Texture; url != "" {
		lctx, cancel := context.WithCancel(ctx.Context)
		defer cancel()
		tex = gctx.LoadTexture(lctx, url)
		go func() {
			if err := tex.Wait(lctx); err != nil {
				logger.Error("texture unavailable", "url", url, "err", err)
				return
			}
			logger.Info("texture loaded", "url", url, "size", tex.Size())
		}()
	}
	start := time.Now()
	return w.Run(gctx, func() {
		gctx.Clear()
		gctx.UseProgram(p)
		sz := w.DrawingBufferSize()
		p.SetVec2("u_resolution", float32(sz.X), float32(sz.Y))
		p.SetFloat("u_time", float32(time.Since(start).Seconds()))
		if tex != nil {
			gctx.BindTexture(0, tex)
			p.SetInt("u_texture", 0)
		}
		gctx.DrawFullscreen()
	})
}
