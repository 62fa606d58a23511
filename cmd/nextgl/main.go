// SPDX-License-Identifier: Unlicense OR MIT

// Command nextgl compiles shader programs and previews fullscreen
// shaders in a window.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "TOML configuration `FILE`",
	}
	vertFlag = &cli.StringFlag{
		Name:  "vert",
		Usage: "vertex shader `FILE`",
	}
	fragFlag = &cli.StringFlag{
		Name:  "frag",
		Usage: "fragment shader `FILE`",
	}
	textureFlag = &cli.StringFlag{
		Name:  "texture",
		Usage: "texture `URL` bound to the u_texture sampler",
	}
	defineFlag = &cli.StringSliceFlag{
		Name:    "define",
		Aliases: []string{"D"},
		Usage:   "shader define `NAME=VALUE`, may be repeated",
	}
	legacyFlag = &cli.BoolFlag{
		Name:  "legacy-defines",
		Usage: "emit defines as \"#define NAME = VALUE;\"",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level (debug, info, warn, error)",
	}

	shaderFlags = []cli.Flag{
		configFlag,
		vertFlag,
		fragFlag,
		defineFlag,
		legacyFlag,
		logLevelFlag,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "nextgl",
		Usage: "compile and preview GL shader programs",
		Commands: []*cli.Command{
			{
				Name:      "compile",
				Usage:     "compile and link a shader program and print its key",
				ArgsUsage: " ",
				Flags:     shaderFlags,
				Action:    compileCmd,
			},
			{
				Name:      "view",
				Usage:     "render a fullscreen shader in a window",
				ArgsUsage: " ",
				Flags:     append(shaderFlags, textureFlag),
				Action:    viewCmd,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "nextgl: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration, applies the flags and installs the
// logger.
func setup(ctx *cli.Context) (config, *slog.Logger, error) {
	cfg, err := loadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return cfg, nil, err
	}
	if err := cfg.applyFlags(ctx); err != nil {
		return cfg, nil, err
	}
	level, _ := parseLevel(cfg.Log.Level)
	logger := newLogger(ctx.App.ErrWriter, level)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
