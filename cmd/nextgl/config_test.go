// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"

	"nextgl.dev/gpu"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nextgl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
	require.Equal(t, 800, cfg.Window.Width)
	require.True(t, cfg.Render.Transparent)
	require.True(t, cfg.Render.Antialias)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1024
title = "demo"

[render]
clear_color = "#336699"
transparent = false
pixel_ratio = 2.0

[shader]
vertex = "quad.vert"

[shader.defines]
USE_FOG = true
LIGHTS = 4
GAMMA = 2.2

[log]
level = "debug"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 1024, cfg.Window.Width)
	// Unset keys keep their defaults.
	require.Equal(t, 600, cfg.Window.Height)
	require.True(t, cfg.Render.Antialias)
	require.Equal(t, "demo", cfg.Window.Title)
	require.False(t, cfg.Render.Transparent)
	require.Equal(t, 2.0, cfg.Render.PixelRatio)
	require.Equal(t, "quad.vert", cfg.Shader.Vertex)
	require.Equal(t, "debug", cfg.Log.Level)

	defines, err := cfg.defines()
	require.NoError(t, err)
	require.Equal(t, gpu.Defines{
		"USE_FOG": gpu.Bool(true),
		"LIGHTS":  gpu.Int(4),
		"GAMMA":   gpu.Float(2.2),
	}, defines)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":   "[window]\ndepth = 3\n",
		"bad size":      "[window]\nwidth = 0\n",
		"bad color":     "[render]\nclear_color = \"blue\"\n",
		"bad level":     "[log]\nlevel = \"loud\"\n",
		"bad ratio":     "[render]\npixel_ratio = -1.0\n",
		"syntax":        "[window\n",
		"string define": "[shader.defines]\nNAME = \"x\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := loadConfig(writeConfig(t, content))
			if err == nil {
				_, err = cfg.defines()
			}
			require.Error(t, err)
		})
	}
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDefine(t *testing.T) {
	tests := []struct {
		in   string
		name string
		val  interface{}
	}{
		{"FOG", "FOG", true},
		{"FOG=false", "FOG", false},
		{"LIGHTS=4", "LIGHTS", int64(4)},
		{"GAMMA = 2.2", "GAMMA", 2.2},
		{"SCALE=1e3", "SCALE", 1e3},
		{"LIGHTS=1", "LIGHTS", int64(1)},
		{"N=0", "N", int64(0)},
		{"FOG=TRUE", "FOG", true},
	}
	for _, test := range tests {
		name, val, err := parseDefine(test.in)
		require.NoError(t, err, test.in)
		require.Equal(t, test.name, name)
		require.Equal(t, test.val, val)
	}
	for _, bad := range []string{"", "=1", "A=red", "A=t", "A=F"} {
		_, _, err := parseDefine(bad)
		require.Error(t, err, bad)
	}
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#336699")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}, c)
	c, err = parseColor("10203040")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)
	_, err = parseColor("#12345")
	require.Error(t, err)
	_, err = parseColor("#gggggg")
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, l)
	l, err = parseLevel("")
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, l)
	_, err = parseLevel("trace")
	require.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	flagSet := flag.NewFlagSet("test", 0)
	flagSet.String(vertFlag.Name, "", "test")
	flagSet.String(fragFlag.Name, "", "test")
	flagSet.String(textureFlag.Name, "", "test")
	flagSet.String(logLevelFlag.Name, "", "test")
	flagSet.Bool(legacyFlag.Name, false, "test")
	defines := cli.NewStringSlice()
	flagSet.Var(defines, defineFlag.Name, "test")
	require.NoError(t, flagSet.Parse([]string{
		"-frag", "plasma.frag",
		"-loglevel", "error",
		"-legacy-defines",
		"-define", "LIGHTS=2",
		"-define", "FOG",
	}))
	ctx := cli.NewContext(nil, flagSet, nil)
	ctx.Command = &cli.Command{Name: "view"}

	cfg := defaultConfig()
	cfg.Shader.Vertex = "quad.vert"
	cfg.Shader.Defines = map[string]interface{}{"LIGHTS": int64(8), "GAMMA": 2.2}
	require.NoError(t, cfg.applyFlags(ctx))
	require.Equal(t, "quad.vert", cfg.Shader.Vertex)
	require.Equal(t, "plasma.frag", cfg.Shader.Fragment)
	require.Equal(t, "error", cfg.Log.Level)
	require.True(t, cfg.Render.LegacyDefines)

	d, err := cfg.defines()
	require.NoError(t, err)
	require.Equal(t, gpu.Defines{
		"LIGHTS": gpu.Int(2),
		"FOG":    gpu.Bool(true),
		"GAMMA":  gpu.Float(2.2),
	}, d)
}

func TestConfigOptions(t *testing.T) {
	cfg := defaultConfig()
	require.Len(t, cfg.options(slog.Default()), 4)
	cfg.Render.PixelRatio = 1.5
	cfg.Render.LegacyDefines = true
	require.Len(t, cfg.options(slog.Default()), 6)
}

func TestSources(t *testing.T) {
	cfg := defaultConfig()
	vert, frag, err := cfg.sources()
	require.NoError(t, err)
	require.Equal(t, defaultVertexShader, vert)
	require.Equal(t, defaultFragmentShader, frag)

	path := filepath.Join(t.TempDir(), "red.frag")
	require.NoError(t, os.WriteFile(path, []byte("#version 410 core\n"), 0o644))
	cfg.Shader.Fragment = path
	_, frag, err = cfg.sources()
	require.NoError(t, err)
	require.Equal(t, "#version 410 core\n", frag)

	cfg.Shader.Vertex = path + ".missing"
	_, _, err = cfg.sources()
	require.Error(t, err)
}
