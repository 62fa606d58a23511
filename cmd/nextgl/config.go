// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"

	"nextgl.dev/gpu"
)

type config struct {
	Window windowConfig `toml:"window"`
	Render renderConfig `toml:"render"`
	Shader shaderConfig `toml:"shader"`
	Log    logConfig    `toml:"log"`
}

type windowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type renderConfig struct {
	// ClearColor is "#rrggbb" or "#rrggbbaa".
	ClearColor  string `toml:"clear_color"`
	Transparent bool   `toml:"transparent"`
	Antialias   bool   `toml:"antialias"`
	// PixelRatio overrides the surface pixel ratio when positive.
	PixelRatio    float64 `toml:"pixel_ratio"`
	LegacyDefines bool    `toml:"legacy_defines"`
}

type shaderConfig struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	// Texture is bound to the u_texture sampler when set.
	Texture string                 `toml:"texture"`
	Defines map[string]interface{} `toml:"defines"`
}

type logConfig struct {
	Level string `toml:"level"`
}

func defaultConfig() config {
	return config{
		Window: windowConfig{
			Width:  800,
			Height: 600,
			Title:  "nextgl",
		},
		Render: renderConfig{
			ClearColor:  "#000000",
			Transparent: true,
			Antialias:   true,
		},
		Log: logConfig{
			Level: "info",
		},
	}
}

// loadConfig reads a TOML configuration file on top of the defaults. An
// empty path yields the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("%s:%d:%d: %v", path, row, col, err)
		}
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Render.PixelRatio < 0 {
		return fmt.Errorf("invalid pixel ratio %v", c.Render.PixelRatio)
	}
	if _, err := parseColor(c.Render.ClearColor); err != nil {
		return err
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// applyFlags overrides the configuration with the command line flags
// that were set.
func (c *config) applyFlags(ctx *cli.Context) error {
	if ctx.IsSet(vertFlag.Name) {
		c.Shader.Vertex = ctx.String(vertFlag.Name)
	}
	if ctx.IsSet(fragFlag.Name) {
		c.Shader.Fragment = ctx.String(fragFlag.Name)
	}
	if ctx.IsSet(textureFlag.Name) {
		c.Shader.Texture = ctx.String(textureFlag.Name)
	}
	if ctx.IsSet(logLevelFlag.Name) {
		c.Log.Level = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(legacyFlag.Name) {
		c.Render.LegacyDefines = ctx.Bool(legacyFlag.Name)
	}
	for _, d := range ctx.StringSlice(defineFlag.Name) {
		name, v, err := parseDefine(d)
		if err != nil {
			return err
		}
		if c.Shader.Defines == nil {
			c.Shader.Defines = make(map[string]interface{})
		}
		c.Shader.Defines[name] = v
	}
	return c.validate()
}

// defines converts the configured defines to shader defines.
func (c *config) defines() (gpu.Defines, error) {
	d := make(gpu.Defines, len(c.Shader.Defines))
	for name, raw := range c.Shader.Defines {
		v, err := defineValue(raw)
		if err != nil {
			return nil, fmt.Errorf("define %s: %w", name, err)
		}
		d[name] = v
	}
	return d, nil
}

// sources returns the shader sources, falling back to the built-in
// fullscreen shaders for stages without a file.
func (c *config) sources() (vert, frag string, err error) {
	vert, frag = defaultVertexShader, defaultFragmentShader
	if p := c.Shader.Vertex; p != "" {
		src, err := os.ReadFile(p)
		if err != nil {
			return "", "", err
		}
		vert = string(src)
	}
	if p := c.Shader.Fragment; p != "" {
		src, err := os.ReadFile(p)
		if err != nil {
			return "", "", err
		}
		frag = string(src)
	}
	return vert, frag, nil
}

// options converts the render configuration to context options.
func (c *config) options(logger *slog.Logger) []gpu.Option {
	col, _ := parseColor(c.Render.ClearColor)
	opts := []gpu.Option{
		gpu.ClearColor(col),
		gpu.Transparent(c.Render.Transparent),
		gpu.Antialias(c.Render.Antialias),
		gpu.Logger(logger),
	}
	if c.Render.PixelRatio > 0 {
		opts = append(opts, gpu.PixelRatio(c.Render.PixelRatio))
	}
	if c.Render.LegacyDefines {
		opts = append(opts, gpu.DefineSyntax(gpu.LegacyDefines))
	}
	return opts
}

// parseDefine parses a NAME=VALUE command line define. A missing value
// means true.
func parseDefine(s string) (string, interface{}, error) {
	name, val, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("invalid define %q", s)
	}
	if !ok {
		return name, true, nil
	}
	val = strings.TrimSpace(val)
	switch strings.ToLower(val) {
	case "true":
		return name, true, nil
	case "false":
		return name, false, nil
	}
	if i, err := strconv.ParseInt(val, 10, 64); err == nil {
		return name, i, nil
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return name, f, nil
	}
	return "", nil, fmt.Errorf("invalid define value %q: want a bool, an integer or a float", val)
}

func defineValue(raw interface{}) (gpu.Value, error) {
	switch v := raw.(type) {
	case bool:
		return gpu.Bool(v), nil
	case int64:
		return gpu.Int(v), nil
	case float64:
		return gpu.Float(v), nil
	default:
		return gpu.Value{}, fmt.Errorf("unsupported value %v of type %T", raw, raw)
	}
}

func parseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
