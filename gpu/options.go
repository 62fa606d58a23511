// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"image/color"

	"golang.org/x/exp/slog"
)

// Option configures a Context.
type Option func(cnf *Config)

// Config is the configuration of a Context.
type Config struct {
	// ClearColor is the color the color buffer is cleared to. Its alpha
	// channel is ignored in favor of Transparent.
	ClearColor color.NRGBA
	// Transparent clears to alpha 0 instead of 1.
	Transparent bool
	// PixelRatio is the number of backbuffer pixels per layout pixel.
	// Zero selects the density reported by the surface.
	PixelRatio float64
	// Antialias requests a multisampled backbuffer.
	Antialias bool
	// Syntax is the textual form of injected defines.
	Syntax Syntax
	// Logger receives diagnostics such as shader compiler output.
	Logger *slog.Logger
	// Fetcher retrieves texture images.
	Fetcher Fetcher
	// OnFatal is called when no GPU context can be acquired.
	OnFatal func(err error)
}

func defaultConfig() Config {
	return Config{
		ClearColor:  color.NRGBA{A: 0xff},
		Transparent: true,
		Antialias:   true,
		Syntax:      StandardDefines,
		Logger:      slog.Default(),
		Fetcher:     DefaultFetcher,
	}
}

func (c *Config) apply(options []Option) {
	for _, o := range options {
		o(c)
	}
}

// ClearColor sets the clear color.
func ClearColor(col color.NRGBA) Option {
	return func(cnf *Config) {
		cnf.ClearColor = col
	}
}

// Transparent controls whether the backbuffer is cleared to transparent
// (the default) or opaque.
func Transparent(transparent bool) Option {
	return func(cnf *Config) {
		cnf.Transparent = transparent
	}
}

// PixelRatio overrides the display density reported by the surface.
func PixelRatio(ratio float64) Option {
	if ratio <= 0 {
		panic("pixel ratio must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.PixelRatio = ratio
	}
}

// Antialias controls whether a multisampled backbuffer is requested.
func Antialias(enable bool) Option {
	return func(cnf *Config) {
		cnf.Antialias = enable
	}
}

// DefineSyntax selects the textual form of injected defines.
func DefineSyntax(syn Syntax) Option {
	return func(cnf *Config) {
		cnf.Syntax = syn
	}
}

// Logger sets the logger for diagnostics such as shader compiler output.
func Logger(l *slog.Logger) Option {
	return func(cnf *Config) {
		cnf.Logger = l
	}
}

// WithFetcher sets the fetcher used by LoadTexture.
func WithFetcher(f Fetcher) Option {
	return func(cnf *Config) {
		cnf.Fetcher = f
	}
}

// OnFatal sets the function notified when the surface refuses to
// provide a GPU context.
func OnFatal(fn func(err error)) Option {
	return func(cnf *Config) {
		cnf.OnFatal = fn
	}
}
