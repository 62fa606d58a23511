// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"nextgl.dev/internal/gl"
)

// Fetcher retrieves encoded images.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (io.ReadCloser, error)

// DefaultFetcher fetches http and https URLs with the default HTTP
// client and opens anything else as a local file.
var DefaultFetcher Fetcher = FetcherFunc(fetch)

// Texture is a 2D texture whose image loads in the background. Until
// the load completes the texture holds a single opaque blue pixel.
type Texture struct {
	obj  gl.Texture
	url  string
	done chan struct{}

	// Written before done is closed.
	err  error
	size image.Point
}

type textureUpload struct {
	ctx context.Context
	tex *Texture
	img *image.NRGBA
	err error
}

var placeholderPixel = []byte{0, 0, 0xff, 0xff}

func (f FetcherFunc) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	return f(ctx, url)
}

// LoadTexture creates a texture holding a placeholder pixel and starts
// loading the image at url. The image is uploaded by a later call to
// FlushTextures; cancelling ctx abandons the load.
func (c *Context) LoadTexture(ctx context.Context, url string) *Texture {
	t := &Texture{
		url:  url,
		done: make(chan struct{}),
	}
	if !c.Valid() {
		t.complete(ErrReleased)
		return t
	}
	f := c.funcs
	t.obj = f.CreateTexture()
	f.BindTexture(gl.TEXTURE_2D, t.obj)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, placeholderPixel)
	t.size = image.Point{X: 1, Y: 1}
	fetcher := c.fetcher
	go func() {
		img, err := decodeImage(ctx, fetcher, url)
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.released {
			t.complete(ErrReleased)
			return
		}
		c.uploads = append(c.uploads, &textureUpload{ctx: ctx, tex: t, img: img, err: err})
	}()
	return t
}

// FlushTextures uploads the images loaded since the previous call and
// completes their textures. It returns the number of textures uploaded.
// Call it from the render loop.
func (c *Context) FlushTextures() int {
	if !c.Valid() {
		return 0
	}
	c.mu.Lock()
	uploads := c.uploads
	c.uploads = nil
	c.mu.Unlock()
	f := c.funcs
	n := 0
	for _, u := range uploads {
		if u.err == nil {
			u.err = u.ctx.Err()
		}
		if u.err == nil && !u.tex.obj.Valid() {
			u.err = ErrDeleted
		}
		if u.err != nil {
			c.log.Warn("texture load failed", "url", u.tex.url, "err", u.err)
			u.tex.complete(u.err)
			continue
		}
		sz := u.img.Bounds().Size()
		f.BindTexture(gl.TEXTURE_2D, u.tex.obj)
		f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, sz.X, sz.Y, gl.RGBA, gl.UNSIGNED_BYTE, u.img.Pix)
		f.GenerateMipmap(gl.TEXTURE_2D)
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		u.tex.size = sz
		u.tex.complete(nil)
		n++
	}
	return n
}

// DeleteTexture deletes the texture object. The texture must not be
// used afterwards.
func (c *Context) DeleteTexture(t *Texture) {
	if !c.Valid() || !t.obj.Valid() {
		return
	}
	c.funcs.DeleteTexture(t.obj)
	t.obj = gl.Texture{}
}

// Object returns the underlying GL texture object.
func (t *Texture) Object() gl.Texture {
	return t.obj
}

// URL returns the image location the texture loads from.
func (t *Texture) URL() string {
	return t.url
}

// Done returns a channel closed when the load completes, successfully
// or not.
func (t *Texture) Done() <-chan struct{} {
	return t.done
}

// Err returns the error that ended the load, or nil. It must only be
// called after Done is closed.
func (t *Texture) Err() error {
	return t.err
}

// Size returns the size of the texture image. It must only be called
// after Done is closed.
func (t *Texture) Size() image.Point {
	return t.size
}

// Wait blocks until the load completes or ctx is done. Because images
// are uploaded by FlushTextures, Wait must not be called from the
// render loop.
func (t *Texture) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Texture) complete(err error) {
	t.err = err
	close(t.done)
}

func decodeImage(ctx context.Context, f Fetcher, url string) (*image.NRGBA, error) {
	r, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("gpu: decode %s: %w", url, err)
	}
	// Clone copies into a tightly packed NRGBA image with its origin at
	// (0, 0), the layout TexImage2D expects.
	return imaging.Clone(img), nil
}

func fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		path := rawURL
		if err == nil && u.Scheme == "file" {
			path = u.Path
		}
		return os.Open(path)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("gpu: fetch %s: %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}
