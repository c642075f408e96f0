package ui

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"sync"

	"gioui.org/op/paint"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"

	"warehouse-screenshots/pkg/gallery"
)

// decodes shares in-flight decodes of the same file between caches, so a
// remounted screen does not decode twice while the old load is still running.
var decodes singleflight.Group

type thumb struct {
	op  paint.ImageOp
	err error
}

// Thumbnails decodes and downsizes screenshot images off the UI goroutine.
// It belongs to one gallery screen mount. Failed decodes are remembered for
// that mount only, so they are not retried every frame.
type Thumbnails struct {
	maxWidth   int
	invalidate func()
	logger     *slog.Logger

	mu      sync.Mutex
	cache   map[string]thumb
	pending map[string]bool
	closed  bool
}

// NewThumbnails creates a cache producing images at most maxWidth pixels wide.
func NewThumbnails(maxWidth int, invalidate func(), logger *slog.Logger) *Thumbnails {
	if logger == nil {
		logger = slog.Default()
	}
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Thumbnails{
		maxWidth:   maxWidth,
		invalidate: invalidate,
		logger:     logger.With("component", "thumbnails"),
		cache:      make(map[string]thumb),
		pending:    make(map[string]bool),
	}
}

// Get returns the image for uri if it is ready. Otherwise it starts loading
// it, once, and the window is invalidated when it is done.
func (t *Thumbnails) Get(uri string) (paint.ImageOp, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if th, ok := t.cache[uri]; ok {
		return th.op, th.err == nil
	}
	if t.closed || t.pending[uri] {
		return paint.ImageOp{}, false
	}
	t.pending[uri] = true
	go t.load(uri)
	return paint.ImageOp{}, false
}

// Len returns the number of finished entries.
func (t *Thumbnails) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cache)
}

// Close drops every entry. Loads still running are discarded when they finish.
func (t *Thumbnails) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.cache = make(map[string]thumb)
	t.pending = make(map[string]bool)
}

func (t *Thumbnails) load(uri string) {
	v, err, _ := decodes.Do(uri, func() (any, error) {
		return loadThumb(uri, t.maxWidth)
	})

	var th thumb
	if err != nil {
		t.logger.Warn("thumbnail failed", "uri", uri, "error", err)
		th.err = err
	} else {
		th.op = paint.NewImageOp(v.(image.Image))
	}

	t.mu.Lock()
	closed := t.closed
	if !closed {
		t.cache[uri] = th
		delete(t.pending, uri)
	}
	t.mu.Unlock()
	if !closed {
		t.invalidate()
	}
}

func loadThumb(uri string, maxWidth int) (image.Image, error) {
	path, err := gallery.PathFromURI(uri)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return downscale(src, maxWidth), nil
}

// downscale shrinks src to at most maxWidth pixels wide, keeping its aspect ratio.
func downscale(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
