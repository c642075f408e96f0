// Package gallery turns the device photo library into the screenshot
// collection shown on the warehouse screen.
//
// A Gallery lives for exactly one mount of that screen. Its Initialize method
// asks the Library for read permission once, fetches the most recent photos,
// keeps the screenshots among them and formats them for display. The context
// passed to Initialize is the screen's lifetime: once it is cancelled nothing
// fetched afterwards is committed.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyInitialized is returned when Initialize is called a second time on the same Gallery.
var ErrAlreadyInitialized = errors.New("gallery already initialized")

// Permission is the outcome of a read-permission request.
type Permission int

const (
	Denied Permission = iota
	Granted
)

func (p Permission) String() string {
	if p == Granted {
		return "granted"
	}
	return "denied"
}

// State is where a Gallery is in its one-shot lifecycle.
type State int

const (
	StateUnrequested State = iota // permission not yet resolved
	StateLoading                  // granted, fetch in flight
	StateLoaded                   // terminal
	StateDenied                   // terminal
	StateFailed                   // terminal, permission or fetch call returned an error
)

func (s State) String() string {
	switch s {
	case StateUnrequested:
		return "unrequested"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateDenied:
		return "denied"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Asset is a photo as reported by the Library.
type Asset struct {
	Filename     string
	URI          string
	CreationTime time.Time // zero when the library has no timestamp
}

// Screenshot is the display form of a screenshot asset.
type Screenshot struct {
	URI  string `json:"uri"`
	Date string `json:"date"`
}

// Library is read-only access to the device photo library.
type Library interface {
	// RequestPermission asks for read access. Refusal is reported as Denied, not as an error.
	RequestPermission(ctx context.Context) (Permission, error)

	// RecentPhotos returns up to limit photos, newest first by creation time.
	RecentPhotos(ctx context.Context, limit int) ([]Asset, error)
}

// DateFormatter renders asset timestamps for display.
type DateFormatter interface {
	FormatDate(t time.Time) string
}

// Result is what a successful Initialize produced.
type Result struct {
	Permission  Permission
	Screenshots []Screenshot
}

// Snapshot is a consistent view of a Gallery for rendering.
type Snapshot struct {
	ID          string
	State       State
	Screenshots []Screenshot
	Err         error
}

// Gallery is the screenshot collection for one mount of the warehouse screen.
type Gallery struct {
	id      string
	lib     Library
	dates   DateFormatter
	opts    Options
	logger  *slog.Logger
	now     func() time.Time
	started bool

	mu          sync.Mutex
	state       State
	screenshots []Screenshot
	err         error
}

// New creates a Gallery in the Unrequested state. A nil logger uses slog.Default.
func New(lib Library, dates DateFormatter, opts Options, logger *slog.Logger) *Gallery {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.Must(uuid.NewV7()).String()
	return &Gallery{
		id:     id,
		lib:    lib,
		dates:  dates,
		opts:   opts.withDefaults(),
		logger: logger.With("component", "gallery", "mount", id),
		now:    time.Now,
	}
}

// ID returns the mount identifier used in logs.
func (g *Gallery) ID() string {
	return g.id
}

// Snapshot returns the current state and collection. Safe to call from any goroutine.
func (g *Gallery) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	shots := make([]Screenshot, len(g.screenshots))
	copy(shots, g.screenshots)
	return Snapshot{ID: g.id, State: g.state, Screenshots: shots, Err: g.err}
}

// Initialize requests permission and loads the screenshot collection.
// It may be called once; later calls return ErrAlreadyInitialized.
//
// Denial is a normal outcome: the returned Result has Permission Denied and
// the error is nil. If ctx is done before the result is committed, the
// Gallery is left untouched and ctx's error is returned.
func (g *Gallery) Initialize(ctx context.Context) (Result, error) {
	g.mu.Lock()
	if g.started {
		g.mu.Unlock()
		return Result{}, ErrAlreadyInitialized
	}
	g.started = true
	g.mu.Unlock()

	perm, err := g.lib.RequestPermission(ctx)
	if err != nil {
		return Result{}, g.fail(ctx, fmt.Errorf("request permission: %w", err))
	}
	g.logger.Debug("permission resolved", "permission", perm.String())

	if perm != Granted {
		err := g.commit(ctx, func() {
			g.state = StateDenied
			g.screenshots = nil
		})
		if err != nil {
			return Result{}, err
		}
		g.logger.Info("gallery access denied")
		return Result{Permission: Denied}, nil
	}

	if err := g.commit(ctx, func() { g.state = StateLoading }); err != nil {
		return Result{}, err
	}

	assets, err := g.lib.RecentPhotos(ctx, g.opts.FetchLimit)
	if err != nil {
		return Result{}, g.fail(ctx, fmt.Errorf("fetch recent photos: %w", err))
	}
	if len(assets) > g.opts.FetchLimit {
		assets = assets[:g.opts.FetchLimit]
	}

	shots := Select(assets, g.opts, g.dates, g.now)

	err = g.commit(ctx, func() {
		g.state = StateLoaded
		g.screenshots = shots
	})
	if err != nil {
		return Result{}, err
	}
	g.logger.Info("screenshots loaded", "fetched", len(assets), "screenshots", len(shots))

	out := make([]Screenshot, len(shots))
	copy(out, shots)
	return Result{Permission: Granted, Screenshots: out}, nil
}

// commit applies fn under the lock unless ctx is already done.
func (g *Gallery) commit(ctx context.Context, fn func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := ctx.Err(); err != nil {
		g.logger.Debug("screen gone, dropping result", "state", g.state.String())
		return fmt.Errorf("initialize gallery: %w", err)
	}
	fn()
	return nil
}

// fail moves the Gallery to StateFailed and returns err. A cancelled ctx wins over err.
func (g *Gallery) fail(ctx context.Context, err error) error {
	cerr := g.commit(ctx, func() {
		g.state = StateFailed
		g.screenshots = nil
		g.err = err
	})
	if cerr != nil {
		return cerr
	}
	g.logger.Error("gallery load failed", "error", err)
	return fmt.Errorf("initialize gallery: %w", err)
}
