package gallery

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeLibrary struct {
	perm        Permission
	permErr     error
	assets      []Asset
	fetchErr    error
	ignoreLimit bool

	permCalls  int
	fetchCalls int
	gotLimit   int

	// when set, RecentPhotos waits on release before returning
	release chan struct{}
	entered chan struct{}
}

func (l *fakeLibrary) RequestPermission(_ context.Context) (Permission, error) {
	l.permCalls++
	return l.perm, l.permErr
}

func (l *fakeLibrary) RecentPhotos(_ context.Context, limit int) ([]Asset, error) {
	l.fetchCalls++
	l.gotLimit = limit
	if l.entered != nil {
		close(l.entered)
	}
	if l.release != nil {
		<-l.release
	}
	if l.fetchErr != nil {
		return nil, l.fetchErr
	}
	if !l.ignoreLimit && len(l.assets) > limit {
		return l.assets[:limit], nil
	}
	return l.assets, nil
}

type isoDates struct{}

func (isoDates) FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

var base = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

// assetsNewestFirst builds n assets one minute apart, newest first.
// Assets for which match(i) is true get a screenshot filename.
func assetsNewestFirst(n int, match func(i int) bool) []Asset {
	out := make([]Asset, n)
	for i := range out {
		name := fmt.Sprintf("IMG_%03d.jpg", i)
		if match(i) {
			name = fmt.Sprintf("Screenshot_%03d.png", i)
		}
		out[i] = Asset{
			Filename:     name,
			URI:          "file:///photos/" + name,
			CreationTime: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func newTestGallery(lib Library) *Gallery {
	g := New(lib, isoDates{}, DefaultOptions(), nil)
	g.now = func() time.Time { return base }
	return g
}

// --- Tests ---

func TestInitializeDenied(t *testing.T) {
	lib := &fakeLibrary{perm: Denied, assets: assetsNewestFirst(5, func(int) bool { return true })}
	g := newTestGallery(lib)
	assert.Equal(t, StateUnrequested, g.Snapshot().State)

	res, err := g.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Denied, res.Permission)
	assert.Empty(t, res.Screenshots)
	assert.Zero(t, lib.fetchCalls, "must not fetch without permission")

	snap := g.Snapshot()
	assert.Equal(t, StateDenied, snap.State)
	assert.Empty(t, snap.Screenshots)

	// Permission is requested once per mount; the collection stays empty.
	_, err = g.Initialize(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Equal(t, 1, lib.permCalls)
	assert.Empty(t, g.Snapshot().Screenshots)
	assert.Equal(t, StateDenied, g.Snapshot().State)
}

func TestInitializeCapsAtFifteen(t *testing.T) {
	// 40 photos, every other one a screenshot: 20 matches overall, 15 in the newest 30.
	lib := &fakeLibrary{perm: Granted, assets: assetsNewestFirst(40, func(i int) bool { return i%2 == 0 })}
	g := newTestGallery(lib)

	res, err := g.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, lib.gotLimit)
	assert.Equal(t, Granted, res.Permission)
	require.Len(t, res.Screenshots, 15)

	for k, s := range res.Screenshots {
		i := 2 * k
		assert.Equal(t, fmt.Sprintf("file:///photos/Screenshot_%03d.png", i), s.URI)
		assert.Equal(t, base.Add(-time.Duration(i)*time.Minute).Format(time.RFC3339), s.Date)
	}

	snap := g.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.Equal(t, res.Screenshots, snap.Screenshots)
}

func TestInitializeFirstFifteenMatches(t *testing.T) {
	// Library hands back all 40 despite the limit; the first 20 are screenshots.
	lib := &fakeLibrary{
		perm:        Granted,
		ignoreLimit: true,
		assets:      assetsNewestFirst(40, func(i int) bool { return i < 20 }),
	}
	g := newTestGallery(lib)

	res, err := g.Initialize(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Screenshots, 15)
	for i, s := range res.Screenshots {
		assert.Equal(t, fmt.Sprintf("file:///photos/Screenshot_%03d.png", i), s.URI)
	}
}

func TestInitializeNoScreenshots(t *testing.T) {
	lib := &fakeLibrary{perm: Granted, assets: assetsNewestFirst(10, func(int) bool { return false })}
	g := newTestGallery(lib)

	res, err := g.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Granted, res.Permission)
	assert.Empty(t, res.Screenshots)
	assert.Equal(t, StateLoaded, g.Snapshot().State)
}

func TestInitializeFetchError(t *testing.T) {
	boom := errors.New("media store unavailable")
	lib := &fakeLibrary{perm: Granted, fetchErr: boom}
	g := newTestGallery(lib)

	_, err := g.Initialize(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	snap := g.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.ErrorIs(t, snap.Err, boom)
	assert.Empty(t, snap.Screenshots)
}

func TestInitializePermissionError(t *testing.T) {
	boom := errors.New("prompt crashed")
	lib := &fakeLibrary{permErr: boom}
	g := newTestGallery(lib)

	_, err := g.Initialize(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateFailed, g.Snapshot().State)
	assert.Zero(t, lib.fetchCalls)
}

func TestInitializeCancelledDuringFetch(t *testing.T) {
	lib := &fakeLibrary{
		perm:    Granted,
		assets:  assetsNewestFirst(5, func(int) bool { return true }),
		release: make(chan struct{}),
		entered: make(chan struct{}),
	}
	g := newTestGallery(lib)
	ctx, cancel := context.WithCancel(context.Background())

	type outcome struct {
		res Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := g.Initialize(ctx)
		done <- outcome{res, err}
	}()

	<-lib.entered
	assert.Equal(t, StateLoading, g.Snapshot().State)

	// Screen unmounts while the fetch is in flight.
	cancel()
	close(lib.release)

	out := <-done
	assert.ErrorIs(t, out.err, context.Canceled)
	assert.Empty(t, out.res.Screenshots)

	snap := g.Snapshot()
	assert.Equal(t, StateLoading, snap.State, "stale result must not be committed")
	assert.Empty(t, snap.Screenshots)
}

func TestInitializeCancelledBeforeStart(t *testing.T) {
	lib := &fakeLibrary{perm: Denied}
	g := newTestGallery(lib)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Initialize(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateUnrequested, g.Snapshot().State)
}

func TestSnapshotIsCopy(t *testing.T) {
	lib := &fakeLibrary{perm: Granted, assets: assetsNewestFirst(3, func(int) bool { return true })}
	g := newTestGallery(lib)
	_, err := g.Initialize(context.Background())
	require.NoError(t, err)

	snap := g.Snapshot()
	require.NotEmpty(t, snap.Screenshots)
	snap.Screenshots[0].URI = "mutated"
	assert.NotEqual(t, "mutated", g.Snapshot().Screenshots[0].URI)
	assert.Equal(t, g.ID(), snap.ID)
}

func TestNewGivesDistinctMountIDs(t *testing.T) {
	a := New(&fakeLibrary{}, isoDates{}, Options{}, nil)
	b := New(&fakeLibrary{}, isoDates{}, Options{}, nil)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, DefaultOptions(), a.opts)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loaded", StateLoaded.String())
	assert.Equal(t, "denied", StateDenied.String())
	assert.Equal(t, "state(42)", State(42).String())
	assert.Equal(t, "granted", Granted.String())
}
