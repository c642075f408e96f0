package ui

import (
	"context"
	"errors"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"warehouse-screenshots/internal/i18n"
	"warehouse-screenshots/pkg/gallery"
)

// thumbWidth bounds decoded thumbnails, in pixels.
const thumbWidth = 1080

// GalleryScreen is the screenshot warehouse. Mounting it starts the gallery
// load; unmounting cancels it.
type GalleryScreen struct {
	th     *material.Theme
	cat    *i18n.Catalog
	nav    Navigator
	g      *gallery.Gallery
	thumbs *Thumbnails

	cancel context.CancelFunc
	done   chan struct{}

	back   widget.Clickable
	scroll widget.List
}

func newGalleryScreen(th *material.Theme, cat *i18n.Catalog, nav Navigator, g *gallery.Gallery, thumbs *Thumbnails, invalidate func()) *GalleryScreen {
	ctx, cancel := context.WithCancel(context.Background())
	s := &GalleryScreen{
		th:     th,
		cat:    cat,
		nav:    nav,
		g:      g,
		thumbs: thumbs,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.scroll.Axis = layout.Vertical

	go func() {
		defer close(s.done)
		// Gallery logs failures itself; a cancelled load just means the screen is gone.
		if _, err := g.Initialize(ctx); errors.Is(err, context.Canceled) {
			return
		}
		invalidate()
	}()
	return s
}

// Gallery returns the screen's gallery.
func (s *GalleryScreen) Gallery() *gallery.Gallery {
	return s.g
}

// Done is closed when the load has finished or been abandoned.
func (s *GalleryScreen) Done() <-chan struct{} {
	return s.done
}

// Thumbnails returns the screen's image cache.
func (s *GalleryScreen) Thumbnails() *Thumbnails {
	return s.thumbs
}

// Unmount cancels an in-flight load and drops the decoded images.
func (s *GalleryScreen) Unmount() {
	s.cancel()
	s.thumbs.Close()
}

// Subtitle is the line under the title: the permission prompt until the
// collection is loaded, then the screenshot count.
func (s *GalleryScreen) Subtitle() string {
	return s.subtitle(s.g.Snapshot())
}

// EmptyMessage returns the empty-state text and whether it should be shown.
func (s *GalleryScreen) EmptyMessage() (string, bool) {
	return s.emptyMessage(s.g.Snapshot())
}

func (s *GalleryScreen) subtitle(snap gallery.Snapshot) string {
	switch snap.State {
	case gallery.StateLoaded:
		return s.cat.Found(len(snap.Screenshots))
	case gallery.StateFailed:
		return s.cat.T(i18n.LoadFailed)
	default:
		return s.cat.T(i18n.GrantAccess)
	}
}

func (s *GalleryScreen) emptyMessage(snap gallery.Snapshot) (string, bool) {
	if len(snap.Screenshots) > 0 {
		return "", false
	}
	return s.cat.T(i18n.Empty), true
}

func (s *GalleryScreen) Layout(gtx layout.Context) layout.Dimensions {
	if s.back.Clicked(gtx) {
		s.nav.Pop()
	}
	fill(gtx, colorDark)

	// One snapshot per frame so the subtitle, empty state and list agree.
	snap := s.g.Snapshot()
	subColor := colorDarkSubtle
	if snap.State == gallery.StateFailed {
		subColor = colorError
	}

	return layout.Inset{Top: unit.Dp(50)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Left: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					b := material.Button(s.th, &s.back, "‹ "+s.cat.T(i18n.Back))
					b.Background = colorDark
					b.Color = colorAccent
					return b.Layout(gtx)
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.H5(s.th, s.cat.T(i18n.GalleryTitle))
				l.Font.Weight = font.Bold
				l.Alignment = text.Middle
				l.Color = colorWhite
				return layout.Inset{Top: unit.Dp(20), Bottom: unit.Dp(20)}.Layout(gtx, l.Layout)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Body1(s.th, s.subtitle(snap))
				l.Alignment = text.Middle
				l.Color = subColor
				return layout.Inset{Bottom: unit.Dp(20)}.Layout(gtx, l.Layout)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				if msg, ok := s.emptyMessage(snap); ok {
					return layout.Inset{Top: unit.Dp(60)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						l := material.H6(s.th, msg)
						l.Alignment = text.Middle
						l.Color = colorDoneText
						return l.Layout(gtx)
					})
				}
				return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return material.List(s.th, &s.scroll).Layout(gtx, len(snap.Screenshots), func(gtx layout.Context, i int) layout.Dimensions {
						return s.layoutItem(gtx, snap.Screenshots[i])
					})
				})
			}),
		)
	})
}

func (s *GalleryScreen) layoutItem(gtx layout.Context, shot gallery.Screenshot) layout.Dimensions {
	return layout.Inset{Bottom: unit.Dp(20)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(500))
				gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
				return rounded(gtx, colorPlaceholder, unit.Dp(16), func(gtx layout.Context) layout.Dimensions {
					img, ok := s.thumbs.Get(shot.URI)
					if !ok {
						return layout.Dimensions{Size: gtx.Constraints.Min}
					}
					return widget.Image{Src: img, Fit: widget.Contain, Position: layout.Center}.Layout(gtx)
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Body2(s.th, shot.Date)
				l.Color = colorWhite
				return layout.Inset{Top: unit.Dp(8)}.Layout(gtx, l.Layout)
			}),
		)
	})
}
