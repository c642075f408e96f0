// Package ui holds the two Gio screens, the task checklist and the
// screenshot warehouse, and the router that moves between them.
package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/widget/material"

	"warehouse-screenshots/internal/i18n"
	"warehouse-screenshots/pkg/checklist"
	"warehouse-screenshots/pkg/gallery"
)

// Routes
const (
	RouteTasks     = "/"
	RouteWarehouse = "/warehouse"
)

// ErrUnknownRoute is returned by Push for routes the app does not serve.
var ErrUnknownRoute = errors.New("unknown route")

// Navigator moves between screens.
type Navigator interface {
	Push(route string) error
	Pop() bool
}

// Screen is a mounted page.
type Screen interface {
	Layout(gtx layout.Context) layout.Dimensions
	// Unmount is called once when the screen leaves the stack.
	Unmount()
}

// Deps are the collaborators the screens need.
type Deps struct {
	Theme      *material.Theme
	Catalog    *i18n.Catalog
	Library    gallery.Library
	Options    gallery.Options
	Logger     *slog.Logger
	Invalidate func() // asks the window for a new frame; safe from any goroutine
}

type page struct {
	route  string
	screen Screen
}

// App is the root of the UI: a stack of screens, topmost visible.
// Push, Pop and Layout run on the UI goroutine.
type App struct {
	deps   Deps
	logger *slog.Logger
	stack  []page
}

// NewApp creates the app with the task screen mounted.
func NewApp(deps Deps) (*App, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Invalidate == nil {
		deps.Invalidate = func() {}
	}
	a := &App{
		deps:   deps,
		logger: deps.Logger.With("component", "ui"),
	}
	if err := a.Push(RouteTasks); err != nil {
		return nil, err
	}
	return a, nil
}

// Push mounts the screen for route on top of the stack.
func (a *App) Push(route string) error {
	var s Screen
	switch route {
	case RouteTasks:
		list, err := checklist.New(nil)
		if err != nil {
			return fmt.Errorf("mount %s: %w", route, err)
		}
		s = newTaskScreen(a.deps.Theme, a.deps.Catalog, a, list)
	case RouteWarehouse:
		g := gallery.New(a.deps.Library, a.deps.Catalog, a.deps.Options, a.deps.Logger)
		thumbs := NewThumbnails(thumbWidth, a.deps.Invalidate, a.deps.Logger)
		s = newGalleryScreen(a.deps.Theme, a.deps.Catalog, a, g, thumbs, a.deps.Invalidate)
	default:
		return fmt.Errorf("push %q: %w", route, ErrUnknownRoute)
	}
	a.stack = append(a.stack, page{route: route, screen: s})
	a.logger.Debug("navigate", "route", route, "depth", len(a.stack))
	a.deps.Invalidate()
	return nil
}

// Pop unmounts the top screen. The root screen is never popped.
func (a *App) Pop() bool {
	if len(a.stack) < 2 {
		return false
	}
	top := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	top.screen.Unmount()
	a.logger.Debug("navigate back", "from", top.route, "depth", len(a.stack))
	a.deps.Invalidate()
	return true
}

// Route returns the visible route.
func (a *App) Route() string {
	return a.stack[len(a.stack)-1].route
}

// Top returns the visible screen.
func (a *App) Top() Screen {
	return a.stack[len(a.stack)-1].screen
}

// Close unmounts every screen.
func (a *App) Close() {
	for i := len(a.stack) - 1; i >= 0; i-- {
		a.stack[i].screen.Unmount()
	}
	a.stack = nil
}

// Layout handles back navigation and draws the visible screen.
func (a *App) Layout(gtx layout.Context) layout.Dimensions {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameBack},
			key.Filter{Name: key.NameEscape},
		)
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			a.Pop()
		}
	}
	return a.Top().Layout(gtx)
}
