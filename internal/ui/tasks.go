package ui

import (
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"warehouse-screenshots/internal/i18n"
	"warehouse-screenshots/pkg/checklist"
)

// TaskScreen is the daily route checklist.
type TaskScreen struct {
	th   *material.Theme
	cat  *i18n.Catalog
	nav  Navigator
	list *checklist.Checklist

	cards       []widget.Clickable
	scroll      widget.List
	openGallery widget.Clickable
}

func newTaskScreen(th *material.Theme, cat *i18n.Catalog, nav Navigator, list *checklist.Checklist) *TaskScreen {
	s := &TaskScreen{
		th:    th,
		cat:   cat,
		nav:   nav,
		list:  list,
		cards: make([]widget.Clickable, list.Len()),
	}
	s.scroll.Axis = layout.Vertical
	return s
}

// Checklist returns the screen's task collection.
func (s *TaskScreen) Checklist() *checklist.Checklist {
	return s.list
}

// Counter is the progress line under the header, recomputed on every call.
func (s *TaskScreen) Counter() string {
	return s.cat.Counter(s.list.CompletedCount(), s.list.Len())
}

// Toggle flips the task with id.
func (s *TaskScreen) Toggle(id string) {
	s.list.Toggle(id)
}

// OpenGallery navigates to the screenshot warehouse.
func (s *TaskScreen) OpenGallery() error {
	return s.nav.Push(RouteWarehouse)
}

func (s *TaskScreen) Unmount() {}

func (s *TaskScreen) update(gtx layout.Context) {
	for i := range s.cards {
		if s.cards[i].Clicked(gtx) {
			s.Toggle(s.list.At(i).ID)
		}
	}
	if s.openGallery.Clicked(gtx) {
		// Route is static, Push cannot fail for it.
		_ = s.OpenGallery()
	}
}

func (s *TaskScreen) Layout(gtx layout.Context) layout.Dimensions {
	s.update(gtx)
	fill(gtx, colorPage)

	return layout.Inset{Top: unit.Dp(50)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.H4(s.th, s.cat.T(i18n.Header))
				l.Font.Weight = font.Bold
				l.Alignment = text.Middle
				l.Color = colorInk
				return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, l.Layout)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Body1(s.th, s.Counter())
				l.Alignment = text.Middle
				l.Color = colorMuted
				return layout.Inset{Bottom: unit.Dp(30)}.Layout(gtx, l.Layout)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Left: unit.Dp(20), Right: unit.Dp(20)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return material.List(s.th, &s.scroll).Layout(gtx, s.list.Len(), s.layoutCard)
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					b := material.Button(s.th, &s.openGallery, s.cat.T(i18n.OpenGallery))
					b.Background = colorAccent
					b.Color = colorWhite
					b.CornerRadius = unit.Dp(12)
					b.Inset = layout.UniformInset(unit.Dp(16))
					return b.Layout(gtx)
				})
			}),
		)
	})
}

func (s *TaskScreen) layoutCard(gtx layout.Context, i int) layout.Dimensions {
	t := s.list.At(i)
	bg, titleColor, subColor := colorCard, colorInk, colorMuted
	if t.Completed {
		bg, titleColor, subColor = colorCardDone, colorDoneText, colorDoneText
	}

	return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return material.Clickable(gtx, &s.cards[i], func(gtx layout.Context) layout.Dimensions {
			return rounded(gtx, bg, unit.Dp(12), func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return layout.Inset{Right: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
								return radio(gtx, t.Completed)
							})
						}),
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									l := material.H6(s.th, t.Title)
									l.Font.Weight = font.SemiBold
									l.Color = titleColor
									return l.Layout(gtx)
								}),
								layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									l := material.Body2(s.th, t.Subtitle)
									l.Color = subColor
									return l.Layout(gtx)
								}),
							)
						}),
					)
				})
			})
		})
	})
}
