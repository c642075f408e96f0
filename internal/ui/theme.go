package ui

import (
	"image"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var (
	colorPage        = color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF}
	colorCard        = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorCardDone    = color.NRGBA{R: 0xE8, G: 0xF5, B: 0xE8, A: 0xFF}
	colorInk         = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	colorMuted       = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
	colorDoneText    = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorAccent      = color.NRGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}
	colorSuccess     = color.NRGBA{R: 0x34, G: 0xC7, B: 0x59, A: 0xFF}
	colorWhite       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorDark        = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorDarkSubtle  = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
	colorPlaceholder = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorError       = color.NRGBA{R: 0xC0, G: 0x30, B: 0x30, A: 0xFF}
)

// NewTheme returns the material theme shared by both screens.
func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Bg = colorPage
	th.Palette.Fg = colorInk
	th.Palette.ContrastBg = colorAccent
	th.Palette.ContrastFg = colorWhite
	return th
}

// fill paints the whole constraint area with c.
func fill(gtx layout.Context, c color.NRGBA) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, c)
	return layout.Dimensions{Size: size}
}

// rounded lays out w on a rounded rectangle of color c.
func rounded(gtx layout.Context, c color.NRGBA, radius unit.Dp, w layout.Widget) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			r := gtx.Dp(radius)
			defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, r).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, c)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		w,
	)
}

// radio draws the completion indicator.
func radio(gtx layout.Context, done bool) layout.Dimensions {
	d := gtx.Dp(unit.Dp(28))
	stroke := float32(gtx.Dp(unit.Dp(3)))
	outer := image.Rectangle{Max: image.Pt(d, d)}

	ring := colorAccent
	if done {
		ring = colorSuccess
	}
	inset := int(stroke / 2)
	paint.FillShape(gtx.Ops, ring, clip.Stroke{
		Path:  clip.Ellipse(outer.Inset(inset)).Path(gtx.Ops),
		Width: stroke,
	}.Op())

	if done {
		in := d / 4
		paint.FillShape(gtx.Ops, colorSuccess, clip.Ellipse(outer.Inset(in)).Op(gtx.Ops))
	}
	return layout.Dimensions{Size: outer.Max}
}
