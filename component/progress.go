// SPDX-License-Identifier: Unlicense OR MIT

package component

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/extra/internal/tint"
)

// LabelAlignment is the horizontal anchor of a progress label.
type LabelAlignment uint8

const (
	// AlignLeft starts the label at the left inset of the bar.
	AlignLeft LabelAlignment = iota
	// AlignCenter centers the label in the full bar width.
	AlignCenter
	// AlignRight ends the label at the right inset of the bar.
	AlignRight
)

func (a LabelAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		panic("invalid LabelAlignment")
	}
}

// LabeledProgressBarStyle is a progress bar with a percentage label.
type LabeledProgressBarStyle struct {
	// Progress is the filled fraction in the range [0, 1]. Values outside
	// the range are drawn clamped.
	Progress  float32
	Alignment LabelAlignment
	// ShowPercentage enables the label.
	ShowPercentage bool
	Height         unit.Dp
	Radius         unit.Dp
	// Inset positions left and right aligned labels. Top and Bottom are
	// ignored; labels are always centered vertically.
	Inset      layout.Inset
	Color      color.NRGBA
	TrackColor color.NRGBA
	TextColor  color.NRGBA
	TextSize   unit.Sp
	Font       font.Font

	shaper *text.Shaper
}

// LabeledProgressBar returns a progress bar showing progress, with the
// percentage label anchored as specified by alignment.
func LabeledProgressBar(th *material.Theme, progress float32, alignment LabelAlignment) LabeledProgressBarStyle {
	return LabeledProgressBarStyle{
		Progress:       progress,
		Alignment:      alignment,
		ShowPercentage: true,
		Height:         unit.Dp(30),
		Radius:         unit.Dp(2),
		Inset:          layout.Inset{Left: unit.Dp(6), Right: unit.Dp(6)},
		Color:          th.Palette.ContrastBg,
		TrackColor:     tint.MulAlpha(th.Palette.Fg, 0x33),
		TextColor:      th.Palette.Fg,
		TextSize:       th.TextSize * 14.0 / 16.0,
		Font:           font.Font{Typeface: th.Face, Weight: font.Bold},
		shaper:         th.Shaper,
	}
}

var (
	successColor = color.NRGBA{R: 0x12, G: 0x66, B: 0x4f, A: 0xff}
	warningColor = color.NRGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0xff}
	dangerColor  = color.NRGBA{R: 0xc3, G: 0x42, B: 0x3f, A: 0xff}
)

// Primary returns a copy of p filled with the theme's contrast color.
func (p LabeledProgressBarStyle) Primary(th *material.Theme) LabeledProgressBarStyle {
	p.Color = th.Palette.ContrastBg
	return p
}

// Secondary returns a copy of p filled with a muted foreground.
func (p LabeledProgressBarStyle) Secondary(th *material.Theme) LabeledProgressBarStyle {
	p.Color = tint.MulAlpha(th.Palette.Fg, 0x88)
	return p
}

// Success fills the bar with the success color.
func (p LabeledProgressBarStyle) Success() LabeledProgressBarStyle {
	p.Color = successColor
	return p
}

// Warning fills the bar with the warning color.
func (p LabeledProgressBarStyle) Warning() LabeledProgressBarStyle {
	p.Color = warningColor
	return p
}

// Danger fills the bar with the danger color.
func (p LabeledProgressBarStyle) Danger() LabeledProgressBarStyle {
	p.Color = dangerColor
	return p
}

// Layout draws the bar over the maximum width of the constraints.
func (p LabeledProgressBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Constrain(image.Pt(gtx.Constraints.Max.X, gtx.Dp(p.Height)))
	rr := gtx.Dp(p.Radius)
	track, fill := p.TrackColor, p.Color
	if !gtx.Enabled() {
		track, fill = tint.Disabled(track), tint.Disabled(fill)
	}
	paint.FillShape(gtx.Ops, track, clip.UniformRRect(image.Rectangle{Max: size}, rr).Op(gtx.Ops))
	if w := fillWidth(size.X, p.Progress); w > 0 {
		r := image.Rectangle{Max: image.Pt(w, size.Y)}
		paint.FillShape(gtx.Ops, fill, clip.UniformRRect(r, min(rr, w/2)).Op(gtx.Ops))
	}
	if p.ShowPercentage {
		call, off, _ := p.label(gtx, size)
		t := op.Offset(off).Push(gtx.Ops)
		call.Add(gtx.Ops)
		t.Pop()
	}
	return layout.Dimensions{Size: size}
}

// label shapes the percentage text and returns its drawing together with
// its offset and dimensions inside a bar of the given size. The fill plays
// no part in the placement.
func (p LabeledProgressBarStyle) label(gtx layout.Context, size image.Point) (op.CallOp, image.Point, layout.Dimensions) {
	col := p.TextColor
	if !gtx.Enabled() {
		col = tint.Disabled(col)
	}
	m := op.Record(gtx.Ops)
	gtx.Constraints = layout.Constraints{Max: size}
	dims := widget.Label{MaxLines: 1}.Layout(gtx, p.shaper, p.Font, p.TextSize, percentText(p.Progress), textMaterial(gtx.Ops, col))
	call := m.Stop()
	x := labelX(p.Alignment, size.X, dims.Size.X, gtx.Dp(p.Inset.Left), gtx.Dp(p.Inset.Right))
	y := max((size.Y-dims.Size.Y)/2, 0)
	return call, image.Pt(x, y), dims
}

// fillWidth returns the filled extent of a bar of the given width,
// rounded to the nearest pixel.
func fillWidth(width int, progress float32) int {
	return int(math.Round(float64(width) * float64(clamp1(progress))))
}

// labelX returns the left edge of a label of width textWidth inside a bar
// of the given width. Labels wider than the bar start at the left edge.
func labelX(a LabelAlignment, width, textWidth, insetLeft, insetRight int) int {
	var x int
	switch a {
	case AlignCenter:
		x = (width - textWidth) / 2
	case AlignRight:
		x = width - insetRight - textWidth
	default:
		x = insetLeft
	}
	return max(x, 0)
}

// percentText formats progress as a whole percentage.
func percentText(progress float32) string {
	pct := int(math.Round(float64(clamp1(progress)) * 100))
	return strconv.Itoa(pct) + "%"
}

// clamp1 limits v to range [0..1].
func clamp1(v float32) float32 {
	if v >= 1 {
		return 1
	} else if v <= 0 {
		return 0
	} else {
		return v
	}
}
