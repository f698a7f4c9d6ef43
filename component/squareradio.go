// SPDX-License-Identifier: Unlicense OR MIT

package component

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/extra/internal/tint"
	"gioui.org/extra/selection"
)

const (
	defaultSquareSize    = unit.Dp(16)
	defaultSquareSpacing = unit.Dp(8)
)

// SquareRadioStyle is a radio button drawn as a checkbox square.
type SquareRadioStyle[V comparable] struct {
	// Value is the option represented by the button.
	Value V
	// Current is the option currently selected by the program.
	Current V
	// OnSelect is called with Value every time the button is activated,
	// including when Value is already current.
	OnSelect func(V)
	// Label is drawn to the right of the square when not empty.
	Label string
	// Spacing separates the square from the label.
	Spacing unit.Dp
	// Size is the side of the square.
	Size unit.Dp
	// Radius rounds the corners of the square.
	Radius unit.Dp

	// Color is the label color.
	Color       color.NRGBA
	IconColor   color.NRGBA
	BorderColor color.NRGBA
	// Background fills the square; transparent by default.
	Background color.NRGBA
	TextSize   unit.Sp
	Font       font.Font
	Choices    *selection.Choices[V]

	shaper *text.Shaper
}

// SquareRadio returns a square radio button for value. It is drawn checked
// when value equals current. Activation calls onSelect with value; the
// program is responsible for making value current.
func SquareRadio[V comparable](th *material.Theme, choices *selection.Choices[V], value, current V, onSelect func(V)) SquareRadioStyle[V] {
	return SquareRadioStyle[V]{
		Value:       value,
		Current:     current,
		OnSelect:    onSelect,
		Spacing:     defaultSquareSpacing,
		Size:        defaultSquareSize,
		Radius:      unit.Dp(2),
		Color:       th.Palette.Fg,
		IconColor:   th.Palette.ContrastBg,
		BorderColor: tint.MulAlpha(th.Palette.Fg, 0x88),
		TextSize:    th.TextSize * 14.0 / 16.0,
		Font:        font.Font{Typeface: th.Face},
		Choices:     choices,
		shaper:      th.Shaper,
	}
}

// WithLabel returns a copy of s with the label text set.
func (s SquareRadioStyle[V]) WithLabel(label string) SquareRadioStyle[V] {
	s.Label = label
	return s
}

// WithSpacing returns a copy of s with the square to label spacing set.
func (s SquareRadioStyle[V]) WithSpacing(spacing unit.Dp) SquareRadioStyle[V] {
	s.Spacing = spacing
	return s
}

// Selected reports whether the button represents the current option.
func (s SquareRadioStyle[V]) Selected() bool {
	return s.Value == s.Current
}

// Layout handles activations and draws the button.
func (s SquareRadioStyle[V]) Layout(gtx layout.Context) layout.Dimensions {
	for s.Choices.Clicked(gtx, s.Value) {
		if s.OnSelect != nil {
			s.OnSelect(s.Value)
		}
	}
	selected := s.Selected()
	hovered := s.Choices.Hovered(s.Value)
	return s.Choices.Layout(gtx, s.Value, selected, func(gtx layout.Context) layout.Dimensions {
		semantic.RadioButton.Add(gtx.Ops)
		if s.Label == "" {
			return s.layoutSquare(gtx, selected, hovered)
		}
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return s.layoutSquare(gtx, selected, hovered)
			}),
			layout.Rigid(layout.Spacer{Width: s.Spacing}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				col := s.Color
				if !gtx.Enabled() {
					col = tint.Disabled(col)
				}
				return widget.Label{MaxLines: 1}.Layout(gtx, s.shaper, s.Font, s.TextSize, s.Label, textMaterial(gtx.Ops, col))
			}),
		)
	})
}

func (s SquareRadioStyle[V]) layoutSquare(gtx layout.Context, selected, hovered bool) layout.Dimensions {
	side := gtx.Dp(s.Size)
	bg, border, icon := s.Background, s.BorderColor, s.IconColor
	switch {
	case !gtx.Enabled():
		border, icon = tint.Disabled(border), tint.Disabled(icon)
	case hovered:
		bg = tint.Hovered(bg)
		if selected {
			border = icon
		}
	}
	drawSquare(gtx.Ops, side, gtx.Dp(s.Radius), float32(max(gtx.Dp(1), 1)), bg, border)
	if selected {
		drawCheck(gtx.Ops, side, icon)
	}
	return layout.Dimensions{Size: image.Pt(side, side)}
}
