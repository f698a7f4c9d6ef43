// SPDX-License-Identifier: Unlicense OR MIT

package component

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"strings"

	"gioui.org/font"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/extra/internal/tint"
	"gioui.org/extra/selection"
)

// MultiPickListStyle is a drop-down list from which any number of options
// can be picked. The menu stays open while options are toggled.
type MultiPickListStyle[V comparable] struct {
	Options []V
	// Selected lists the picked options. It is owned by the program.
	Selected []V
	// Placeholder is shown in the header while nothing is selected.
	Placeholder string
	// Format converts options to text. It defaults to fmt.Sprint.
	Format func(V) string
	// OnSelect is called with an option when its row is activated. The
	// program decides whether that adds or removes the option.
	OnSelect func(V)
	OnOpen   func()
	OnClose  func()

	// ItemHeight is the minimum height of the header and of every row.
	ItemHeight unit.Dp
	// MenuHeight caps the height of the open menu, which scrolls when the
	// rows do not fit. Zero leaves only the constraints as a limit.
	MenuHeight unit.Dp
	Inset      layout.Inset
	CheckSize  unit.Dp
	Radius     unit.Dp

	Color       color.NRGBA
	Background  color.NRGBA
	BorderColor color.NRGBA
	IconColor   color.NRGBA
	TextSize    unit.Sp
	Font        font.Font

	Dropdown *selection.Dropdown
	Choices  *selection.Choices[V]

	menu   material.ListStyle
	shaper *text.Shaper
}

// MultiPickList returns a multi-select drop-down over options.
func MultiPickList[V comparable](th *material.Theme, dropdown *selection.Dropdown, choices *selection.Choices[V], options, selected []V, onSelect func(V)) MultiPickListStyle[V] {
	return MultiPickListStyle[V]{
		Options:     options,
		Selected:    selected,
		OnSelect:    onSelect,
		ItemHeight:  unit.Dp(32),
		MenuHeight:  unit.Dp(200),
		Inset:       layout.Inset{Top: 4, Bottom: 4, Left: 10, Right: 10},
		CheckSize:   defaultSquareSize,
		Radius:      unit.Dp(2),
		Color:       th.Palette.Fg,
		Background:  th.Palette.Bg,
		BorderColor: tint.MulAlpha(th.Palette.Fg, 0x88),
		IconColor:   th.Palette.ContrastBg,
		TextSize:    th.TextSize * 14.0 / 16.0,
		Font:        font.Font{Typeface: th.Face},
		Dropdown:    dropdown,
		Choices:     choices,
		menu:        material.List(th, &dropdown.List),
		shaper:      th.Shaper,
	}
}

// IsSelected reports whether v is among the selected options.
func (m MultiPickListStyle[V]) IsSelected(v V) bool {
	return slices.Contains(m.Selected, v)
}

func (m MultiPickListStyle[V]) format(v V) string {
	if m.Format != nil {
		return m.Format(v)
	}
	return fmt.Sprint(v)
}

// HeaderText returns the text shown in the closed list.
func (m MultiPickListStyle[V]) HeaderText() string {
	if len(m.Selected) == 0 {
		return m.Placeholder
	}
	names := make([]string, len(m.Selected))
	for i, v := range m.Selected {
		names[i] = m.format(v)
	}
	return strings.Join(names, ", ")
}

// Layout handles header and row activations and draws the header. The
// open menu is deferred so that it is drawn above the rest of the frame,
// together with a dismiss area beneath it that closes the menu on any
// click outside the rows. The returned dimensions cover the header only.
func (m MultiPickListStyle[V]) Layout(gtx layout.Context) layout.Dimensions {
	for {
		v, ok := m.Choices.Update(gtx)
		if !ok {
			break
		}
		if m.OnSelect != nil && slices.Contains(m.Options, v) {
			m.OnSelect(v)
		}
	}
	if m.Dropdown.Update(gtx) {
		switch {
		case m.Dropdown.Expanded && m.OnOpen != nil:
			m.OnOpen()
		case !m.Dropdown.Expanded && m.OnClose != nil:
			m.OnClose()
		}
	}
	width := gtx.Constraints.Max.X
	dims := m.Dropdown.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return m.layoutHeader(gtx, width)
	})
	if !m.Dropdown.Expanded {
		return dims
	}
	macro := op.Record(gtx.Ops)
	m.Dropdown.LayoutDismiss(gtx)
	op.Offset(image.Pt(0, dims.Size.Y)).Add(gtx.Ops)
	m.layoutMenu(gtx, width)
	op.Defer(gtx.Ops, macro.Stop())
	return dims
}

func (m MultiPickListStyle[V]) layoutHeader(gtx layout.Context, width int) layout.Dimensions {
	handle := gtx.Sp(m.TextSize)
	left, right := gtx.Dp(m.Inset.Left), gtx.Dp(m.Inset.Right)
	txt, tdims := m.text(gtx, m.HeaderText(), max(width-left-right-handle, 0))
	height := max(gtx.Dp(m.ItemHeight), tdims.Size.Y+gtx.Dp(m.Inset.Top)+gtx.Dp(m.Inset.Bottom))
	size := image.Pt(width, height)

	bg, border := m.Background, m.BorderColor
	if m.Dropdown.Hovered() && gtx.Enabled() {
		bg = tint.Hovered(bg)
	}
	if m.Dropdown.Expanded {
		border = m.IconColor
	}
	rr := clip.UniformRRect(image.Rectangle{Max: size}, gtx.Dp(m.Radius))
	paint.FillShape(gtx.Ops, bg, rr.Op(gtx.Ops))
	paint.FillShape(gtx.Ops, border, clip.Stroke{Path: rr.Path(gtx.Ops), Width: float32(max(gtx.Dp(1), 1))}.Op())

	t := op.Offset(image.Pt(left, (height-tdims.Size.Y)/2)).Push(gtx.Ops)
	txt.Add(gtx.Ops)
	t.Pop()

	t = op.Offset(image.Pt(width-right-handle, (height-handle)/2)).Push(gtx.Ops)
	drawChevron(gtx.Ops, handle, m.Color)
	t.Pop()

	return layout.Dimensions{Size: size}
}

func (m MultiPickListStyle[V]) layoutMenu(gtx layout.Context, width int) layout.Dimensions {
	height := gtx.Constraints.Max.Y
	if mh := gtx.Dp(m.MenuHeight); mh > 0 {
		height = mh
	}
	gtx.Constraints = layout.Constraints{
		Min: image.Pt(width, 0),
		Max: image.Pt(width, height),
	}
	m.Dropdown.List.Axis = layout.Vertical

	rows := op.Record(gtx.Ops)
	dims := m.menu.Layout(gtx, len(m.Options), func(gtx layout.Context, i int) layout.Dimensions {
		return m.layoutRow(gtx, m.Options[i], gtx.Constraints.Max.X)
	})
	call := rows.Stop()
	size := image.Pt(width, dims.Size.Y)

	rr := clip.UniformRRect(image.Rectangle{Max: size}, gtx.Dp(m.Radius))
	paint.FillShape(gtx.Ops, m.Background, rr.Op(gtx.Ops))
	call.Add(gtx.Ops)
	paint.FillShape(gtx.Ops, m.BorderColor, clip.Stroke{Path: rr.Path(gtx.Ops), Width: float32(max(gtx.Dp(1), 1))}.Op())
	return layout.Dimensions{Size: size}
}

func (m MultiPickListStyle[V]) layoutRow(gtx layout.Context, v V, width int) layout.Dimensions {
	selected := m.IsSelected(v)
	hovered := m.Choices.Hovered(v)
	return m.Choices.Layout(gtx, v, selected, func(gtx layout.Context) layout.Dimensions {
		semantic.CheckBox.Add(gtx.Ops)
		left, right := gtx.Dp(m.Inset.Left), gtx.Dp(m.Inset.Right)
		side := gtx.Dp(m.CheckSize)
		spacing := gtx.Dp(defaultSquareSpacing)
		txt, tdims := m.text(gtx, m.format(v), max(width-left-right-side-spacing, 0))
		height := max(gtx.Dp(m.ItemHeight), tdims.Size.Y, side)
		size := image.Pt(width, height)

		if hovered && gtx.Enabled() {
			paint.FillShape(gtx.Ops, tint.Hovered(m.Background), clip.Rect{Max: size}.Op())
		}
		t := op.Offset(image.Pt(left, (height-side)/2)).Push(gtx.Ops)
		drawSquare(gtx.Ops, side, gtx.Dp(m.Radius), float32(max(gtx.Dp(1), 1)), color.NRGBA{}, m.BorderColor)
		if selected {
			drawCheck(gtx.Ops, side, m.IconColor)
		}
		t.Pop()

		t = op.Offset(image.Pt(left+side+spacing, (height-tdims.Size.Y)/2)).Push(gtx.Ops)
		txt.Add(gtx.Ops)
		t.Pop()
		return layout.Dimensions{Size: size}
	})
}

// text shapes a single line of text no wider than maxWidth.
func (m MultiPickListStyle[V]) text(gtx layout.Context, s string, maxWidth int) (op.CallOp, layout.Dimensions) {
	col := m.Color
	if !gtx.Enabled() {
		col = tint.Disabled(col)
	}
	macro := op.Record(gtx.Ops)
	gtx.Constraints = layout.Constraints{Max: image.Pt(maxWidth, max(gtx.Constraints.Max.Y, gtx.Dp(m.ItemHeight)))}
	dims := widget.Label{MaxLines: 1}.Layout(gtx, m.shaper, m.Font, m.TextSize, s, textMaterial(gtx.Ops, col))
	return macro.Stop(), dims
}
