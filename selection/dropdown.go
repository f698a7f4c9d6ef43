// SPDX-License-Identifier: Unlicense OR MIT

package selection

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/widget"
)

// dismissSpan is the distance the dismiss area extends from the list
// origin in every direction.
const dismissSpan = 1 << 16

// Dropdown is the open or closed state of a drop-down list.
type Dropdown struct {
	// Expanded reports whether the list is open.
	Expanded bool
	// List is the scroll state of the open menu.
	List widget.List

	header  widget.Clickable
	dismiss widget.Clickable
}

// Update processes header clicks, toggling Expanded once per click, and
// clicks outside the open list, which collapse it. It reports whether
// Expanded changed.
func (d *Dropdown) Update(gtx layout.Context) bool {
	was := d.Expanded
	for d.header.Clicked(gtx) {
		d.Expanded = !d.Expanded
	}
	for d.dismiss.Clicked(gtx) {
		d.Expanded = false
	}
	return d.Expanded != was
}

// Hovered reports whether the header is hovered.
func (d *Dropdown) Hovered() bool {
	return d.header.Hovered()
}

// Layout adds the header click handler around w. Pending clicks are
// applied to Expanded, but the transition is only reported by Update;
// call Update before Layout to observe it.
func (d *Dropdown) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	d.Update(gtx)
	return d.header.Layout(gtx, w)
}

// LayoutDismiss adds a click handler covering everything around the list
// origin. It must be drawn above the rest of the frame and below the open
// menu, typically at the start of a deferred macro, so that a click that
// misses the menu collapses the list.
func (d *Dropdown) LayoutDismiss(gtx layout.Context) {
	defer op.Offset(image.Pt(-dismissSpan, -dismissSpan)).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(2*dismissSpan, 2*dismissSpan))
	d.dismiss.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	})
}
