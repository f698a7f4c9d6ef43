// SPDX-License-Identifier: Unlicense OR MIT

package selection

import (
	"slices"

	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/widget"
)

// Choices tracks the click state of a set of options keyed by value.
// The zero value is ready to use.
type Choices[V comparable] struct {
	values []V
	clicks []*widget.Clickable
}

func (c *Choices[V]) clickable(v V) *widget.Clickable {
	if idx := slices.Index(c.values, v); idx != -1 {
		return c.clicks[idx]
	}
	clk := new(widget.Clickable)
	c.values = append(c.values, v)
	c.clicks = append(c.clicks, clk)
	return clk
}

// Clicked reports whether the option v has been activated since the last
// call. Unlike widget.Enum, activating the option that is already current
// is reported too.
func (c *Choices[V]) Clicked(gtx layout.Context, v V) bool {
	return c.clickable(v).Clicked(gtx)
}

// Update processes the events of every known option and returns the first
// activated one, if any.
func (c *Choices[V]) Update(gtx layout.Context) (V, bool) {
	for i, clk := range c.clicks {
		if clk.Clicked(gtx) {
			return c.values[i], true
		}
	}
	var zero V
	return zero, false
}

// Hovered reports whether the option v is hovered by a pointer.
func (c *Choices[V]) Hovered(v V) bool {
	if idx := slices.Index(c.values, v); idx != -1 {
		return c.clicks[idx].Hovered()
	}
	return false
}

// Pressed reports whether the option v is being pressed.
func (c *Choices[V]) Pressed(v V) bool {
	if idx := slices.Index(c.values, v); idx != -1 {
		return c.clicks[idx].Pressed()
	}
	return false
}

// Len returns the number of options laid out so far.
func (c *Choices[V]) Len() int {
	return len(c.values)
}

// Layout adds the event handler for the option v around the content w.
// The selected flag only describes the option to assistive technology.
func (c *Choices[V]) Layout(gtx layout.Context, v V, selected bool, w layout.Widget) layout.Dimensions {
	return c.clickable(v).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		semantic.SelectedOp(selected).Add(gtx.Ops)
		return w(gtx)
	})
}
