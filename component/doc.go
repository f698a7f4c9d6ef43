// SPDX-License-Identifier: Unlicense OR MIT

/*
Package component implements option and progress widgets on top of the
material theme of gioui.org.

The styles follow the conventions of gioui.org/widget/material: a
constructor takes a *material.Theme and returns a style struct with
exported fields, and Layout draws the widget for the current frame.
Interaction state is kept in the caller-owned types of package selection.

# Square radio buttons

A SquareRadio draws a checkbox-like square that behaves like a radio
button. Every option compares its own value against the current value
supplied by the program:

	var (
		choices selection.Choices[Fruit]
		current = Apple
	)
	for _, f := range []Fruit{Apple, Banana, Cherry} {
		component.SquareRadio(th, &choices, f, current, func(f Fruit) {
			current = f
		}).WithLabel(f.String()).Layout(gtx)
	}

Options are mutually exclusive only because the program stores one current
value; the widgets never change it themselves.

# Labeled progress bars

A LabeledProgressBar draws a percentage label over the bar, anchored to the
left, center or right of the full bar width regardless of the filled
extent.
*/
package component
