// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that demonstrates the square radio buttons, labeled
// progress bars and multi-pick lists of gioui.org/extra.

import (
	"log"
	"os"
	"slices"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/extra/component"
	"gioui.org/extra/selection"
)

func main() {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Picker"), app.Size(unit.Dp(480), unit.Dp(640)))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

type state struct {
	alignment  component.LabelAlignment
	alignments selection.Choices[component.LabelAlignment]
	progress   widget.Float

	toppings  []string
	dropdown  selection.Dropdown
	toppingUI selection.Choices[string]
}

var allToppings = []string{"Cheese", "Mushroom", "Olive", "Pepper", "Onion"}

func loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	s := &state{alignment: component.AlignCenter}
	s.progress.Value = 0.37
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			s.layout(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

func (s *state) layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	selectAlignment := func(a component.LabelAlignment) {
		s.alignment = a
	}
	toggleTopping := func(t string) {
		if i := slices.Index(s.toppings, t); i != -1 {
			s.toppings = slices.Delete(s.toppings, i, i+1)
		} else {
			s.toppings = append(s.toppings, t)
		}
	}
	radio := func(a component.LabelAlignment) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Right: unit.Dp(16)}.Layout(gtx,
				component.SquareRadio(th, &s.alignments, a, s.alignment, selectAlignment).
					WithLabel(a.String()).
					Layout,
			)
		})
	}
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H6(th, "Label alignment").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					radio(component.AlignLeft),
					radio(component.AlignCenter),
					radio(component.AlignRight),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(material.Slider(th, &s.progress).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(component.LabeledProgressBar(th, s.progress.Value, s.alignment).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(component.LabeledProgressBar(th, s.progress.Value, s.alignment).Success().Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(component.LabeledProgressBar(th, s.progress.Value, s.alignment).Danger().Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(24)}.Layout),
			layout.Rigid(material.H6(th, "Toppings").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				list := component.MultiPickList(th, &s.dropdown, &s.toppingUI, allToppings, s.toppings, toggleTopping)
				list.Placeholder = "Choose toppings"
				return list.Layout(gtx)
			}),
		)
	})
}
