// SPDX-License-Identifier: Unlicense OR MIT

package component_test

import (
	"image"
	"reflect"
	"slices"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"gioui.org/extra/component"
	"gioui.org/extra/selection"
)

func TestMultiPickList(t *testing.T) {
	var (
		r        input.Router
		dropdown selection.Dropdown
		choices  selection.Choices[string]
	)
	th := newTheme()
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(200, 400)},
		Source:      r.Source(),
	}
	options := []string{"red", "green", "blue"}
	var (
		selected      []string
		opened, closed int
		header        layout.Dimensions
	)
	toggle := func(v string) {
		if i := slices.Index(selected, v); i != -1 {
			selected = slices.Delete(selected, i, i+1)
		} else {
			selected = append(selected, v)
		}
	}
	frame := func() {
		gtx.Ops.Reset()
		list := component.MultiPickList(th, &dropdown, &choices, options, selected, toggle)
		list.Placeholder = "Colors"
		list.OnOpen = func() { opened++ }
		list.OnClose = func() { closed++ }
		header = list.Layout(gtx)
		r.Frame(gtx.Ops)
	}

	frame()
	if header.Size.X != 200 || header.Size.Y < 32 {
		t.Fatalf("unexpected header size %v", header.Size)
	}
	click(&r, f32.Pt(20, 10))
	frame()
	if !dropdown.Expanded || opened != 1 {
		t.Fatalf("header click did not open the list (expanded %v, opened %d)", dropdown.Expanded, opened)
	}

	// Rows are ItemHeight (32dp) high below the header.
	row := func(i int) f32.Point {
		return f32.Pt(20, float32(header.Size.Y+i*32+16))
	}
	click(&r, row(1))
	frame()
	click(&r, row(2))
	frame()
	if got, exp := selected, []string{"green", "blue"}; !reflect.DeepEqual(got, exp) {
		t.Errorf("selected %v, expected %v", got, exp)
	}
	if !dropdown.Expanded {
		t.Error("picking an option closed the list")
	}
	click(&r, row(1))
	frame()
	if got, exp := selected, []string{"blue"}; !reflect.DeepEqual(got, exp) {
		t.Errorf("selected %v after toggling green off, expected %v", got, exp)
	}

	click(&r, f32.Pt(20, 10))
	frame()
	if dropdown.Expanded || closed != 1 {
		t.Errorf("second header click did not close the list (expanded %v, closed %d)", dropdown.Expanded, closed)
	}
}

func TestMultiPickListDismiss(t *testing.T) {
	var (
		r        input.Router
		dropdown selection.Dropdown
		choices  selection.Choices[string]
	)
	th := newTheme()
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(200, 400)},
		Source:      r.Source(),
	}
	var (
		picked         []string
		opened, closed int
	)
	frame := func() {
		gtx.Ops.Reset()
		list := component.MultiPickList(th, &dropdown, &choices, []string{"red", "green", "blue"}, nil, func(v string) {
			picked = append(picked, v)
		})
		list.OnOpen = func() { opened++ }
		list.OnClose = func() { closed++ }
		list.Layout(gtx)
		r.Frame(gtx.Ops)
	}

	frame()
	click(&r, f32.Pt(20, 10))
	frame()
	if !dropdown.Expanded || opened != 1 {
		t.Fatalf("header click did not open the list (expanded %v, opened %d)", dropdown.Expanded, opened)
	}
	// Below the menu, hitting nothing else.
	click(&r, f32.Pt(100, 390))
	frame()
	if dropdown.Expanded {
		t.Error("click outside the menu did not close it")
	}
	if closed != 1 {
		t.Errorf("OnClose called %d times, expected 1", closed)
	}
	if len(picked) != 0 {
		t.Errorf("click outside the menu picked %v", picked)
	}

	// Closed lists have no dismiss area.
	click(&r, f32.Pt(100, 390))
	frame()
	if dropdown.Expanded || opened != 1 || closed != 1 {
		t.Errorf("click outside a closed list changed it (expanded %v, opened %d, closed %d)", dropdown.Expanded, opened, closed)
	}
}

func TestMultiPickListMenuHeight(t *testing.T) {
	var (
		r        input.Router
		dropdown selection.Dropdown
		choices  selection.Choices[int]
	)
	th := newTheme()
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(200, 400)},
		Source:      r.Source(),
	}
	options := make([]int, 100)
	for i := range options {
		options[i] = i
	}
	var (
		picked []int
		closed int
		header layout.Dimensions
	)
	frame := func() {
		gtx.Ops.Reset()
		list := component.MultiPickList(th, &dropdown, &choices, options, nil, func(v int) {
			picked = append(picked, v)
		})
		list.MenuHeight = unit.Dp(96)
		list.OnClose = func() { closed++ }
		header = list.Layout(gtx)
		r.Frame(gtx.Ops)
	}

	frame()
	click(&r, f32.Pt(20, 10))
	frame()
	row := func(i int) f32.Point {
		return f32.Pt(20, float32(header.Size.Y+i*32+16))
	}
	click(&r, row(2))
	frame()
	if got, exp := picked, []int{2}; !reflect.DeepEqual(got, exp) {
		t.Fatalf("picked %v, expected %v", got, exp)
	}
	// The fourth row lies past the 96dp cap.
	click(&r, row(3))
	frame()
	if got, exp := picked, []int{2}; !reflect.DeepEqual(got, exp) {
		t.Errorf("click below the capped menu picked %v", got)
	}
	if dropdown.Expanded || closed != 1 {
		t.Errorf("click below the capped menu did not close it (expanded %v, closed %d)", dropdown.Expanded, closed)
	}
}

func TestMultiPickListHeaderText(t *testing.T) {
	th := newTheme()
	list := component.MultiPickList(th, new(selection.Dropdown), new(selection.Choices[int]), []int{1, 2, 3}, nil, nil)
	list.Placeholder = "Pick"
	if got := list.HeaderText(); got != "Pick" {
		t.Errorf("empty selection shows %q, expected the placeholder", got)
	}
	list.Selected = []int{3, 1}
	list.Format = func(v int) string { return []string{"zero", "one", "two", "three"}[v] }
	if got, exp := list.HeaderText(), "three, one"; got != exp {
		t.Errorf("header text is %q, expected %q", got, exp)
	}
	if !list.IsSelected(1) || list.IsSelected(2) {
		t.Error("IsSelected does not match Selected")
	}
}
