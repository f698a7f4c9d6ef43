// SPDX-License-Identifier: Unlicense OR MIT

package tint

import (
	"image/color"
	"testing"
)

func TestMulAlpha(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF}
	if got := MulAlpha(c, 0x88); got.A != 0x88 || got.R != 10 {
		t.Errorf("MulAlpha(%v, 0x88) = %v", c, got)
	}
	if got := MulAlpha(c, 0); got.A != 0 {
		t.Errorf("MulAlpha(%v, 0) = %v, expected transparent", c, got)
	}
}

func TestDisabledKeepsTranslucency(t *testing.T) {
	for alpha := 0; alpha <= 0xFF; alpha++ {
		c := color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: uint8(alpha)}
		d := Disabled(c)
		if d.A > c.A {
			t.Errorf("%v: disabled alpha %d exceeds %d", c, d.A, c.A)
		}
	}
}

func TestHovered(t *testing.T) {
	if got := Hovered(color.NRGBA{}); got.A == 0 {
		t.Error("hovering a transparent color should be visible")
	}
	dark := color.NRGBA{A: 0xFF}
	if got := Hovered(dark); got.R <= dark.R {
		t.Errorf("hovered dark color %v did not brighten", got)
	}
	light := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	if got := Hovered(light); got.R >= light.R {
		t.Errorf("hovered light color %v did not darken", got)
	}
}
