// SPDX-License-Identifier: Unlicense OR MIT

package component

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// checkScale is the fraction of a square covered by its checkmark.
const checkScale = 0.7

// drawSquare fills an outlined square of the given side.
func drawSquare(ops *op.Ops, side, radius int, border float32, bg, stroke color.NRGBA) {
	rr := clip.UniformRRect(image.Rectangle{Max: image.Pt(side, side)}, radius)
	if bg.A != 0 {
		paint.FillShape(ops, bg, rr.Op(ops))
	}
	paint.FillShape(ops, stroke, clip.Stroke{Path: rr.Path(ops), Width: border}.Op())
}

// drawCheck strokes a checkmark centered in a square of the given side.
func drawCheck(ops *op.Ops, side int, col color.NRGBA) {
	s := float32(side) * checkScale
	off := (float32(side) - s) / 2
	pt := func(x, y float32) f32.Point {
		return f32.Pt(off+x*s, off+y*s)
	}
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(pt(0.1, 0.52))
	p.LineTo(pt(0.38, 0.8))
	p.LineTo(pt(0.9, 0.2))
	width := s / 6
	if width < 1 {
		width = 1
	}
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: width}.Op())
}

// drawChevron strokes a downward chevron inside a square of the given side.
func drawChevron(ops *op.Ops, side int, col color.NRGBA) {
	s := float32(side)
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(s*0.2, s*0.35))
	p.LineTo(f32.Pt(s*0.5, s*0.65))
	p.LineTo(f32.Pt(s*0.8, s*0.35))
	width := s / 8
	if width < 1 {
		width = 1
	}
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: width}.Op())
}

// textMaterial records a paint operation for text.
func textMaterial(ops *op.Ops, col color.NRGBA) op.CallOp {
	m := op.Record(ops)
	paint.ColorOp{Color: col}.Add(ops)
	return m.Stop()
}
