// Package model provides the geometric value types shared by the layout
// engine and the renderer.
//
// The central type is [Length], an opaque physical length backed by
// millimeters. All page dimensions, margins, border widths, font sizes and
// cursor positions are expressed as Lengths, so unit-confusion bugs are
// caught at compile time: a bare float64 never flows into a layout
// computation except through one of the explicit constructors.
//
//	w := model.Millimeters(22)
//	pad := model.Points(6)
//	total := w.Add(pad.Mul(2))
package model
