package layout

import "github.com/tsawler/labsheet/model"

// Op is a single drawing operation on a page. Coordinates are in the
// renderer's space: origin at the page's bottom-left corner, y growing
// upward.
type Op interface {
	isOp()
}

// RectOp strokes a rectangle. X, Y name the lower-left corner. A filled-in
// Black stroke draws a visible border; a white zero-width stroke is the
// uniform no-border branch, emitted so downstream compositing never needs
// a conditional.
type RectOp struct {
	X, Y, W, H model.Length
	LineWidth  model.Length
	Black      bool
}

func (RectOp) isOp() {}

// TextOp draws a string with its baseline starting at (X, Y) using the
// named font family at the given size.
type TextOp struct {
	X, Y   model.Length
	Family string
	Size   model.Length
	Text   string
}

func (TextOp) isOp() {}

// Page is the accumulating vector image for one section's sheet. It is
// owned exclusively by the builder composing it and treated as immutable
// once handed to the renderer.
type Page struct {
	Width, Height model.Length

	ops []Op
}

// NewPage returns an empty page of the given canvas size.
func NewPage(w, h model.Length) *Page {
	return &Page{Width: w, Height: h}
}

// Blend appends drawing operations to the page image.
func (p *Page) Blend(ops ...Op) {
	p.ops = append(p.ops, ops...)
}

// Ops returns the page's drawing operations in emission order.
func (p *Page) Ops() []Op {
	return p.ops
}
