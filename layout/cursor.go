package layout

import "github.com/tsawler/labsheet/model"

// Cursor is the mutable drawing position for one page under construction.
// X grows rightward and Y grows downward from the page's top-left corner;
// the cursor always points at the upper-left anchor of the next box. Each
// page gets a fresh cursor, threaded through every box placed on it, and
// the cursor is discarded once the page image is finalized.
type Cursor struct {
	X, Y model.Length
}

// NewCursor returns a cursor at the top-left corner of the content area.
func NewCursor(ctx Context) *Cursor {
	return &Cursor{X: ctx.Margin, Y: ctx.Margin}
}

// Advance moves the cursor right by w, typically the consumed width
// reported by a box placement.
func (c *Cursor) Advance(w model.Length) {
	c.X = c.X.Add(w)
}

// Down moves the cursor down by h. Rows call this once after all their
// columns are placed.
func (c *Cursor) Down(h model.Length) {
	c.Y = c.Y.Add(h)
}

// ResetX returns the cursor to the left edge of the content area, the
// starting x of every row.
func (c *Cursor) ResetX(ctx Context) {
	c.X = ctx.Margin
}
