// Package layout implements the box-layout engine for signature sheets.
//
// Layout threads two values through every step: an immutable [Context]
// (page size, margins, border tiers, checkpoint labels, current font spec)
// passed by value, and a mutable [Cursor] holding the anchor position of
// the next box. Because the Context travels by value, a temporary override
// such as switching to the bold weight is just a modified copy used for a
// nested computation; the caller's Context is never observably changed.
//
// [PlaceBox] is the core operation: it resolves a box's width (from glyph
// metrics or a fixed length), centers the text vertically with descent
// compensation, emits border and text operations onto the accumulating
// [Page], and reports the consumed width so the caller can advance the
// cursor. The cursor tracks positions from the page's top-left corner;
// operations are emitted in the renderer's bottom-left origin, so vertical
// coordinates are flipped exactly once, at emission.
package layout
