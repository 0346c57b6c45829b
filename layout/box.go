package layout

import "github.com/tsawler/labsheet/model"

// textPad is the horizontal padding on each side of a box's text. Auto
// widths add it twice; left-aligned text is inset by it.
var textPad = model.Points(6)

// Placement positions text horizontally within its box.
type Placement int

const (
	// Left insets the text by the standard padding from the box's left edge.
	Left Placement = iota
	// Center centers the text within a fixed-width box. In an auto-width
	// box it degenerates to Left, since the box is sized to fit exactly.
	Center
)

// WidthSpec is either an automatic width derived from the text's glyph
// metrics plus padding, or a fixed length used as-is. Fixed widths are
// never expanded to fit their text; overlong text may clip visually.
type WidthSpec struct {
	auto  bool
	fixed model.Length
}

// AutoWidth sizes the box to its text plus padding.
func AutoWidth() WidthSpec {
	return WidthSpec{auto: true}
}

// FixedWidth sizes the box to exactly w.
func FixedWidth(w model.Length) WidthSpec {
	return WidthSpec{fixed: w}
}

// IsAuto reports whether the width is derived from text metrics.
func (w WidthSpec) IsAuto() bool {
	return w.auto
}

// Box describes one rectangular region to place: its text placement,
// width spec, height (already multiplied for row-spanning cells), border
// width and text. A zero Border draws the invisible white branch instead
// of a black frame. Boxes are ephemeral; placing one immediately blends
// its drawing operations into the page.
type Box struct {
	Placement Placement
	Width     WidthSpec
	Height    model.Length
	Border    model.Length
	Text      string
}

// PlaceBox composes one box anchored at the cursor and blends it into the
// page. It resolves the actual width, positions the text so the glyph
// box (descenders included) is centered within the box height, strokes
// the border, and returns the consumed width. Horizontal cursor
// advancement is left to the caller; rows advance y once per row.
func PlaceBox(ctx Context, cur *Cursor, page *Page, box Box) (model.Length, error) {
	m, err := ctx.Metrics()
	if err != nil {
		return model.Zero, err
	}

	textWidth := m.TextWidth(box.Text)
	width := box.Width.fixed
	if box.Width.IsAuto() {
		width = textWidth.Add(textPad.Mul(2))
	}

	// Flip from top-left layout coordinates to the renderer's bottom-left
	// origin. The box's lower edge sits Height below the cursor.
	boxBottom := ctx.PageHeight.Sub(cur.Y.Add(box.Height))

	rect := RectOp{
		X: cur.X,
		Y: boxBottom,
		W: width,
		H: box.Height,
	}
	if !box.Border.IsZero() {
		rect.LineWidth = box.Border
		rect.Black = true
	}
	page.Blend(rect)

	if box.Text != "" {
		textX := cur.X.Add(textPad)
		if box.Placement == Center && !box.Width.IsAuto() {
			textX = cur.X.Add(width.Sub(textWidth).Mul(0.5))
		}
		// Center the glyph box vertically: lift the baseline half the slack
		// and compensate for the descender depth.
		baseline := boxBottom.
			Add(box.Height.Sub(m.TextHeight()).Mul(0.5)).
			Sub(m.YMin())
		page.Blend(TextOp{
			X:      textX,
			Y:      baseline,
			Family: ctx.Font.Weight.Family(),
			Size:   ctx.Font.Size,
			Text:   box.Text,
		})
	}

	return width, nil
}

// AutoHeight returns the standard single-row box height for the context's
// font: the font's full glyph-box height plus padding. All body rows share
// this height regardless of their content.
func AutoHeight(ctx Context) (model.Length, error) {
	m, err := ctx.Metrics()
	if err != nil {
		return model.Zero, err
	}
	return m.TextHeight().Add(textPad.Mul(2)), nil
}
