package sheet

import (
	"fmt"
	"strconv"

	"github.com/tsawler/labsheet/font"
	"github.com/tsawler/labsheet/layout"
	"github.com/tsawler/labsheet/model"
	"github.com/tsawler/labsheet/roster"
)

// signatureWidth is the fixed width of the Signature column. Signatures
// need writing room no matter how short the header text is.
var signatureWidth = model.Millimeters(22)

// headerRow places the page-header row: lab number, section and a date
// blank, in three equal manually-sized cells with no borders. All three
// labels are bold; the bold context is a scoped copy, so the caller's
// regular weight survives.
func headerRow(ctx layout.Context, cur *layout.Cursor, page *layout.Page, section int) error {
	bold := ctx.WithWeight(font.Bold)

	h, err := layout.AutoHeight(bold)
	if err != nil {
		return err
	}

	third := bold.ContentWidth().Mul(1.0 / 3.0)
	cells := []layout.Box{
		{Placement: layout.Left, Width: layout.FixedWidth(third), Height: h, Text: fmt.Sprintf("Lab %d", bold.Lab)},
		{Placement: layout.Center, Width: layout.FixedWidth(third), Height: h, Text: fmt.Sprintf("Section %d", section)},
		{Placement: layout.Left, Width: layout.FixedWidth(third), Height: h, Text: "Date:"},
	}
	for _, cell := range cells {
		w, err := layout.PlaceBox(bold, cur, page, cell)
		if err != nil {
			return err
		}
		cur.Advance(w)
	}

	cur.ResetX(ctx)
	cur.Down(h)
	return nil
}

// columnHeaderRow places the grid's column headers and returns every
// resolved column width in order: Signature, Late, Group, Student, one
// per checkpoint, TA Check. The row is framed first by a single
// full-width box in the outer border tier; the individual cells are then
// placed over the same vertical extent in the group tier. The Student
// column stretches to absorb exactly the width the other columns leave,
// so the returned widths always sum to the content width.
func columnHeaderRow(ctx layout.Context, cur *layout.Cursor, page *layout.Page) ([]model.Length, error) {
	bold := ctx.WithWeight(font.Bold)

	h, err := layout.AutoHeight(bold)
	if err != nil {
		return nil, err
	}

	// Enclosing frame. The cursor does not move: the header cells are
	// placed within this same row.
	if _, err := layout.PlaceBox(bold, cur, page, layout.Box{
		Width:  layout.FixedWidth(bold.ContentWidth()),
		Height: h,
		Border: bold.OuterBorder,
	}); err != nil {
		return nil, err
	}

	m, err := bold.Metrics()
	if err != nil {
		return nil, err
	}
	auto := func(label string) model.Length {
		return m.TextWidth(label).Add(model.Points(12))
	}

	labels := []string{"Signature", "Late", "Group", "Student"}
	labels = append(labels, bold.Checkpoints...)
	labels = append(labels, "TA Check")

	widths := make([]model.Length, len(labels))
	widths[0] = signatureWidth
	widths[1] = auto("Late")
	widths[2] = auto("Group")
	for i := 4; i < len(labels); i++ {
		widths[i] = auto(labels[i])
	}

	// The Student column takes the remainder, absorbing any rounding.
	student := bold.ContentWidth()
	for i, w := range widths {
		if i != 3 {
			student = student.Sub(w)
		}
	}
	widths[3] = student

	for i, label := range labels {
		w, err := layout.PlaceBox(bold, cur, page, layout.Box{
			Placement: layout.Center,
			Width:     layout.FixedWidth(widths[i]),
			Height:    h,
			Border:    bold.GroupBorder,
			Text:      label,
		})
		if err != nil {
			return nil, err
		}
		cur.Advance(w)
	}

	cur.ResetX(ctx)
	cur.Down(h)
	return widths, nil
}

// groupRows places one row per student of a group beneath the column
// headers. The group-number cell spans all of the group's rows: it is
// drawn once, on the first row, at N times the row height, and later rows
// reserve its width without drawing. A group with no students contributes
// nothing.
func groupRows(ctx layout.Context, cur *layout.Cursor, page *layout.Page,
	widths []model.Length, rowHeight model.Length, group int, students []roster.StudentName) error {

	n := len(students)
	if n == 0 {
		return nil
	}

	blank := func(w model.Length) layout.Box {
		return layout.Box{Width: layout.FixedWidth(w), Height: rowHeight, Border: ctx.GroupBorder}
	}

	for i, student := range students {
		// Signature and Late blanks.
		for _, cell := range []layout.Box{blank(widths[0]), blank(widths[1])} {
			w, err := layout.PlaceBox(ctx, cur, page, cell)
			if err != nil {
				return err
			}
			cur.Advance(w)
		}

		// Group number, spanning the whole block, drawn only once.
		if i == 0 {
			bold := ctx.WithWeight(font.Bold)
			w, err := layout.PlaceBox(bold, cur, page, layout.Box{
				Placement: layout.Center,
				Width:     layout.FixedWidth(widths[2]),
				Height:    rowHeight.Mul(float64(n)),
				Border:    ctx.GroupBorder,
				Text:      strconv.Itoa(group),
			})
			if err != nil {
				return err
			}
			cur.Advance(w)
		} else {
			cur.Advance(widths[2])
		}

		// Student name, then one blank per checkpoint and the TA Check blank.
		w, err := layout.PlaceBox(ctx, cur, page, layout.Box{
			Placement: layout.Left,
			Width:     layout.FixedWidth(widths[3]),
			Height:    rowHeight,
			Border:    ctx.GroupBorder,
			Text:      student.Canonical(),
		})
		if err != nil {
			return err
		}
		cur.Advance(w)

		for _, width := range widths[4:] {
			w, err := layout.PlaceBox(ctx, cur, page, blank(width))
			if err != nil {
				return err
			}
			cur.Advance(w)
		}

		cur.ResetX(ctx)
		cur.Down(rowHeight)
	}
	return nil
}

// closingBorder frames the rest of the grid with a single full-width box
// in the outer tier, from the cursor down to the bottom margin.
func closingBorder(ctx layout.Context, cur *layout.Cursor, page *layout.Page) error {
	remaining := ctx.PageHeight.Sub(ctx.Margin).Sub(cur.Y)
	if remaining.Less(model.Zero) || remaining.IsZero() {
		return nil
	}
	if _, err := layout.PlaceBox(ctx, cur, page, layout.Box{
		Width:  layout.FixedWidth(ctx.ContentWidth()),
		Height: remaining,
		Border: ctx.OuterBorder,
	}); err != nil {
		return err
	}
	cur.Down(remaining)
	return nil
}

// BuildPage lays out one section's complete sheet: page header, column
// headers, every group's rows in ascending group order, and the closing
// border. The cursor lives only for the duration of this call.
func BuildPage(ctx layout.Context, r *roster.Roster) (*layout.Page, error) {
	ctx.Section = r.Section

	page := layout.NewPage(ctx.PageWidth, ctx.PageHeight)
	cur := layout.NewCursor(ctx)

	if err := headerRow(ctx, cur, page, r.Section); err != nil {
		return nil, err
	}

	widths, err := columnHeaderRow(ctx, cur, page)
	if err != nil {
		return nil, err
	}

	rowHeight, err := layout.AutoHeight(ctx)
	if err != nil {
		return nil, err
	}

	for _, group := range r.GroupNumbers() {
		if err := groupRows(ctx, cur, page, widths, rowHeight, group, r.Groups[group]); err != nil {
			return nil, err
		}
	}

	if err := closingBorder(ctx, cur, page); err != nil {
		return nil, err
	}
	return page, nil
}
