package sheet

import (
	"bytes"
	"math"
	"testing"

	"github.com/tsawler/labsheet/layout"
	"github.com/tsawler/labsheet/model"
	"github.com/tsawler/labsheet/roster"
)

func testContext() layout.Context {
	ctx := layout.DefaultContext()
	ctx.Lab = 3
	ctx.Checkpoints = []string{"1", "2", "3"}
	return ctx
}

func names(raw ...string) []roster.StudentName {
	students := make([]roster.StudentName, len(raw))
	for i, s := range raw {
		students[i] = roster.ParseName(s)
	}
	return students
}

func textOps(page *layout.Page) []layout.TextOp {
	var ops []layout.TextOp
	for _, op := range page.Ops() {
		if text, ok := op.(layout.TextOp); ok {
			ops = append(ops, text)
		}
	}
	return ops
}

func TestColumnWidthsSumToContentWidth(t *testing.T) {
	ctx := testContext()
	cur := layout.NewCursor(ctx)
	page := layout.NewPage(ctx.PageWidth, ctx.PageHeight)

	widths, err := columnHeaderRow(ctx, cur, page)
	if err != nil {
		t.Fatal(err)
	}

	if want := 5 + len(ctx.Checkpoints); len(widths) != want {
		t.Fatalf("Expected %d columns, got %d", want, len(widths))
	}
	if widths[0] != signatureWidth {
		t.Errorf("Signature column should be fixed at 22mm, got %fmm", widths[0].Millimeters())
	}

	sum := model.Zero
	for _, w := range widths {
		sum = sum.Add(w)
	}
	if diff := sum.Sub(ctx.ContentWidth()).Points(); math.Abs(diff) > 1e-9 {
		t.Errorf("Column widths should sum exactly to the content width, off by %fpt", diff)
	}
}

func TestColumnHeaderLabels(t *testing.T) {
	ctx := testContext()
	cur := layout.NewCursor(ctx)
	page := layout.NewPage(ctx.PageWidth, ctx.PageHeight)

	if _, err := columnHeaderRow(ctx, cur, page); err != nil {
		t.Fatal(err)
	}

	want := []string{"Signature", "Late", "Group", "Student", "1", "2", "3", "TA Check"}
	texts := textOps(page)
	if len(texts) != len(want) {
		t.Fatalf("Expected %d header labels, got %d", len(want), len(texts))
	}
	for i, text := range texts {
		if text.Text != want[i] {
			t.Errorf("Column %d: expected label %q, got %q", i, want[i], text.Text)
		}
	}
}

func TestColumnHeaderRowAdvancesCursor(t *testing.T) {
	ctx := testContext()
	cur := layout.NewCursor(ctx)
	page := layout.NewPage(ctx.PageWidth, ctx.PageHeight)

	startY := cur.Y
	if _, err := columnHeaderRow(ctx, cur, page); err != nil {
		t.Fatal(err)
	}

	if cur.X != ctx.Margin {
		t.Errorf("Cursor x should be back at the row start, got %fmm", cur.X.Millimeters())
	}
	if !startY.Less(cur.Y) {
		t.Error("Cursor y should have advanced by the row height")
	}
}

func TestGroupSpanDrawnOnce(t *testing.T) {
	ctx := testContext()
	headerCur := layout.NewCursor(ctx)
	headerPage := layout.NewPage(ctx.PageWidth, ctx.PageHeight)
	widths, err := columnHeaderRow(ctx, headerCur, headerPage)
	if err != nil {
		t.Fatal(err)
	}

	rowH, err := layout.AutoHeight(ctx)
	if err != nil {
		t.Fatal(err)
	}

	cur := layout.NewCursor(ctx)
	page := layout.NewPage(ctx.PageWidth, ctx.PageHeight)
	students := names("Smith, John", "Doe, Jane", "Roe, Richard", "Poe, Edgar")

	startY := cur.Y
	if err := groupRows(ctx, cur, page, widths, rowH, 2, students); err != nil {
		t.Fatal(err)
	}

	// The group-number cell appears exactly once, at four times the row
	// height.
	spanHeight := rowH.Mul(4)
	groupTexts, spanRects := 0, 0
	for _, op := range page.Ops() {
		switch op := op.(type) {
		case layout.TextOp:
			if op.Text == "2" {
				groupTexts++
			}
		case layout.RectOp:
			if math.Abs(op.H.Sub(spanHeight).Points()) < 1e-9 {
				spanRects++
			}
		}
	}
	if groupTexts != 1 {
		t.Errorf("Group number should be drawn exactly once, got %d", groupTexts)
	}
	if spanRects != 1 {
		t.Errorf("Expected exactly one spanning cell rect, got %d", spanRects)
	}

	// One row per student, names in input order and canonical form.
	want := []string{"2", "John Smith", "Jane Doe", "Richard Roe", "Edgar Poe"}
	var got []string
	for _, text := range textOps(page) {
		got = append(got, text.Text)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d text ops, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Text %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	// Cursor dropped one row height per student and returned to row start.
	if diff := cur.Y.Sub(startY).Sub(rowH.Mul(4)).Points(); math.Abs(diff) > 1e-9 {
		t.Errorf("Cursor should advance 4 row heights, off by %fpt", diff)
	}
	if cur.X != ctx.Margin {
		t.Errorf("Cursor x should be back at the row start, got %fmm", cur.X.Millimeters())
	}
}

func TestEmptyGroupIsNoOp(t *testing.T) {
	ctx := testContext()
	rowH, err := layout.AutoHeight(ctx)
	if err != nil {
		t.Fatal(err)
	}

	cur := layout.NewCursor(ctx)
	page := layout.NewPage(ctx.PageWidth, ctx.PageHeight)
	widths := []model.Length{signatureWidth, signatureWidth, signatureWidth, signatureWidth, signatureWidth}

	before := *cur
	if err := groupRows(ctx, cur, page, widths, rowH, 1, nil); err != nil {
		t.Fatal(err)
	}

	if len(page.Ops()) != 0 {
		t.Errorf("Empty group should contribute no ops, got %d", len(page.Ops()))
	}
	if *cur != before {
		t.Error("Empty group should leave the cursor unchanged")
	}
}

func TestBuildPageEmptyRoster(t *testing.T) {
	ctx := testContext()
	r := &roster.Roster{Section: 9, Groups: map[int][]roster.StudentName{}}

	page, err := BuildPage(ctx, r)
	if err != nil {
		t.Fatal(err)
	}

	// Header rows and closing border only: "Lab 3", "Section 9", "Date:"
	// plus the eight column headers, and no student rows.
	texts := textOps(page)
	if want := 3 + 8; len(texts) != want {
		t.Errorf("Expected %d text ops on an empty-roster page, got %d", want, len(texts))
	}
	if texts[0].Text != "Lab 3" || texts[1].Text != "Section 9" || texts[2].Text != "Date:" {
		t.Errorf("Unexpected page header texts: %q %q %q", texts[0].Text, texts[1].Text, texts[2].Text)
	}
}

func TestBuildPageClosingBorderReachesBottomMargin(t *testing.T) {
	ctx := testContext()
	r := &roster.Roster{
		Section: 12,
		Groups: map[int][]roster.StudentName{
			1: names("Smith, John", "Doe, Jane"),
		},
	}

	page, err := BuildPage(ctx, r)
	if err != nil {
		t.Fatal(err)
	}

	ops := page.Ops()
	last, ok := ops[len(ops)-1].(layout.RectOp)
	if !ok {
		t.Fatalf("Expected the closing border rect last, got %T", ops[len(ops)-1])
	}
	if !last.Black || last.LineWidth != ctx.OuterBorder {
		t.Error("Closing border should use the outer border tier")
	}
	if diff := last.Y.Sub(ctx.Margin).Points(); math.Abs(diff) > 1e-9 {
		t.Errorf("Closing border should rest on the bottom margin, off by %fpt", diff)
	}
}

func TestDocumentWritePDF(t *testing.T) {
	ctx := testContext()
	doc := NewDocument(ctx)

	for section := 11; section <= 13; section++ {
		r := &roster.Roster{
			Section: section,
			Groups: map[int][]roster.StudentName{
				1: names("Smith, John", "Doe, Jane", "Roe, Richard"),
				2: names("Poe, Edgar", "Woolf, Virginia"),
			},
		}
		if err := doc.AddRoster(r); err != nil {
			t.Fatal(err)
		}
	}

	if got := len(doc.Pages()); got != 3 {
		t.Fatalf("Expected 3 pages, got %d", got)
	}

	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("Output does not look like a PDF document")
	}
}
