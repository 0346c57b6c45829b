// Package render serializes finished page images to PDF bytes.
//
// The renderer is deliberately a black box to the rest of the system: it
// receives a list of pages (display lists of rectangle and text
// operations in bottom-left page coordinates), a canvas size carried by
// each page, and a callback resolving font-family tokens to raw font
// programs for embedding. Everything PDF-specific stays behind this
// package boundary.
package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/labsheet/layout"
)

// WritePDF renders pages into a single PDF document written to w. Fonts
// referenced by the pages are embedded as UTF-8 subsets using resolve; a
// family token resolve does not recognize means a glyph was requested for
// a font that was never embedded, and the write aborts without output.
func WritePDF(w io.Writer, pages []*layout.Page, resolve func(family string) ([]byte, error)) error {
	if len(pages) == 0 {
		return fmt.Errorf("render: no pages to write")
	}

	first := pages[0]
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size: fpdf.SizeType{
			Wd: first.Width.Millimeters(),
			Ht: first.Height.Millimeters(),
		},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)

	for _, family := range familiesUsed(pages) {
		data, err := resolve(family)
		if err != nil {
			return fmt.Errorf("render: embedding fonts: %w", err)
		}
		pdf.AddUTF8FontFromBytes(family, "", data)
	}

	for _, page := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{
			Wd: page.Width.Millimeters(),
			Ht: page.Height.Millimeters(),
		})
		height := page.Height.Millimeters()

		for _, op := range page.Ops() {
			switch op := op.(type) {
			case layout.RectOp:
				if op.Black {
					pdf.SetDrawColor(0, 0, 0)
				} else {
					pdf.SetDrawColor(255, 255, 255)
				}
				pdf.SetLineWidth(op.LineWidth.Millimeters())
				// Flip the lower-left anchor to fpdf's top-left origin.
				top := height - op.Y.Millimeters() - op.H.Millimeters()
				pdf.Rect(op.X.Millimeters(), top, op.W.Millimeters(), op.H.Millimeters(), "D")
			case layout.TextOp:
				pdf.SetFont(op.Family, "", op.Size.Points())
				pdf.SetTextColor(0, 0, 0)
				pdf.Text(op.X.Millimeters(), height-op.Y.Millimeters(), op.Text)
			default:
				return fmt.Errorf("render: unknown drawing op %T", op)
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return pdf.Output(w)
}

// familiesUsed collects the distinct family tokens referenced across all
// pages, in first-use order so font embedding is deterministic.
func familiesUsed(pages []*layout.Page) []string {
	seen := make(map[string]bool)
	var families []string
	for _, page := range pages {
		for _, op := range page.Ops() {
			if text, ok := op.(layout.TextOp); ok && !seen[text.Family] {
				seen[text.Family] = true
				families = append(families, text.Family)
			}
		}
	}
	return families
}
