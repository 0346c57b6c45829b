package render

import (
	"bytes"
	"testing"

	"github.com/tsawler/labsheet/font"
	"github.com/tsawler/labsheet/layout"
	"github.com/tsawler/labsheet/model"
)

func testPage() *layout.Page {
	page := layout.NewPage(model.Inches(8.5), model.Inches(11))
	page.Blend(
		layout.RectOp{
			X: model.Millimeters(20), Y: model.Millimeters(20),
			W: model.Millimeters(100), H: model.Millimeters(50),
			LineWidth: model.Points(2), Black: true,
		},
		layout.TextOp{
			X: model.Millimeters(25), Y: model.Millimeters(40),
			Family: font.Regular.Family(), Size: model.Points(11),
			Text: "John Smith",
		},
	)
	return page
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, []*layout.Page{testPage()}, font.Resolve); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("Output does not start with a PDF header")
	}
}

func TestWritePDFNoPages(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, nil, font.Resolve); err == nil {
		t.Error("Expected an error writing a document with no pages")
	}
}

func TestWritePDFUnknownFamilyIsFatal(t *testing.T) {
	page := layout.NewPage(model.Inches(8.5), model.Inches(11))
	page.Blend(layout.TextOp{
		X: model.Millimeters(10), Y: model.Millimeters(10),
		Family: "NeverEmbedded", Size: model.Points(11), Text: "x",
	})

	var buf bytes.Buffer
	err := WritePDF(&buf, []*layout.Page{page}, font.Resolve)
	if err == nil {
		t.Fatal("Expected an error for an unknown family token")
	}
	if buf.Len() != 0 {
		t.Error("No partial output should be produced on a fatal error")
	}
}

func TestFamiliesUsedDeduplicatesInOrder(t *testing.T) {
	page := layout.NewPage(model.Inches(8.5), model.Inches(11))
	for _, family := range []string{"B", "A", "B", "A", "A"} {
		page.Blend(layout.TextOp{Family: family, Size: model.Points(11), Text: "x"})
	}

	got := familiesUsed([]*layout.Page{page})
	if len(got) != 2 || got[0] != "B" || got[1] != "A" {
		t.Errorf("Expected [B A], got %v", got)
	}
}
