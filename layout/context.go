package layout

import (
	"github.com/tsawler/labsheet/font"
	"github.com/tsawler/labsheet/model"
)

// Context is the immutable environment available to every layout
// computation: page geometry, the two border tiers, the checkpoint column
// labels, the identifiers printed in the page header, and the current font
// spec. Contexts are passed by value and never mutated; a scoped change
// (such as drawing a header in bold) uses the copy returned by
// [Context.WithWeight] and discards it afterwards.
type Context struct {
	PageWidth  model.Length
	PageHeight model.Length
	Margin     model.Length

	// Border tiers: OuterBorder frames the grid, GroupBorder separates
	// cells within it.
	OuterBorder model.Length
	GroupBorder model.Length

	// Checkpoints are the configurable milestone column labels.
	Checkpoints []string

	Lab     int
	Section int

	Font font.Spec
}

// DefaultContext returns a context matching the standard sheet layout:
// US Letter pages, 0.85in margins, 2pt/1pt border tiers and an 11pt
// regular face.
func DefaultContext() Context {
	return Context{
		PageWidth:   model.Inches(8.5),
		PageHeight:  model.Inches(11),
		Margin:      model.Inches(0.85),
		OuterBorder: model.Points(2),
		GroupBorder: model.Points(1),
		Font:        font.Spec{Weight: font.Regular, Size: model.Points(11)},
	}
}

// WithWeight returns a copy of the context with the font weight replaced.
// The receiver is unchanged.
func (c Context) WithWeight(w font.Weight) Context {
	c.Font.Weight = w
	return c
}

// ContentWidth returns the usable width between the left and right margins.
func (c Context) ContentWidth() model.Length {
	return c.PageWidth.Sub(c.Margin.Mul(2))
}

// Metrics returns a metrics reader for the context's current font spec.
func (c Context) Metrics() (*font.Metrics, error) {
	return font.NewMetrics(c.Font)
}
