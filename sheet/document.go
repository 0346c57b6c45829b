package sheet

import (
	"io"

	"github.com/tsawler/labsheet/font"
	"github.com/tsawler/labsheet/layout"
	"github.com/tsawler/labsheet/render"
	"github.com/tsawler/labsheet/roster"
)

// Document assembles one sheet page per section and hands the finished
// pages to the renderer. The layout context is fixed at construction and
// shared read-only by every page.
type Document struct {
	ctx   layout.Context
	pages []*layout.Page
}

// NewDocument creates an empty document that lays out pages with ctx.
func NewDocument(ctx layout.Context) *Document {
	return &Document{ctx: ctx}
}

// AddRoster builds and appends the sheet page for one section's roster.
func (d *Document) AddRoster(r *roster.Roster) error {
	page, err := BuildPage(d.ctx, r)
	if err != nil {
		return err
	}
	d.pages = append(d.pages, page)
	return nil
}

// Pages returns the assembled pages in the order they were added.
func (d *Document) Pages() []*layout.Page {
	return d.pages
}

// WritePDF serializes all assembled pages into one PDF. The renderer
// resolves family tokens back to the embedded font buffers through
// [font.Resolve]; an unresolvable token aborts the write.
func (d *Document) WritePDF(w io.Writer) error {
	return render.WritePDF(w, d.pages, font.Resolve)
}
