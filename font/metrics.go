package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/labsheet/model"
)

// Metrics reads text metrics for one font spec. Widths are accumulated
// glyph by glyph from the font's advance table; the vertical extent is a
// font-wide property read from the union of all glyph bounds. Every raw
// value is in font design units and is scaled by size/unitsPerEm on the
// way out.
//
// Metrics holds an sfnt work buffer and is not safe for concurrent use.
// Layout is single-threaded, so each page builder owns its own Metrics.
type Metrics struct {
	spec Spec
	font *sfnt.Font
	buf  sfnt.Buffer

	upm  float64 // font design units per em
	ymin float64 // font units, negative below the baseline
	ymax float64 // font units
}

// NewMetrics creates a metrics reader for the given spec. It fails only if
// the embedded font buffer cannot be decoded.
func NewMetrics(spec Spec) (*Metrics, error) {
	f, err := parsed(spec.Weight)
	if err != nil {
		return nil, err
	}

	m := &Metrics{spec: spec, font: f, upm: float64(f.UnitsPerEm())}

	// Asking for metrics at ppem = unitsPerEm/64 makes the raw 26.6
	// fixed-point results numerically equal to font design units.
	bounds, err := f.Bounds(&m.buf, m.unitPpem(), xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font: reading glyph bounds of %s: %w", spec.Weight, err)
	}
	// fixed.Rectangle26_6 has the Y axis growing downward; flip back to
	// font space where the descender is negative.
	m.ymax = -fixedToUnits(bounds.Min.Y)
	m.ymin = -fixedToUnits(bounds.Max.Y)

	return m, nil
}

// Spec returns the spec the metrics were created for.
func (m *Metrics) Spec() Spec {
	return m.spec
}

// TextWidth returns the summed advance width of the glyphs of s at the
// spec's size. Each distinct glyph is looked up once and multiplied by its
// occurrence count; this system uses no kerning, so the sum is exact.
func (m *Metrics) TextWidth(s string) model.Length {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}

	var units float64
	for r, n := range counts {
		units += m.glyphAdvance(r) * float64(n)
	}
	return m.scale(units)
}

// TextHeight returns the full vertical extent of the font's glyph box
// (ymax - ymin) at the spec's size. Height is a property of the font, not
// of any particular string, so short and tall strings share a box height.
func (m *Metrics) TextHeight() model.Length {
	return m.scale(m.ymax - m.ymin)
}

// YMin returns the lowest point of the font's glyph box relative to the
// baseline at the spec's size. It is negative for fonts with descenders
// and is used to shift baselines so descenders stay inside their box.
func (m *Metrics) YMin() model.Length {
	return m.scale(m.ymin)
}

// glyphAdvance returns the advance width of the glyph for r in font units.
// The embedded fonts cover every character callers are allowed to use; a
// metrics failure after a successful parse indicates corrupt font tables
// and is unrecoverable.
func (m *Metrics) glyphAdvance(r rune) float64 {
	idx, err := m.font.GlyphIndex(&m.buf, r)
	if err != nil {
		panic(fmt.Sprintf("font: glyph index for %q: %v", r, err))
	}
	adv, err := m.font.GlyphAdvance(&m.buf, idx, m.unitPpem(), xfont.HintingNone)
	if err != nil {
		panic(fmt.Sprintf("font: glyph advance for %q: %v", r, err))
	}
	return fixedToUnits(adv)
}

// scale converts font design units to a physical length at the spec size.
func (m *Metrics) scale(units float64) model.Length {
	return m.spec.Size.Mul(units / m.upm)
}

// unitPpem is the ppem at which raw fixed-point sfnt results equal font
// design units.
func (m *Metrics) unitPpem() fixed.Int26_6 {
	return fixed.Int26_6(m.font.UnitsPerEm())
}

func fixedToUnits(v fixed.Int26_6) float64 {
	return float64(v)
}
