package font

import (
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/image/font/sfnt"

	"github.com/tsawler/labsheet/model"
)

//go:embed fonts/DejaVuSans.ttf
var regularTTF []byte

//go:embed fonts/DejaVuSans-Bold.ttf
var boldTTF []byte

// Weight selects one of the two embedded typeface weights.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Family returns the family token for the weight. The token names glyphs
// on emitted pages and is resolved back to the embedded byte buffer by
// [Resolve] when the renderer embeds the font program.
func (w Weight) Family() string {
	switch w {
	case Regular:
		return "DejaVuSans"
	case Bold:
		return "DejaVuSans-Bold"
	}
	panic(fmt.Sprintf("font: unknown weight %d", int(w)))
}

// String returns a human-readable name for the weight.
func (w Weight) String() string {
	switch w {
	case Regular:
		return "Regular"
	case Bold:
		return "Bold"
	}
	return fmt.Sprintf("Weight(%d)", int(w))
}

// Bytes returns the raw embedded font program for the weight.
func (w Weight) Bytes() []byte {
	switch w {
	case Regular:
		return regularTTF
	case Bold:
		return boldTTF
	}
	panic(fmt.Sprintf("font: unknown weight %d", int(w)))
}

// Resolve maps a family token back to the embedded font program it names.
// An unknown token is an internal inconsistency (a glyph was emitted for a
// font that was never embedded) and is reported as an error so the run can
// abort without producing a partial document.
func Resolve(family string) ([]byte, error) {
	for _, w := range []Weight{Regular, Bold} {
		if w.Family() == family {
			return w.Bytes(), nil
		}
	}
	return nil, fmt.Errorf("font: no embedded font for family %q", family)
}

// Spec pairs a weight with a size. Together they determine every text
// metric the layout engine needs.
type Spec struct {
	Weight Weight
	Size   model.Length
}

var parsedFonts [2]struct {
	once sync.Once
	font *sfnt.Font
	err  error
}

// parsed returns the parsed sfnt for the weight, decoding the embedded
// buffer on first use.
func parsed(w Weight) (*sfnt.Font, error) {
	if w != Regular && w != Bold {
		panic(fmt.Sprintf("font: unknown weight %d", int(w)))
	}
	p := &parsedFonts[w]
	p.once.Do(func() {
		f, err := sfnt.Parse(w.Bytes())
		if err != nil {
			p.err = fmt.Errorf("font: decoding embedded %s font: %w", w, err)
			return
		}
		p.font = f
	})
	return p.font, p.err
}
