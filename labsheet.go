// Package labsheet generates printable lab signature sheets from
// Canvas-exported class rosters.
//
// Basic usage:
//
//	warnings, err := labsheet.FromCSV("export.csv").
//	    Lab(3).
//	    Checkpoints("1", "2", "3").
//	    WritePDF(out)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Dropped rows:", labsheet.FormatWarnings(warnings))
//	}
//
// Each configuration method returns a new Generator, so partially
// configured generators can be shared and extended safely. The first
// terminal operation parses the roster and fixes the random group
// assignment; later terminal operations on the same Generator reuse it,
// so the PDF and the attendance workbook always agree on the groups.
//
// For advanced use cases the lower-level layout, sheet and roster
// packages are also available.
package labsheet

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tsawler/labsheet/layout"
	"github.com/tsawler/labsheet/model"
	"github.com/tsawler/labsheet/roster"
	"github.com/tsawler/labsheet/sheet"
)

// Warning reports a non-fatal condition encountered while reading the
// roster, typically a dropped CSV row.
type Warning = roster.Warning

// DefaultCheckpoints is used when neither the caller nor the
// configuration file provides checkpoint labels.
var DefaultCheckpoints = []string{"1", "2", "3", "4"}

// Generator provides a fluent interface for roster sheet generation.
type Generator struct {
	// Source: a file path or an already-open reader.
	path   string
	source io.Reader

	lab         int
	checkpoints []string
	seed        int64
	seeded      bool
	ctx         layout.Context

	// Parse results, cached by the first terminal operation so every
	// output sees the same group assignment.
	rosters  []*roster.Roster
	warnings []Warning
	loaded   bool

	// Accumulated error (fail-fast).
	err error
}

// FromCSV creates a Generator reading the Canvas roster export at path.
func FromCSV(path string) *Generator {
	return &Generator{path: path, ctx: layout.DefaultContext()}
}

// FromReader creates a Generator reading an already-open roster export.
// The reader is consumed by the first terminal operation.
func FromReader(r io.Reader) *Generator {
	return &Generator{source: r, ctx: layout.DefaultContext()}
}

// clone returns a copy with the parse cache dropped, so a reconfigured
// generator re-reads its source.
func (g *Generator) clone() *Generator {
	newGen := &Generator{
		path:   g.path,
		source: g.source,
		lab:    g.lab,
		seed:   g.seed,
		seeded: g.seeded,
		ctx:    g.ctx,
		err:    g.err,
	}
	if g.checkpoints != nil {
		newGen.checkpoints = append([]string(nil), g.checkpoints...)
	}
	return newGen
}

// Lab sets the lab number printed in each page header.
func (g *Generator) Lab(n int) *Generator {
	newGen := g.clone()
	newGen.lab = n
	return newGen
}

// Checkpoints sets the milestone column labels. Without it,
// DefaultCheckpoints is used.
func (g *Generator) Checkpoints(labels ...string) *Generator {
	newGen := g.clone()
	newGen.checkpoints = append([]string(nil), labels...)
	return newGen
}

// Seed fixes the random seed for group assignment, making output
// reproducible. Without it each run shuffles differently.
func (g *Generator) Seed(seed int64) *Generator {
	newGen := g.clone()
	newGen.seed = seed
	newGen.seeded = true
	return newGen
}

// Margin overrides the default page margin.
func (g *Generator) Margin(m model.Length) *Generator {
	newGen := g.clone()
	newGen.ctx.Margin = m
	return newGen
}

// PageSize overrides the default US Letter page size.
func (g *Generator) PageSize(w, h model.Length) *Generator {
	newGen := g.clone()
	newGen.ctx.PageWidth = w
	newGen.ctx.PageHeight = h
	return newGen
}

// load parses the roster source and assigns groups, once per Generator.
func (g *Generator) load() error {
	if g.err != nil {
		return g.err
	}
	if g.loaded {
		return nil
	}

	src := g.source
	if src == nil {
		f, err := os.Open(g.path)
		if err != nil {
			return fmt.Errorf("labsheet: %w", err)
		}
		defer f.Close()
		src = f
	}

	sections, warnings, err := roster.ParseCSV(src)
	if err != nil {
		return err
	}

	seed := g.seed
	if !g.seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	numbers := sections.Numbers()
	sort.Ints(numbers)
	for _, n := range numbers {
		g.rosters = append(g.rosters, roster.NewRoster(n, sections[n], rng))
	}

	g.warnings = warnings
	g.loaded = true
	return nil
}

// layoutContext returns the context used for every page.
func (g *Generator) layoutContext() layout.Context {
	ctx := g.ctx
	ctx.Lab = g.lab
	ctx.Checkpoints = g.checkpoints
	if ctx.Checkpoints == nil {
		ctx.Checkpoints = DefaultCheckpoints
	}
	return ctx
}

// Rosters is a terminal operation returning the grouped roster of every
// section in ascending section order, plus warnings for dropped rows.
func (g *Generator) Rosters() ([]*roster.Roster, []Warning, error) {
	if err := g.load(); err != nil {
		return nil, nil, err
	}
	return g.rosters, g.warnings, nil
}

// WritePDF is a terminal operation: it lays out one sheet page per
// section and writes the finished PDF to w.
func (g *Generator) WritePDF(w io.Writer) ([]Warning, error) {
	if err := g.load(); err != nil {
		return nil, err
	}

	doc := sheet.NewDocument(g.layoutContext())
	for _, r := range g.rosters {
		if err := doc.AddRoster(r); err != nil {
			return g.warnings, err
		}
	}
	if err := doc.WritePDF(w); err != nil {
		return g.warnings, err
	}
	return g.warnings, nil
}

// PDF is a terminal operation returning the document bytes.
func (g *Generator) PDF() ([]byte, []Warning, error) {
	var buf bytes.Buffer
	warnings, err := g.WritePDF(&buf)
	if err != nil {
		return nil, warnings, err
	}
	return buf.Bytes(), warnings, nil
}

// Must is a helper that wraps a call returning (T, []Warning, error) and
// panics on error, discarding warnings. It is intended for scripts and
// tests where error handling would be cumbersome.
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
