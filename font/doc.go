// Package font bundles the two embedded typeface weights used on generated
// sheets and reads glyph metrics out of their binary tables.
//
// The fonts are compiled into the binary with go:embed, so generated
// documents never depend on fonts installed on the host system. Metrics
// (advance widths, vertical extents) are obtained through
// golang.org/x/image/font/sfnt and scaled from font design units to
// physical lengths at the requested size.
//
// A decode failure on the embedded data is unrecoverable: the fonts are
// build-time assets, not user input, so corruption indicates a broken
// build rather than a condition worth handling.
package font
