// Package xlsx writes minimal XLSX (Office Open XML Spreadsheet) workbooks.
//
// The writer produces just enough of the OOXML package for the summary
// attendance workbook: a workbook part, one worksheet per sheet with
// inline strings, and the package plumbing (content types and
// relationships). No shared-string table, styles or formulas are emitted.
package xlsx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// XML namespaces used in XLSX files.
const (
	nsSpreadsheetML = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

const (
	relTypeWorksheet  = nsRelationships + "/worksheet"
	contentTypeSheet  = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	contentTypeWbPart = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
)

// Workbook accumulates sheets and serializes them as one XLSX package.
type Workbook struct {
	sheets []sheetData
}

type sheetData struct {
	name string
	rows [][]string
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{}
}

// AddSheet appends a sheet of string cells. Rows may have differing
// lengths; empty cells are simply not emitted.
func (w *Workbook) AddSheet(name string, rows [][]string) {
	w.sheets = append(w.sheets, sheetData{name: name, rows: rows})
}

// Write serializes the workbook to out. A workbook with no sheets is an
// error: Excel refuses to open an empty package.
func (w *Workbook) Write(out io.Writer) error {
	if len(w.sheets) == 0 {
		return fmt.Errorf("xlsx: workbook has no sheets")
	}

	zw := zip.NewWriter(out)

	parts := []struct {
		path string
		body []byte
	}{
		{"[Content_Types].xml", w.contentTypesXML()},
		{"_rels/.rels", packageRelsXML()},
		{"xl/workbook.xml", w.workbookXML()},
		{"xl/_rels/workbook.xml.rels", w.workbookRelsXML()},
	}
	for i, sheet := range w.sheets {
		parts = append(parts, struct {
			path string
			body []byte
		}{fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1), worksheetXML(sheet)})
	}

	for _, part := range parts {
		f, err := zw.Create(part.path)
		if err != nil {
			return fmt.Errorf("xlsx: creating %s: %w", part.path, err)
		}
		if _, err := f.Write(part.body); err != nil {
			return fmt.Errorf("xlsx: writing %s: %w", part.path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("xlsx: finalizing archive: %w", err)
	}
	return nil
}

func (w *Workbook) contentTypesXML() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<Types xmlns=%q>`, nsContentTypes)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	fmt.Fprintf(&b, `<Override PartName="/xl/workbook.xml" ContentType=%q/>`, contentTypeWbPart)
	for i := range w.sheets {
		fmt.Fprintf(&b, `<Override PartName="/xl/worksheets/sheet%d.xml" ContentType=%q/>`, i+1, contentTypeSheet)
	}
	b.WriteString(`</Types>`)
	return b.Bytes()
}

func packageRelsXML() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<Relationships xmlns=%q>`, nsPackageRels)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type=%q Target="xl/workbook.xml"/>`,
		nsRelationships+"/officeDocument")
	b.WriteString(`</Relationships>`)
	return b.Bytes()
}

func (w *Workbook) workbookXML() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<workbook xmlns=%q xmlns:r=%q><sheets>`, nsSpreadsheetML, nsRelationships)
	for i, sheet := range w.sheets {
		fmt.Fprintf(&b, `<sheet name="%s" sheetId="%d" r:id="rId%d"/>`,
			escape(sheet.name), i+1, i+1)
	}
	b.WriteString(`</sheets></workbook>`)
	return b.Bytes()
}

func (w *Workbook) workbookRelsXML() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<Relationships xmlns=%q>`, nsPackageRels)
	for i := range w.sheets {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type=%q Target="worksheets/sheet%d.xml"/>`,
			i+1, relTypeWorksheet, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.Bytes()
}

func worksheetXML(s sheetData) []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<worksheet xmlns=%q><sheetData>`, nsSpreadsheetML)
	for r, row := range s.rows {
		fmt.Fprintf(&b, `<row r="%d">`, r+1)
		for c, cell := range row {
			if cell == "" {
				continue
			}
			fmt.Fprintf(&b, `<c r="%s%d" t="inlineStr"><is><t xml:space="preserve">%s</t></is></c>`,
				columnName(c), r+1, escape(cell))
		}
		b.WriteString(`</row>`)
	}
	b.WriteString(`</sheetData></worksheet>`)
	return b.Bytes()
}

// columnName converts a zero-based column index to its A1-notation letters.
func columnName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}

// escape XML-escapes a cell or sheet-name value.
func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
