package xlsx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{3, "D"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}
	for _, tt := range tests {
		if got := columnName(tt.index); got != tt.want {
			t.Errorf("columnName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestEmptyWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWorkbook().Write(&buf); err == nil {
		t.Error("Expected an error writing a workbook with no sheets")
	}
}

func readPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Opening %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("Reading %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("Part %s not found in archive", name)
	return ""
}

func TestWriteWorkbook(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("summary", [][]string{
		{"Lab 3", "Check if complete"},
		{"Section 12"},
	})
	wb.AddSheet("section 12", [][]string{
		{"Signature", "Late", "Group", "Student"},
		{"", "", "1", "John Smith"},
	})

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Output is not a valid ZIP archive: %v", err)
	}

	workbook := readPart(t, zr, "xl/workbook.xml")
	if !strings.Contains(workbook, `name="summary"`) || !strings.Contains(workbook, `name="section 12"`) {
		t.Errorf("Workbook part missing sheet entries: %s", workbook)
	}

	sheet2 := readPart(t, zr, "xl/worksheets/sheet2.xml")
	if !strings.Contains(sheet2, ">John Smith</t>") {
		t.Errorf("Worksheet missing inline string cell: %s", sheet2)
	}
	if strings.Contains(sheet2, `r="A2"`) {
		t.Error("Empty cells should not be emitted")
	}
	if !strings.Contains(sheet2, `r="C2"`) {
		t.Error("Expected group number in cell C2")
	}

	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "xl/_rels/workbook.xml.rels"} {
		readPart(t, zr, part)
	}
}

func TestCellEscaping(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("s", [][]string{{`O'Brien, "Conn" <x&y>`}})

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	sheet := readPart(t, zr, "xl/worksheets/sheet1.xml")
	if strings.Contains(sheet, "<x&y>") {
		t.Error("Cell content was not XML-escaped")
	}
	if !strings.Contains(sheet, "&lt;x&amp;y&gt;") {
		t.Errorf("Expected escaped content, got %s", sheet)
	}
}
