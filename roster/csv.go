package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Warning reports a CSV row that was dropped from the roster. Dropped rows
// are not errors: generation proceeds without them, and callers decide
// whether to surface the count.
type Warning struct {
	Row     int // 1-based record number within the file
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}

// preambleRows is how many records after the header a Canvas export spends
// on non-student bookkeeping ("Points Possible" and the muted-assignment
// row). They are skipped without a warning.
const preambleRows = 2

// sectionPattern matches real Canvas section strings, which end with the
// bracketed SIS identifier, e.g. "PHYS 1AL Lab 012 [34567]".
var sectionPattern = regexp.MustCompile(`\[\d+\]$`)

// Sections maps section numbers to the students enrolled in them, in file
// order.
type Sections map[int][]StudentName

// Numbers returns the section numbers present, unordered.
func (s Sections) Numbers() []int {
	nums := make([]int, 0, len(s))
	for n := range s {
		nums = append(nums, n)
	}
	return nums
}

// ParseCSV reads a Canvas-exported roster. The header row must contain
// Student and Section columns; that failing is fatal, since it means the
// file is not a roster export at all. Individual rows missing a parseable
// name or section are dropped and reported as warnings.
func ParseCSV(r io.Reader) (Sections, []Warning, error) {
	// Canvas exports open with a UTF-8 byte order mark.
	decoded := transform.NewReader(r, unicode.UTF8BOM.NewDecoder())

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("roster: reading CSV header: %w", err)
	}

	studentCol, sectionCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Student":
			studentCol = i
		case "Section":
			sectionCol = i
		}
	}
	if studentCol < 0 || sectionCol < 0 {
		return nil, nil, fmt.Errorf("roster: CSV header has no Student/Section columns")
	}

	sections := make(Sections)
	var warnings []Warning
	row := 1 // the header was record 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("roster: reading CSV: %w", err)
		}
		row++
		if row-1 <= preambleRows {
			continue
		}

		if studentCol >= len(record) || sectionCol >= len(record) {
			warnings = append(warnings, Warning{Row: row, Message: "too few fields"})
			continue
		}

		name := strings.TrimSpace(record[studentCol])
		if name == "" {
			warnings = append(warnings, Warning{Row: row, Message: "empty student name"})
			continue
		}

		section, ok := sectionNumber(record[sectionCol])
		if !ok {
			warnings = append(warnings, Warning{
				Row:     row,
				Message: fmt.Sprintf("unparseable section %q", record[sectionCol]),
			})
			continue
		}

		sections[section] = append(sections[section], ParseName(name))
	}

	return sections, warnings, nil
}

// sectionNumber extracts the section number from a Canvas section string.
// The number is the second-to-last whitespace-separated token, right
// before the bracketed SIS id.
func sectionNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !sectionPattern.MatchString(s) {
		return 0, false
	}
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil {
		return 0, false
	}
	return n, true
}
