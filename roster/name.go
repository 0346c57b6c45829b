package roster

import "strings"

// StudentName is a student's name as it appeared in the roster export.
// Canvas exports names last-name first ("Smith, John"); the canonical
// display form used on printed sheets is first-name first.
type StudentName struct {
	raw   string
	first string
	last  string
}

// ParseName interprets a raw name string. A single comma splits the name
// into last and first parts; anything else is taken verbatim as an
// already first-name-first name.
func ParseName(s string) StudentName {
	parts := strings.Split(s, ",")
	if len(parts) == 2 {
		return StudentName{
			raw:   s,
			last:  strings.TrimSpace(parts[0]),
			first: strings.TrimSpace(parts[1]),
		}
	}
	return StudentName{raw: s}
}

// Canonical returns the first-name-first display form. Applying ParseName
// to a canonical form yields the same canonical form back, so the
// operation is idempotent.
func (n StudentName) Canonical() string {
	if n.first == "" && n.last == "" {
		return n.raw
	}
	return n.first + " " + n.last
}

// String returns the raw string the name was parsed from.
func (n StudentName) String() string {
	return n.raw
}
