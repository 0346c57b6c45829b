package labsheet

import (
	"fmt"
	"io"

	"github.com/tsawler/labsheet/xlsx"
)

// Attendance sheet instructions, shown above each section's table.
const (
	signatureInstruction = `Under the "Signature" column, leave blank if present, enter "Absent" if absent, describe circumstances if student left soon after quiz`
	lateInstruction      = `Under the "Late" column, enter the amount of time if they are late`
)

// WriteAttendance is a terminal operation writing the summary attendance
// workbook: a summary sheet listing every section, then one sheet per
// section mirroring the printed roster's rows so TAs can transcribe
// attendance for data entry. It shares the parse (and therefore the group
// assignment) with WritePDF when called on the same Generator.
func (g *Generator) WriteAttendance(w io.Writer) ([]Warning, error) {
	if err := g.load(); err != nil {
		return nil, err
	}

	checkpoints := g.checkpoints
	if checkpoints == nil {
		checkpoints = DefaultCheckpoints
	}

	wb := xlsx.NewWorkbook()

	summary := [][]string{
		{""},
		{fmt.Sprintf("Lab %d", g.lab), "Check if complete"},
	}
	for _, r := range g.rosters {
		summary = append(summary, []string{fmt.Sprintf("Section %d", r.Section)})
	}
	wb.AddSheet("summary", summary)

	header := append([]string{"Signature", "Late", "Group", "Student"}, checkpoints...)
	header = append(header, "TA Check")

	for _, r := range g.rosters {
		rows := [][]string{
			{""},
			{signatureInstruction},
			{lateInstruction},
			{""},
			header,
		}
		for _, group := range r.GroupNumbers() {
			for _, student := range r.Groups[group] {
				rows = append(rows, []string{"", "", fmt.Sprintf("%d", group), student.Canonical()})
			}
		}
		wb.AddSheet(fmt.Sprintf("section %d", r.Section), rows)
	}

	if err := wb.Write(w); err != nil {
		return g.warnings, err
	}
	return g.warnings, nil
}
