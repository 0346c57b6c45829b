// Package roster reads Canvas-exported class rosters and partitions each
// section's students into randomized lab groups.
//
// The layout engine consumes only the finished product of this package: a
// [Roster] holding a section number and a group-number-to-students mapping.
// CSV rows that cannot yield a (name, section) pair are dropped from the
// roster and reported as warnings rather than errors, mirroring the fact
// that Canvas exports routinely carry preamble and test-student rows that
// are not real enrollments.
package roster
