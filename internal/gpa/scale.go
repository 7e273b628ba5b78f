// Package gpa implements the calculator core: the institutional grade
// scale, the semester/course ledger mutation rules, the catalog search
// filter and the grade-point-average aggregation. The package is pure;
// persistence and transport live in the service and repository layers.
package gpa

// gradeScale is the fixed institutional mapping from letter grade to
// grade points. It is not configurable at runtime.
var gradeScale = map[string]float64{
	"A":  4.0,
	"B+": 3.5,
	"B":  3.0,
	"C+": 2.5,
	"C":  2.0,
	"D":  1.5,
	"F":  0.0,
}

// gradeOrder lists the scale keys from best to worst, for display and
// validation messages.
var gradeOrder = []string{"A", "B+", "B", "C+", "C", "D", "F"}

// GradePoint returns the point value for a letter grade. The second
// return value reports whether the grade is part of the scale; entries
// with unrecognized or empty grades are excluded from GPA computation.
func GradePoint(grade string) (float64, bool) {
	points, ok := gradeScale[grade]
	return points, ok
}

// ValidGrade reports whether grade is a recognized scale key. The
// empty string is not a grade; it is the "ungraded" sentinel and is
// handled separately at the set-grade boundary.
func ValidGrade(grade string) bool {
	_, ok := gradeScale[grade]
	return ok
}

// GradeKeys returns the scale keys in display order.
func GradeKeys() []string {
	keys := make([]string, len(gradeOrder))
	copy(keys, gradeOrder)
	return keys
}
