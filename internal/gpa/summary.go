package gpa

import (
	"math"

	"github.com/selim/gradepoint/internal/app/models"
)

// DefaultCreditsPerYear is the assumed study pace used for the
// projected completion year. It is a cosmetic projection, overridable
// through configuration.
const DefaultCreditsPerYear = 15

// Summary is the aggregate view over a session's ledger. It is
// recomputed on read rather than cached, so it can never go stale
// relative to ledger edits.
type Summary struct {
	// CumulativeGPA is the credit-weighted average over every graded
	// entry in every semester, rounded to two decimals.
	CumulativeGPA float64 `json:"cumulativeGpa"`
	// CurrentSemesterGPA is the same computation restricted to the
	// most recently added semester.
	CurrentSemesterGPA float64 `json:"currentSemesterGpa"`
	// CreditsEarned is the credit sum over graded entries.
	CreditsEarned int `json:"creditsEarned"`
	// CompletedCourses is the count of graded entries.
	CompletedCourses int `json:"completedCourses"`
	// RemainingCredits and ProjectedCompletionYear are present only
	// when the session has a selected program with a known required
	// credit total.
	RemainingCredits        *int `json:"remainingCredits,omitempty"`
	ProjectedCompletionYear *int `json:"projectedCompletionYear,omitempty"`
}

// Summarize reduces the ledger into a Summary. Entries whose grade is
// empty or not on the scale are excluded from every figure.
func Summarize(semesters []models.Semester) Summary {
	var summary Summary

	var totalPoints float64
	var totalCredits int
	for _, semester := range semesters {
		points, credits, count := reduceSemester(semester)
		totalPoints += points
		totalCredits += credits
		summary.CompletedCourses += count
	}

	summary.CumulativeGPA = Round2(safeDivide(totalPoints, totalCredits))
	summary.CreditsEarned = totalCredits

	if len(semesters) > 0 {
		last := semesters[len(semesters)-1]
		points, credits, _ := reduceSemester(last)
		summary.CurrentSemesterGPA = Round2(safeDivide(points, credits))
	}

	return summary
}

// WithProgram fills in the remaining-credits estimate and the
// projected completion year for the given program. currentYear is
// passed in so the projection is reproducible in tests.
func (s Summary) WithProgram(program *models.Program, creditsPerYear, currentYear int) Summary {
	if program == nil || program.RequiredCreditHours <= 0 {
		return s
	}
	if creditsPerYear <= 0 {
		creditsPerYear = DefaultCreditsPerYear
	}

	remaining := program.RequiredCreditHours - s.CreditsEarned
	if remaining < 0 {
		remaining = 0
	}
	s.RemainingCredits = &remaining

	yearsLeft := (remaining + creditsPerYear - 1) / creditsPerYear
	year := currentYear + yearsLeft
	s.ProjectedCompletionYear = &year

	return s
}

// reduceSemester sums grade points and credits over the semester's
// recognized-graded entries.
func reduceSemester(semester models.Semester) (points float64, credits, count int) {
	for _, entry := range semester.Courses {
		gradePoints, ok := GradePoint(entry.Grade)
		if !ok {
			continue
		}
		points += gradePoints * float64(entry.Credits)
		credits += entry.Credits
		count++
	}
	return points, credits, count
}

func safeDivide(points float64, credits int) float64 {
	if credits == 0 {
		return 0
	}
	return points / float64(credits)
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
