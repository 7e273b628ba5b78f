package gpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/gradepoint/internal/app/models"
)

func semester(id string, courses ...models.CourseEntry) models.Semester {
	return models.Semester{ID: id, Name: id, Courses: courses}
}

func entry(code string, credits int, grade string) models.CourseEntry {
	return models.CourseEntry{Code: code, Name: code, Credits: credits, Grade: grade}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.CumulativeGPA)
	assert.Zero(t, summary.CurrentSemesterGPA)
	assert.Zero(t, summary.CreditsEarned)
	assert.Zero(t, summary.CompletedCourses)
	assert.Nil(t, summary.RemainingCredits)
}

func TestSummarize_SingleSemester(t *testing.T) {
	// (8*4.0 + 4*3.0) / 12 = 44/12 = 3.666... -> 3.67
	semesters := []models.Semester{
		semester("s1", entry("M110", 8, "A"), entry("MS102", 4, "B")),
	}

	summary := Summarize(semesters)

	assert.Equal(t, 3.67, summary.CumulativeGPA)
	assert.Equal(t, 3.67, summary.CurrentSemesterGPA)
	assert.Equal(t, 12, summary.CreditsEarned)
	assert.Equal(t, 2, summary.CompletedCourses)
}

func TestSummarize_TwoSemesters(t *testing.T) {
	// Cumulative: (44 + 4*2.5) / 16 = 54/16 = 3.375 -> 3.38
	// Current (last appended): 2.5
	semesters := []models.Semester{
		semester("s1", entry("M110", 8, "A"), entry("MS102", 4, "B")),
		semester("s2", entry("EL112", 4, "C+")),
	}

	summary := Summarize(semesters)

	assert.Equal(t, 3.38, summary.CumulativeGPA)
	assert.Equal(t, 2.5, summary.CurrentSemesterGPA)
	assert.Equal(t, 16, summary.CreditsEarned)
	assert.Equal(t, 3, summary.CompletedCourses)
}

func TestSummarize_IgnoresUngradedAndUnrecognized(t *testing.T) {
	semesters := []models.Semester{
		semester("s1",
			entry("M110", 8, "A"),
			entry("MS102", 4, ""),        // not graded yet
			entry("EL112", 4, "PASSED"),  // not on the scale
		),
	}

	summary := Summarize(semesters)

	assert.Equal(t, 4.0, summary.CumulativeGPA)
	assert.Equal(t, 8, summary.CreditsEarned)
	assert.Equal(t, 1, summary.CompletedCourses)
}

func TestSummarize_AllUngraded(t *testing.T) {
	semesters := []models.Semester{
		semester("s1", entry("M110", 8, ""), entry("MS102", 4, "")),
	}

	summary := Summarize(semesters)

	assert.Zero(t, summary.CumulativeGPA)
	assert.Zero(t, summary.CurrentSemesterGPA)
}

func TestSummarize_CumulativeOrderInvariant(t *testing.T) {
	first := semester("s1", entry("M110", 8, "A"), entry("MS102", 4, "B"))
	second := semester("s2", entry("EL112", 4, "C+"))

	forward := Summarize([]models.Semester{first, second})
	reversed := Summarize([]models.Semester{second, first})

	assert.Equal(t, forward.CumulativeGPA, reversed.CumulativeGPA)
	assert.Equal(t, forward.CreditsEarned, reversed.CreditsEarned)

	// The current-semester figure tracks the last appended semester, so
	// it is NOT order invariant.
	assert.Equal(t, 2.5, forward.CurrentSemesterGPA)
	assert.Equal(t, 3.67, reversed.CurrentSemesterGPA)
}

func TestSummarize_BoundedByScale(t *testing.T) {
	tests := []struct {
		name      string
		semesters []models.Semester
	}{
		{name: "all A", semesters: []models.Semester{semester("s1", entry("M110", 8, "A"))}},
		{name: "all F", semesters: []models.Semester{semester("s1", entry("M110", 8, "F"))}},
		{name: "mixed", semesters: []models.Semester{
			semester("s1", entry("M110", 8, "A"), entry("MS102", 4, "D")),
			semester("s2", entry("EL112", 4, "F"), entry("TM103", 8, "B+")),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.semesters)
			assert.GreaterOrEqual(t, summary.CumulativeGPA, 0.0)
			assert.LessOrEqual(t, summary.CumulativeGPA, 4.0)
		})
	}
}

func TestWithProgram(t *testing.T) {
	semesters := []models.Semester{
		semester("s1", entry("M110", 8, "A"), entry("MS102", 4, "B")),
	}
	program := &models.Program{Code: "itc-bsc", RequiredCreditHours: 131}

	summary := Summarize(semesters).WithProgram(program, 15, 2026)

	require.NotNil(t, summary.RemainingCredits)
	assert.Equal(t, 119, *summary.RemainingCredits)
	// ceil(119/15) = 8 years
	require.NotNil(t, summary.ProjectedCompletionYear)
	assert.Equal(t, 2034, *summary.ProjectedCompletionYear)
}

func TestWithProgram_EarnedExceedsRequired(t *testing.T) {
	semesters := []models.Semester{
		semester("s1", entry("M110", 8, "A")),
	}
	program := &models.Program{Code: "short", RequiredCreditHours: 6}

	summary := Summarize(semesters).WithProgram(program, 15, 2026)

	require.NotNil(t, summary.RemainingCredits)
	assert.Zero(t, *summary.RemainingCredits, "remaining credits clamp at zero")
	assert.Equal(t, 2026, *summary.ProjectedCompletionYear)
}

func TestWithProgram_NoProgram(t *testing.T) {
	summary := Summarize(nil).WithProgram(nil, 15, 2026)
	assert.Nil(t, summary.RemainingCredits)
	assert.Nil(t, summary.ProjectedCompletionYear)
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 3.38, Round2(3.375))
	assert.Equal(t, 3.67, Round2(44.0/12.0))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 0.0, Round2(0))
}

func TestGradeScale(t *testing.T) {
	expected := map[string]float64{
		"A": 4.0, "B+": 3.5, "B": 3.0, "C+": 2.5, "C": 2.0, "D": 1.5, "F": 0.0,
	}
	for grade, points := range expected {
		got, ok := GradePoint(grade)
		require.True(t, ok, grade)
		assert.Equal(t, points, got, grade)
	}

	_, ok := GradePoint("")
	assert.False(t, ok, "empty grade is not on the scale")

	assert.Equal(t, []string{"A", "B+", "B", "C+", "C", "D", "F"}, GradeKeys())
}
