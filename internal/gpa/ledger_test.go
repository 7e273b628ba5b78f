package gpa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/gradepoint/internal/app/models"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
)

func newSessionWithSemester(t *testing.T) (*models.Session, string) {
	t.Helper()
	session := &models.Session{ID: "test-session"}
	semester, err := AddSemester(session)
	require.NoError(t, err)
	return session, semester.ID
}

func pythonCourse() models.Course {
	return models.Course{Code: "M110", Name: "Python Programming", Credits: 8, FacultyCodes: []string{"itc"}}
}

func TestAddSemester_DefaultNames(t *testing.T) {
	session := &models.Session{}

	first, err := AddSemester(session)
	require.NoError(t, err)
	second, err := AddSemester(session)
	require.NoError(t, err)

	assert.Equal(t, "Semester 1", first.Name)
	assert.Equal(t, "Semester 2", second.Name)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, session.Semesters, 2)
}

func TestAddSemester_LimitReached(t *testing.T) {
	session := &models.Session{}
	for i := 0; i < MaxSemesters; i++ {
		_, err := AddSemester(session)
		require.NoError(t, err)
	}

	_, err := AddSemester(session)
	assert.ErrorIs(t, err, apperrors.ErrSemesterLimitReached)
	assert.Len(t, session.Semesters, MaxSemesters)
}

func TestRemoveSemester_Idempotent(t *testing.T) {
	session, semesterID := newSessionWithSemester(t)

	RemoveSemester(session, semesterID)
	assert.Empty(t, session.Semesters)

	// Removing again is a no-op.
	RemoveSemester(session, semesterID)
	assert.Empty(t, session.Semesters)
}

func TestRenameSemester(t *testing.T) {
	session, semesterID := newSessionWithSemester(t)

	err := RenameSemester(session, semesterID, "Fall 2025")
	require.NoError(t, err)
	assert.Equal(t, "Fall 2025", session.Semesters[0].Name)

	err = RenameSemester(session, semesterID, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = RenameSemester(session, "missing", "anything")
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
}

func TestAddCourse_CopiesCatalogData(t *testing.T) {
	session, semesterID := newSessionWithSemester(t)

	entry, err := AddCourse(session, semesterID, pythonCourse())
	require.NoError(t, err)

	assert.Equal(t, "M110", entry.Code)
	assert.Equal(t, "Python Programming", entry.Name)
	assert.Equal(t, 8, entry.Credits)
	assert.Empty(t, entry.Grade, "new entries start ungraded")
}

func TestAddCourse_DuplicateRejected(t *testing.T) {
	session, semesterID := newSessionWithSemester(t)

	_, err := AddCourse(session, semesterID, pythonCourse())
	require.NoError(t, err)

	_, err = AddCourse(session, semesterID, pythonCourse())
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCourse)
	assert.Len(t, session.Semesters[0].Courses, 1)
}

func TestAddCourse_SameCodeInDifferentSemesters(t *testing.T) {
	session, firstID := newSessionWithSemester(t)
	second, err := AddSemester(session)
	require.NoError(t, err)

	_, err = AddCourse(session, firstID, pythonCourse())
	require.NoError(t, err)
	_, err = AddCourse(session, second.ID, pythonCourse())
	require.NoError(t, err)
}

func TestAddThenRemoveCourse_RoundTrip(t *testing.T) {
	session, semesterID := newSessionWithSemester(t)
	_, err := AddCourse(session, semesterID, models.Course{Code: "MS102", Name: "Mathematics for Computing", Credits: 4})
	require.NoError(t, err)

	before := make([]models.CourseEntry, len(session.Semesters[0].Courses))
	copy(before, session.Semesters[0].Courses)

	_, err = AddCourse(session, semesterID, pythonCourse())
	require.NoError(t, err)
	err = RemoveCourse(session, semesterID, "M110")
	require.NoError(t, err)

	assert.Equal(t, before, session.Semesters[0].Courses)
}

func TestRemoveCourse_AbsentCodeIsNoop(t *testing.T) {
	session, semesterID := newSessionWithSemester(t)

	err := RemoveCourse(session, semesterID, "M110")
	assert.NoError(t, err)

	err = RemoveCourse(session, "missing", "M110")
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
}

func TestSetGrade(t *testing.T) {
	tests := []struct {
		grade   string
		wantErr error
	}{
		{grade: "A"},
		{grade: "B+"},
		{grade: "F"},
		{grade: ""}, // un-grade
		{grade: "E", wantErr: apperrors.ErrInvalidGrade},
		{grade: "a", wantErr: apperrors.ErrInvalidGrade},
		{grade: "4.0", wantErr: apperrors.ErrInvalidGrade},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("grade=%q", tt.grade), func(t *testing.T) {
			session, semesterID := newSessionWithSemester(t)
			_, err := AddCourse(session, semesterID, pythonCourse())
			require.NoError(t, err)

			err = SetGrade(session, semesterID, "M110", tt.grade)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, session.Semesters[0].Courses[0].Grade)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.grade, session.Semesters[0].Courses[0].Grade)
		})
	}
}

func TestSetGrade_UnknownCourse(t *testing.T) {
	session, semesterID := newSessionWithSemester(t)

	err := SetGrade(session, semesterID, "M110", "A")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
