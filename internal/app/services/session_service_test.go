package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/gradepoint/internal/gpa"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
)

func newTestSessionService(t *testing.T, config SessionConfig) (SessionService, *memorySessionStore) {
	t.Helper()
	catalog, err := newTestCatalog(context.Background())
	require.NoError(t, err)
	store := newMemorySessionStore()
	return NewSessionService(store, catalog, config), store
}

func TestSessionService_CreateAndGet(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{})
	ctx := context.Background()

	session, err := svc.Create(ctx, "itc", "itc-bsc")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "itc", session.FacultyCode)
	assert.Empty(t, session.Semesters)

	loaded, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, "itc-bsc", loaded.ProgramCode)
}

func TestSessionService_Get_NotFound(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{})

	_, err := svc.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionService_Create_SelectionValidation(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{})
	ctx := context.Background()

	tests := []struct {
		name    string
		faculty string
		program string
		wantErr error
	}{
		{name: "empty selection ok", faculty: "", program: ""},
		{name: "faculty only ok", faculty: "itc", program: ""},
		{name: "unknown faculty", faculty: "law", program: "", wantErr: apperrors.ErrFacultyNotFound},
		{name: "unknown program", faculty: "itc", program: "nope", wantErr: apperrors.ErrProgramNotFound},
		{name: "program without faculty", faculty: "", program: "itc-bsc", wantErr: apperrors.ErrBadRequest},
		{name: "program of another faculty", faculty: "itc", program: "fbs-bba", wantErr: apperrors.ErrProgramFacultyMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.faculty, tt.program)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSessionService_UpdateSelection_PreservesLedgerByDefault(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{})
	ctx := context.Background()

	session, err := svc.Create(ctx, "itc", "itc-bsc")
	require.NoError(t, err)
	session, err = svc.AddSemester(ctx, session.ID)
	require.NoError(t, err)

	session, err = svc.UpdateSelection(ctx, session.ID, "fbs", "fbs-bba")
	require.NoError(t, err)
	assert.Equal(t, "fbs", session.FacultyCode)
	assert.Len(t, session.Semesters, 1, "ledger preserved on faculty change")
}

func TestSessionService_UpdateSelection_ClearLedgerFlag(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{ClearLedgerOnFacultyChange: true})
	ctx := context.Background()

	session, err := svc.Create(ctx, "itc", "")
	require.NoError(t, err)
	session, err = svc.AddSemester(ctx, session.ID)
	require.NoError(t, err)

	// Same faculty keeps the ledger.
	session, err = svc.UpdateSelection(ctx, session.ID, "itc", "itc-bsc")
	require.NoError(t, err)
	assert.Len(t, session.Semesters, 1)

	// A different faculty clears it.
	session, err = svc.UpdateSelection(ctx, session.ID, "fbs", "")
	require.NoError(t, err)
	assert.Empty(t, session.Semesters)
	assert.Empty(t, session.ProgramCode)
}

func TestSessionService_SemesterLifecycle(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{})
	ctx := context.Background()

	session, err := svc.Create(ctx, "itc", "")
	require.NoError(t, err)

	session, err = svc.AddSemester(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, session.Semesters, 1)
	semesterID := session.Semesters[0].ID
	assert.Equal(t, "Semester 1", session.Semesters[0].Name)

	session, err = svc.RenameSemester(ctx, session.ID, semesterID, "Fall 2026")
	require.NoError(t, err)
	assert.Equal(t, "Fall 2026", session.Semesters[0].Name)

	session, err = svc.RemoveSemester(ctx, session.ID, semesterID)
	require.NoError(t, err)
	assert.Empty(t, session.Semesters)
}

func TestSessionService_AddSemester_Limit(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{})
	ctx := context.Background()

	session, err := svc.Create(ctx, "", "")
	require.NoError(t, err)

	for i := 0; i < gpa.MaxSemesters; i++ {
		_, err = svc.AddSemester(ctx, session.ID)
		require.NoError(t, err)
	}

	_, err = svc.AddSemester(ctx, session.ID)
	assert.ErrorIs(t, err, apperrors.ErrSemesterLimitReached)

	loaded, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Semesters, gpa.MaxSemesters, "rejected add leaves stored ledger unchanged")
}

func TestSessionService_CourseLifecycle(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{})
	ctx := context.Background()

	session, err := svc.Create(ctx, "itc", "")
	require.NoError(t, err)
	session, err = svc.AddSemester(ctx, session.ID)
	require.NoError(t, err)
	semesterID := session.Semesters[0].ID

	session, err = svc.AddCourse(ctx, session.ID, semesterID, "M110")
	require.NoError(t, err)
	require.Len(t, session.Semesters[0].Courses, 1)
	assert.Equal(t, "Python Programming", session.Semesters[0].Courses[0].Name)
	assert.Equal(t, 8, session.Semesters[0].Courses[0].Credits)

	_, err = svc.AddCourse(ctx, session.ID, semesterID, "M110")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCourse)

	_, err = svc.AddCourse(ctx, session.ID, semesterID, "X999")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	session, err = svc.SetGrade(ctx, session.ID, semesterID, "M110", "A")
	require.NoError(t, err)
	assert.Equal(t, "A", session.Semesters[0].Courses[0].Grade)

	_, err = svc.SetGrade(ctx, session.ID, semesterID, "M110", "Z")
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)

	session, err = svc.RemoveCourse(ctx, session.ID, semesterID, "M110")
	require.NoError(t, err)
	assert.Empty(t, session.Semesters[0].Courses)
}

func TestSessionService_Summary(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{CreditsPerYear: 15})
	ctx := context.Background()

	session, err := svc.Create(ctx, "itc", "itc-bsc")
	require.NoError(t, err)
	session, err = svc.AddSemester(ctx, session.ID)
	require.NoError(t, err)
	semesterID := session.Semesters[0].ID

	_, err = svc.AddCourse(ctx, session.ID, semesterID, "M110")
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, session.ID, semesterID, "MS102")
	require.NoError(t, err)
	_, err = svc.SetGrade(ctx, session.ID, semesterID, "M110", "A")
	require.NoError(t, err)
	_, err = svc.SetGrade(ctx, session.ID, semesterID, "MS102", "B")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, 3.67, summary.CumulativeGPA)
	assert.Equal(t, 3.67, summary.CurrentSemesterGPA)
	assert.Equal(t, 12, summary.CreditsEarned)
	assert.Equal(t, 2, summary.CompletedCourses)
	require.NotNil(t, summary.RemainingCredits)
	assert.Equal(t, 119, *summary.RemainingCredits)
	assert.NotNil(t, summary.ProjectedCompletionYear)
}

func TestSessionService_Summary_NoProgram(t *testing.T) {
	svc, _ := newTestSessionService(t, SessionConfig{})
	ctx := context.Background()

	session, err := svc.Create(ctx, "itc", "")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, session.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.CumulativeGPA)
	assert.Nil(t, summary.RemainingCredits)
}

func TestSessionService_TransientFailureRetriedOnce(t *testing.T) {
	catalog, err := newTestCatalog(context.Background())
	require.NoError(t, err)
	store := newMemorySessionStore()
	svc := NewSessionService(store, catalog, SessionConfig{})
	ctx := context.Background()

	session, err := svc.Create(ctx, "itc", "")
	require.NoError(t, err)

	// One transient failure: the retry succeeds.
	store.failures = 1
	store.failErr = context.DeadlineExceeded
	loaded, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)

	// Transient failure on both attempts: surfaces as data unavailable.
	store.failures = 2
	_, err = svc.Get(ctx, session.ID)
	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
}

func TestSessionService_NonTransientFailureNotRetried(t *testing.T) {
	catalog, err := newTestCatalog(context.Background())
	require.NoError(t, err)
	store := newMemorySessionStore()
	svc := NewSessionService(store, catalog, SessionConfig{})

	store.failures = 1 // default failErr is not transient
	gets := store.gets
	_, err = svc.Get(context.Background(), "whatever")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrDataUnavailable)
	assert.Equal(t, gets+1, store.gets, "non-transient errors get no retry")
}
