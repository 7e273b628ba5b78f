package services

import (
	"context"
	"errors"

	"github.com/selim/gradepoint/internal/app/models"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
)

// --- Mock catalog stores ---

type mockFacultyStore struct {
	faculties []*models.Faculty
	err       error
}

func (m *mockFacultyStore) GetAll(_ context.Context) ([]*models.Faculty, error) {
	return m.faculties, m.err
}

type mockProgramStore struct {
	programs []*models.Program
	err      error
}

func (m *mockProgramStore) GetAll(_ context.Context) ([]*models.Program, error) {
	return m.programs, m.err
}

type mockCourseStore struct {
	courses []*models.Course
	err     error
}

func (m *mockCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	return m.courses, m.err
}

// --- Mock session store ---

// memorySessionStore is an in-memory SessionStore. failures counts
// down: while positive, every call fails with failErr.
type memorySessionStore struct {
	sessions map[string]models.Session
	failures int
	failErr  error
	gets     int
	updates  int
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]models.Session{}}
}

func (m *memorySessionStore) fail() error {
	if m.failures > 0 {
		m.failures--
		if m.failErr != nil {
			return m.failErr
		}
		return errors.New("store failure")
	}
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	m.gets++
	if err := m.fail(); err != nil {
		return nil, err
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	copied := session
	copied.Semesters = append([]models.Semester(nil), session.Semesters...)
	return &copied, nil
}

func (m *memorySessionStore) Create(_ context.Context, session *models.Session) error {
	if err := m.fail(); err != nil {
		return err
	}
	if _, ok := m.sessions[session.ID]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	m.sessions[session.ID] = *session
	return nil
}

func (m *memorySessionStore) Update(_ context.Context, session *models.Session) error {
	m.updates++
	if err := m.fail(); err != nil {
		return err
	}
	if _, ok := m.sessions[session.ID]; !ok {
		return apperrors.ErrSessionNotFound
	}
	m.sessions[session.ID] = *session
	return nil
}

// --- Shared fixture data ---

func testFaculties() []*models.Faculty {
	return []*models.Faculty{
		{ID: 1, Code: "itc", Name: "Faculty of Computer Studies"},
		{ID: 2, Code: "fbs", Name: "Faculty of Business Studies"},
	}
}

func testPrograms() []*models.Program {
	return []*models.Program{
		{ID: 1, Code: "itc-bsc", Name: "BSc Information Technology and Computing", FacultyCode: "itc", RequiredCreditHours: 131},
		{ID: 2, Code: "fbs-bba", Name: "Bachelor of Business Administration", FacultyCode: "fbs", RequiredCreditHours: 128},
	}
}

func testCourses() []*models.Course {
	return []*models.Course{
		{ID: 1, Code: "M110", Name: "Python Programming", Credits: 8, FacultyCodes: []string{"itc"}},
		{ID: 2, Code: "MS102", Name: "Mathematics for Computing", Credits: 4, FacultyCodes: []string{"itc"}},
		{ID: 3, Code: "EL112", Name: "English Communication Skills II", Credits: 4, FacultyCodes: []string{"itc", "fbs"}},
		{ID: 4, Code: "B124", Name: "Fundamentals of Accounting", Credits: 8, FacultyCodes: []string{"fbs"}},
	}
}

func newTestCatalog(ctx context.Context) (CatalogService, error) {
	return NewCatalogService(ctx,
		&mockFacultyStore{faculties: testFaculties()},
		&mockProgramStore{programs: testPrograms()},
		&mockCourseStore{courses: testCourses()},
	)
}
