package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/selim/gradepoint/internal/app/models"
	"github.com/selim/gradepoint/internal/gpa"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
	"github.com/selim/gradepoint/internal/pkg/logger"
)

// FacultyStore is the slice of the repository layer the catalog needs
// for faculties.
type FacultyStore interface {
	GetAll(ctx context.Context) ([]*models.Faculty, error)
}

// ProgramStore is the slice of the repository layer the catalog needs
// for programs.
type ProgramStore interface {
	GetAll(ctx context.Context) ([]*models.Program, error)
}

// CourseStore is the slice of the repository layer the catalog needs
// for courses.
type CourseStore interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
}

// CatalogService serves the read-only reference data: faculties,
// programs and the searchable course catalog. The whole catalog is
// held in memory, so course search never touches the database.
type CatalogService interface {
	Reload(ctx context.Context) error
	Faculties() []*models.Faculty
	FacultyByCode(code string) (*models.Faculty, error)
	Programs(facultyCode string) []*models.Program
	ProgramByCode(code string) (*models.Program, error)
	CourseByCode(code string) (*models.Course, error)
	SearchCourses(facultyCode, query string, exclude map[string]struct{}) []models.Course
}

// catalogServiceImpl implements CatalogService over an immutable
// snapshot guarded by a RWMutex; Reload swaps the snapshot wholesale.
type catalogServiceImpl struct {
	facultyStore FacultyStore
	programStore ProgramStore
	courseStore  CourseStore

	mu       sync.RWMutex
	snapshot catalogSnapshot
}

type catalogSnapshot struct {
	faculties     []*models.Faculty
	facultyByCode map[string]*models.Faculty
	programs      []*models.Program
	programByCode map[string]*models.Program
	courses       []models.Course
	courseByCode  map[string]*models.Course
}

// NewCatalogService builds the catalog service and performs the
// initial load. Startup fails when the catalog cannot be loaded; with
// no catalog there is nothing to search.
func NewCatalogService(ctx context.Context, faculties FacultyStore, programs ProgramStore, courses CourseStore) (CatalogService, error) {
	svc := &catalogServiceImpl{
		facultyStore: faculties,
		programStore: programs,
		courseStore:  courses,
	}
	if err := svc.Reload(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Reload replaces the in-memory snapshot with fresh repository data.
func (s *catalogServiceImpl) Reload(ctx context.Context) error {
	faculties, err := s.facultyStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: loading faculties: %v", apperrors.ErrDataUnavailable, err)
	}
	programs, err := s.programStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: loading programs: %v", apperrors.ErrDataUnavailable, err)
	}
	courses, err := s.courseStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: loading courses: %v", apperrors.ErrDataUnavailable, err)
	}

	snapshot := catalogSnapshot{
		faculties:     faculties,
		facultyByCode: make(map[string]*models.Faculty, len(faculties)),
		programs:      programs,
		programByCode: make(map[string]*models.Program, len(programs)),
		courses:       make([]models.Course, 0, len(courses)),
		courseByCode:  make(map[string]*models.Course, len(courses)),
	}
	for _, faculty := range faculties {
		snapshot.facultyByCode[faculty.Code] = faculty
	}
	for _, program := range programs {
		snapshot.programByCode[program.Code] = program
	}
	for _, course := range courses {
		snapshot.courses = append(snapshot.courses, *course)
		snapshot.courseByCode[course.Code] = course
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	logger.Info().
		Int("faculties", len(faculties)).
		Int("programs", len(programs)).
		Int("courses", len(courses)).
		Msg("Catalog loaded")
	return nil
}

// Faculties returns all faculties in catalog order.
func (s *catalogServiceImpl) Faculties() []*models.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.faculties
}

// FacultyByCode returns the faculty with the given code.
func (s *catalogServiceImpl) FacultyByCode(code string) (*models.Faculty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	faculty, ok := s.snapshot.facultyByCode[code]
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrFacultyNotFound, "faculty not found").
			WithDetails(map[string]interface{}{"code": code})
	}
	return faculty, nil
}

// Programs returns the programs of one faculty, or all programs when
// facultyCode is empty.
func (s *catalogServiceImpl) Programs(facultyCode string) []*models.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if facultyCode == "" {
		return s.snapshot.programs
	}
	programs := []*models.Program{}
	for _, program := range s.snapshot.programs {
		if program.FacultyCode == facultyCode {
			programs = append(programs, program)
		}
	}
	return programs
}

// ProgramByCode returns the program with the given code.
func (s *catalogServiceImpl) ProgramByCode(code string) (*models.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	program, ok := s.snapshot.programByCode[code]
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrProgramNotFound, "program not found").
			WithDetails(map[string]interface{}{"code": code})
	}
	return program, nil
}

// CourseByCode returns the catalog course with the given code.
func (s *catalogServiceImpl) CourseByCode(code string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.snapshot.courseByCode[code]
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound, "course not found").
			WithDetails(map[string]interface{}{"code": code})
	}
	return course, nil
}

// SearchCourses filters the catalog by faculty, free-text query and an
// exclusion set of already-added course codes.
func (s *catalogServiceImpl) SearchCourses(facultyCode, query string, exclude map[string]struct{}) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gpa.FilterCourses(s.snapshot.courses, facultyCode, query, exclude)
}
