package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/selim/gradepoint/internal/app/models"
	"github.com/selim/gradepoint/internal/db"
	"github.com/selim/gradepoint/internal/gpa"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
	"github.com/selim/gradepoint/internal/pkg/logger"
)

// SessionStore is the persistence adapter contract the session
// service needs: fetch-by-key, create, and update-by-key. Whatever
// backs it only has to be durable across restarts.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Create(ctx context.Context, session *models.Session) error
	Update(ctx context.Context, session *models.Session) error
}

// SessionConfig carries the product decisions that are configuration
// flags rather than fixed behavior.
type SessionConfig struct {
	// ClearLedgerOnFacultyChange wipes the semester ledger when the
	// faculty selection changes. Default is to preserve it.
	ClearLedgerOnFacultyChange bool
	// CreditsPerYear feeds the projected completion year.
	CreditsPerYear int
}

// SessionService defines the session and ledger operations.
type SessionService interface {
	Create(ctx context.Context, facultyCode, programCode string) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	UpdateSelection(ctx context.Context, id, facultyCode, programCode string) (*models.Session, error)
	AddSemester(ctx context.Context, id string) (*models.Session, error)
	RemoveSemester(ctx context.Context, id, semesterID string) (*models.Session, error)
	RenameSemester(ctx context.Context, id, semesterID, name string) (*models.Session, error)
	AddCourse(ctx context.Context, id, semesterID, courseCode string) (*models.Session, error)
	RemoveCourse(ctx context.Context, id, semesterID, courseCode string) (*models.Session, error)
	SetGrade(ctx context.Context, id, semesterID, courseCode, grade string) (*models.Session, error)
	Summary(ctx context.Context, id string) (gpa.Summary, error)
}

// sessionServiceImpl implements SessionService. All mutations follow
// the same shape: load the record, apply a pure ledger operation, and
// persist the result. GPA figures are computed on read, never stored.
type sessionServiceImpl struct {
	store   SessionStore
	catalog CatalogService
	config  SessionConfig
}

// NewSessionService creates a new session service instance
func NewSessionService(store SessionStore, catalog CatalogService, config SessionConfig) SessionService {
	if config.CreditsPerYear <= 0 {
		config.CreditsPerYear = gpa.DefaultCreditsPerYear
	}
	return &sessionServiceImpl{
		store:   store,
		catalog: catalog,
		config:  config,
	}
}

// Create starts a new session, optionally with an initial faculty and
// program selection.
func (s *sessionServiceImpl) Create(ctx context.Context, facultyCode, programCode string) (*models.Session, error) {
	if err := s.validateSelection(facultyCode, programCode); err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:          uuid.NewString(),
		FacultyCode: facultyCode,
		ProgramCode: programCode,
		Semesters:   []models.Semester{},
	}

	if err := s.persist(ctx, func() error { return s.store.Create(ctx, session) }); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	logger.Info().Str("sessionID", session.ID).Str("faculty", facultyCode).Msg("Session created")
	return session, nil
}

// Get rehydrates a session by id.
func (s *sessionServiceImpl) Get(ctx context.Context, id string) (*models.Session, error) {
	var session *models.Session
	err := s.persist(ctx, func() error {
		var err error
		session, err = s.store.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSelection changes the faculty and/or program. The program must
// belong to the selected faculty. Switching faculty drops a program
// that no longer matches and, when configured, clears the ledger.
func (s *sessionServiceImpl) UpdateSelection(ctx context.Context, id, facultyCode, programCode string) (*models.Session, error) {
	if err := s.validateSelection(facultyCode, programCode); err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(session *models.Session) error {
		facultyChanged := session.FacultyCode != "" && session.FacultyCode != facultyCode

		// A previously selected program never survives a faculty
		// change; the caller must pick one under the new faculty.
		session.FacultyCode = facultyCode
		session.ProgramCode = programCode
		if facultyChanged && s.config.ClearLedgerOnFacultyChange {
			session.Semesters = []models.Semester{}
		}
		return nil
	})
}

// AddSemester appends a semester, enforcing the ledger capacity.
func (s *sessionServiceImpl) AddSemester(ctx context.Context, id string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		_, err := gpa.AddSemester(session)
		return err
	})
}

// RemoveSemester deletes a semester; absent ids are a no-op.
func (s *sessionServiceImpl) RemoveSemester(ctx context.Context, id, semesterID string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		gpa.RemoveSemester(session, semesterID)
		return nil
	})
}

// RenameSemester sets a semester's display name.
func (s *sessionServiceImpl) RenameSemester(ctx context.Context, id, semesterID, name string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		return gpa.RenameSemester(session, semesterID, name)
	})
}

// AddCourse copies a catalog course into a semester.
func (s *sessionServiceImpl) AddCourse(ctx context.Context, id, semesterID, courseCode string) (*models.Session, error) {
	course, err := s.catalog.CourseByCode(courseCode)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(session *models.Session) error {
		_, err := gpa.AddCourse(session, semesterID, *course)
		return err
	})
}

// RemoveCourse deletes a course entry; absent codes are a no-op.
func (s *sessionServiceImpl) RemoveCourse(ctx context.Context, id, semesterID, courseCode string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		return gpa.RemoveCourse(session, semesterID, courseCode)
	})
}

// SetGrade assigns or clears a grade on a course entry.
func (s *sessionServiceImpl) SetGrade(ctx context.Context, id, semesterID, courseCode, grade string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		return gpa.SetGrade(session, semesterID, courseCode, grade)
	})
}

// Summary computes the aggregate view over the session's ledger.
func (s *sessionServiceImpl) Summary(ctx context.Context, id string) (gpa.Summary, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return gpa.Summary{}, err
	}

	summary := gpa.Summarize(session.Semesters)
	if session.ProgramCode != "" {
		program, err := s.catalog.ProgramByCode(session.ProgramCode)
		if err == nil {
			summary = summary.WithProgram(program, s.config.CreditsPerYear, time.Now().Year())
		}
		// A program code the catalog no longer knows just means no
		// remaining-credits estimate; the GPA figures still stand.
	}
	return summary, nil
}

// validateSelection checks faculty and program codes against the
// catalog and their relationship to each other.
func (s *sessionServiceImpl) validateSelection(facultyCode, programCode string) error {
	if facultyCode == "" && programCode != "" {
		return apperrors.NewBadRequestError("a program requires a faculty")
	}
	if facultyCode != "" {
		if _, err := s.catalog.FacultyByCode(facultyCode); err != nil {
			return err
		}
	}
	if programCode != "" {
		program, err := s.catalog.ProgramByCode(programCode)
		if err != nil {
			return err
		}
		if program.FacultyCode != facultyCode {
			return apperrors.ErrProgramFacultyMismatch
		}
	}
	return nil
}

// mutate loads the session, applies op, and persists the result. The
// stored record is only written when op succeeds, so failed operations
// leave no partial state behind.
func (s *sessionServiceImpl) mutate(ctx context.Context, id string, op func(*models.Session) error) (*models.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := op(session); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, func() error { return s.store.Update(ctx, session) }); err != nil {
		return nil, fmt.Errorf("error updating session: %w", err)
	}
	return session, nil
}

// persist runs a store call, retrying once on transient connectivity
// failures. A store that is still unreachable after the retry surfaces
// as ErrDataUnavailable; the in-memory state handed to the caller is
// untouched either way.
func (s *sessionServiceImpl) persist(ctx context.Context, op func() error) error {
	err := op()
	if err != nil && db.IsTransient(err) {
		logger.Warn().Err(err).Msg("Transient store failure, retrying once")
		err = op()
	}
	if err != nil && db.IsTransient(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrDataUnavailable, err)
	}
	return err
}
