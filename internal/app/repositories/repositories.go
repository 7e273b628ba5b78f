package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyRepository *FacultyRepository
	ProgramRepository *ProgramRepository
	CourseRepository  *CourseRepository
	SessionRepository *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository: NewFacultyRepository(db),
		ProgramRepository: NewProgramRepository(db),
		CourseRepository:  NewCourseRepository(db),
		SessionRepository: NewSessionRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}
