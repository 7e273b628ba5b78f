package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selim/gradepoint/internal/app/models"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
	"github.com/selim/gradepoint/internal/pkg/logger"
)

// SessionRepository persists session records. The semester ledger is
// stored as a single JSONB document per session, mirroring the
// one-document-per-session shape of the hosted store this replaces.
// Each session id is assumed single-writer, so no conflict resolution
// is done on update.
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get retrieves a session record by id. A missing id returns
// apperrors.ErrSessionNotFound; callers treat that as first use.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	sql, args, err := r.sb.Select("id", "faculty_code", "program_code", "semesters", "created_at", "updated_at").
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	session := &models.Session{}
	var semestersJSON []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&session.ID, &session.FacultyCode, &session.ProgramCode,
		&semestersJSON, &session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Str("sessionID", id).Msg("Error scanning session row")
		return nil, fmt.Errorf("error getting session: %w", err)
	}

	if err := json.Unmarshal(semestersJSON, &session.Semesters); err != nil {
		return nil, fmt.Errorf("error decoding session semesters: %w", err)
	}
	if session.Semesters == nil {
		session.Semesters = []models.Semester{}
	}

	return session, nil
}

// Create inserts a new session record. Timestamps are set here.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	semestersJSON, err := marshalSemesters(session.Semesters)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	sql, args, err := r.sb.Insert("sessions").
		Columns("id", "faculty_code", "program_code", "semesters", "created_at", "updated_at").
		Values(session.ID, session.FacultyCode, session.ProgramCode, semestersJSON, session.CreatedAt, session.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Str("sessionID", session.ID).Msg("Error executing create session query")
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// Update overwrites the stored record for the session id. Updating an
// absent id fails with apperrors.ErrSessionNotFound.
func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	semestersJSON, err := marshalSemesters(session.Semesters)
	if err != nil {
		return err
	}

	session.UpdatedAt = time.Now().UTC()

	sql, args, err := r.sb.Update("sessions").
		SetMap(map[string]interface{}{
			"faculty_code": session.FacultyCode,
			"program_code": session.ProgramCode,
			"semesters":    semestersJSON,
			"updated_at":   session.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": session.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update session query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("sessionID", session.ID).Msg("Error executing update session query")
		return fmt.Errorf("error updating session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}

func marshalSemesters(semesters []models.Semester) ([]byte, error) {
	if semesters == nil {
		semesters = []models.Semester{}
	}
	data, err := json.Marshal(semesters)
	if err != nil {
		return nil, fmt.Errorf("error encoding session semesters: %w", err)
	}
	return data, nil
}
