package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selim/gradepoint/internal/app/models"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
	"github.com/selim/gradepoint/internal/pkg/logger"
)

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a faculty and returns its id
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculties").
		Columns("code", "name").
		Values(faculty.Code, faculty.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Str("code", faculty.Code).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return id, nil
}

// GetAll retrieves all faculties in catalog order
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "code", "name").
		From("faculties").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all faculties query")
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(&faculty.ID, &faculty.Code, &faculty.Name); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculties, nil
}

// GetByCode retrieves a faculty by its code
func (r *FacultyRepository) GetByCode(ctx context.Context, code string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "code", "name").
		From("faculties").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.Code, &faculty.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by code: %w", err)
	}

	return faculty, nil
}
