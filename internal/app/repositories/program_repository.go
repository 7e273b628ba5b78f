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

// ProgramRepository handles program database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a program and returns its id
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) (int64, error) {
	sql, args, err := r.sb.Insert("programs").
		Columns("code", "name", "faculty_code", "required_credit_hours").
		Values(program.Code, program.Name, program.FacultyCode, program.RequiredCreditHours).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create program query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrProgramAlreadyExists
		}
		logger.Error().Err(err).Str("code", program.Code).Msg("Error executing create program query")
		return 0, fmt.Errorf("error creating program: %w", err)
	}

	return id, nil
}

// GetAll retrieves all programs in catalog order
func (r *ProgramRepository) GetAll(ctx context.Context) ([]*models.Program, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "faculty_code", "required_credit_hours").
		From("programs").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing programs query")
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.Program{}
	for rows.Next() {
		program := &models.Program{}
		if err := rows.Scan(&program.ID, &program.Code, &program.Name, &program.FacultyCode, &program.RequiredCreditHours); err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// GetByCode retrieves a program by its code
func (r *ProgramRepository) GetByCode(ctx context.Context, code string) (*models.Program, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "faculty_code", "required_credit_hours").
		From("programs").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program := &models.Program{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&program.ID, &program.Code, &program.Name, &program.FacultyCode, &program.RequiredCreditHours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning program row")
		return nil, fmt.Errorf("error getting program by code: %w", err)
	}

	return program, nil
}
