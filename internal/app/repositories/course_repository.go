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

// CourseRepository handles catalog course database operations. The
// faculty_codes column is a text[] of offering faculties, since a
// course can appear in more than one faculty's catalog.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a course and returns its id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name", "credits", "faculty_codes").
		Values(course.Code, course.Name, course.Credits, course.FacultyCodes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetAll retrieves the entire course catalog in catalog order
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "credits", "faculty_codes").
		From("courses").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Code, &course.Name, &course.Credits, &course.FacultyCodes); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetByCode retrieves a course by its code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "credits", "faculty_codes").
		From("courses").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Code, &course.Name, &course.Credits, &course.FacultyCodes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by code: %w", err)
	}

	return course, nil
}
