package gpa

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/selim/gradepoint/internal/app/models"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
)

// MaxSemesters is the ledger capacity. Adding a semester beyond this
// limit is rejected without changing the ledger.
const MaxSemesters = 12

// AddSemester appends a new semester with a fresh id and a default
// name ("Semester N"). It returns ErrSemesterLimitReached when the
// session already holds MaxSemesters semesters.
func AddSemester(session *models.Session) (*models.Semester, error) {
	if len(session.Semesters) >= MaxSemesters {
		return nil, apperrors.ErrSemesterLimitReached
	}

	semester := models.Semester{
		ID:      uuid.NewString(),
		Name:    fmt.Sprintf("Semester %d", len(session.Semesters)+1),
		Courses: []models.CourseEntry{},
	}
	session.Semesters = append(session.Semesters, semester)
	return &session.Semesters[len(session.Semesters)-1], nil
}

// RemoveSemester deletes the semester with the given id. Removing an
// absent id is a no-op.
func RemoveSemester(session *models.Session, semesterID string) {
	for i := range session.Semesters {
		if session.Semesters[i].ID == semesterID {
			session.Semesters = append(session.Semesters[:i], session.Semesters[i+1:]...)
			return
		}
	}
}

// RenameSemester sets the name of the semester with the given id.
func RenameSemester(session *models.Session, semesterID, name string) error {
	semester := session.SemesterByID(semesterID)
	if semester == nil {
		return apperrors.ErrSemesterNotFound
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: semester name cannot be empty", apperrors.ErrValidationFailed)
	}
	semester.Name = name
	return nil
}

// AddCourse copies a catalog course into the semester with an empty
// grade. A course code may appear at most once per semester; adding a
// duplicate returns ErrDuplicateCourse and leaves the semester
// unchanged.
func AddCourse(session *models.Session, semesterID string, course models.Course) (*models.CourseEntry, error) {
	semester := session.SemesterByID(semesterID)
	if semester == nil {
		return nil, apperrors.ErrSemesterNotFound
	}
	if semester.CourseByCode(course.Code) != nil {
		return nil, apperrors.ErrDuplicateCourse
	}

	semester.Courses = append(semester.Courses, models.CourseEntry{
		Code:    course.Code,
		Name:    course.Name,
		Credits: course.Credits,
		Grade:   "",
	})
	return &semester.Courses[len(semester.Courses)-1], nil
}

// RemoveCourse deletes the entry with the given code from the
// semester. Removing an absent code is a no-op.
func RemoveCourse(session *models.Session, semesterID, code string) error {
	semester := session.SemesterByID(semesterID)
	if semester == nil {
		return apperrors.ErrSemesterNotFound
	}
	for i := range semester.Courses {
		if semester.Courses[i].Code == code {
			semester.Courses = append(semester.Courses[:i], semester.Courses[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetGrade assigns a grade to a course entry. Grades are validated
// against the fixed scale here, at the mutation boundary; the empty
// string clears the grade.
func SetGrade(session *models.Session, semesterID, code, grade string) error {
	semester := session.SemesterByID(semesterID)
	if semester == nil {
		return apperrors.ErrSemesterNotFound
	}
	entry := semester.CourseByCode(code)
	if entry == nil {
		return apperrors.ErrCourseNotFound
	}
	if grade != "" && !ValidGrade(grade) {
		return fmt.Errorf("%w: %q is not on the grading scale", apperrors.ErrInvalidGrade, grade)
	}
	entry.Grade = grade
	return nil
}
