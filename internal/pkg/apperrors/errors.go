package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Infrastructure errors
	ErrDataUnavailable = errors.New("data unavailable")
)

// Catalog errors
var (
	ErrFacultyNotFound      = errors.New("faculty not found")
	ErrFacultyAlreadyExists = errors.New("faculty with this code already exists")
	ErrProgramNotFound      = errors.New("program not found")
	ErrProgramAlreadyExists = errors.New("program with this code already exists")
	ErrCourseNotFound       = errors.New("course not found")
	ErrCourseAlreadyExists  = errors.New("course with this code already exists")
	// ErrProgramFacultyMismatch is returned when a program is selected that
	// does not belong to the session's selected faculty.
	ErrProgramFacultyMismatch = errors.New("program does not belong to the selected faculty")
)

// Session and ledger errors
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSemesterNotFound = errors.New("semester not found")
	// ErrSemesterLimitReached is returned when adding a semester beyond the
	// ledger capacity. The ledger is left unchanged.
	ErrSemesterLimitReached = errors.New("semester limit reached")
	// ErrDuplicateCourse is returned when a course code is already present
	// in the target semester. The semester is left unchanged.
	ErrDuplicateCourse = errors.New("course already added to this semester")
	ErrInvalidGrade    = errors.New("unrecognized grade")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
