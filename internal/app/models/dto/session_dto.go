package dto

// CreateSessionRequest optionally carries an initial faculty and
// program selection. Both may be empty; the session is then created
// with no selection.
type CreateSessionRequest struct {
	FacultyCode string `json:"facultyCode"`
	ProgramCode string `json:"programCode"`
}

// UpdateSelectionRequest changes the session's faculty and/or program.
type UpdateSelectionRequest struct {
	FacultyCode string `json:"facultyCode" binding:"required"`
	ProgramCode string `json:"programCode"`
}

// RenameSemesterRequest sets a semester's display name.
type RenameSemesterRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddCourseRequest adds a catalog course to a semester by its code.
type AddCourseRequest struct {
	CourseCode string `json:"courseCode" binding:"required"`
}

// SetGradeRequest assigns or clears a grade on a course entry. An
// empty grade clears it.
type SetGradeRequest struct {
	Grade string `json:"grade"`
}
