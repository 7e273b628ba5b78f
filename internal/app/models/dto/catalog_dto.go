package dto

// CourseSearchResponse is the payload for a catalog course search.
type CourseSearchResponse struct {
	FacultyCode string           `json:"facultyCode"`
	Query       string           `json:"query,omitempty"`
	Courses     []CourseResponse `json:"courses"`
}

// CourseResponse is a catalog course as returned to clients.
type CourseResponse struct {
	Code         string   `json:"code" example:"M110"`
	Name         string   `json:"name" example:"Python Programming"`
	Credits      int      `json:"credits" example:"8"`
	FacultyCodes []string `json:"facultyCodes"`
}

// GradeScaleResponse lists the institutional grade scale.
type GradeScaleResponse struct {
	Grades []GradeResponse `json:"grades"`
}

// GradeResponse is one grade-scale entry.
type GradeResponse struct {
	Grade  string  `json:"grade" example:"B+"`
	Points float64 `json:"points" example:"3.5"`
}
