package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selim/gradepoint/internal/app/models/dto"
	"github.com/selim/gradepoint/internal/app/services"
	"github.com/selim/gradepoint/internal/middleware"
)

// SessionController handles session and ledger operations
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// CreateSession starts a new calculator session
// @Summary Create a session
// @Description Creates a session, optionally with an initial faculty and program selection. The server generates the session id.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest false "Initial selection"
// @Success 201 {object} dto.APIResponse "Session created"
// @Failure 400 {object} dto.ErrorResponse "Invalid selection"
// @Failure 404 {object} dto.ErrorResponse "Unknown faculty or program"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if ctx.Request.ContentLength > 0 && !middleware.BindAndValidate(ctx, &req) {
		return
	}

	session, err := c.sessionService.Create(ctx, req.FacultyCode, req.ProgramCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(session))
}

// GetSession rehydrates a session by id
// @Summary Get a session
// @Description Retrieves the stored selection and ledger for a session id. A 404 means first use, not a failure.
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	session, err := c.sessionService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// UpdateSelection changes the faculty and/or program selection
// @Summary Update the faculty/program selection
// @Description Sets the session's faculty and program. The program must belong to the faculty; switching faculty drops the old program and, depending on server configuration, may clear the ledger.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.UpdateSelectionRequest true "New selection"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Program does not belong to the faculty"
// @Failure 404 {object} dto.ErrorResponse "Session, faculty or program not found"
// @Router /sessions/{id}/selection [put]
func (c *SessionController) UpdateSelection(ctx *gin.Context) {
	var req dto.UpdateSelectionRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	session, err := c.sessionService.UpdateSelection(ctx, ctx.Param("id"), req.FacultyCode, req.ProgramCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// AddSemester appends a semester to the ledger
// @Summary Add a semester
// @Description Appends a semester with a generated id and a default name. At most 12 semesters are allowed.
// @Tags semesters
// @Produce json
// @Param id path string true "Session id"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Semester limit reached"
// @Router /sessions/{id}/semesters [post]
func (c *SessionController) AddSemester(ctx *gin.Context) {
	session, err := c.sessionService.AddSemester(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(session))
}

// RemoveSemester deletes a semester
// @Summary Remove a semester
// @Description Deletes the semester with the given id. Removing an absent semester is a no-op.
// @Tags semesters
// @Produce json
// @Param id path string true "Session id"
// @Param semesterId path string true "Semester id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/semesters/{semesterId} [delete]
func (c *SessionController) RemoveSemester(ctx *gin.Context) {
	session, err := c.sessionService.RemoveSemester(ctx, ctx.Param("id"), ctx.Param("semesterId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// RenameSemester sets a semester's name
// @Summary Rename a semester
// @Description Sets the display name of the semester with the given id.
// @Tags semesters
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param semesterId path string true "Semester id"
// @Param request body dto.RenameSemesterRequest true "New name"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Empty name"
// @Failure 404 {object} dto.ErrorResponse "Session or semester not found"
// @Router /sessions/{id}/semesters/{semesterId} [patch]
func (c *SessionController) RenameSemester(ctx *gin.Context) {
	var req dto.RenameSemesterRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	session, err := c.sessionService.RenameSemester(ctx, ctx.Param("id"), ctx.Param("semesterId"), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// AddCourse copies a catalog course into a semester
// @Summary Add a course to a semester
// @Description Adds the catalog course with the given code to the semester. A course code can appear at most once per semester.
// @Tags semesters
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param semesterId path string true "Semester id"
// @Param request body dto.AddCourseRequest true "Course code"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Session, semester or course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already in the semester"
// @Router /sessions/{id}/semesters/{semesterId}/courses [post]
func (c *SessionController) AddCourse(ctx *gin.Context) {
	var req dto.AddCourseRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	session, err := c.sessionService.AddCourse(ctx, ctx.Param("id"), ctx.Param("semesterId"), req.CourseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(session))
}

// RemoveCourse deletes a course entry from a semester
// @Summary Remove a course from a semester
// @Description Deletes the course entry with the given code. Removing an absent code is a no-op.
// @Tags semesters
// @Produce json
// @Param id path string true "Session id"
// @Param semesterId path string true "Semester id"
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Session or semester not found"
// @Router /sessions/{id}/semesters/{semesterId}/courses/{code} [delete]
func (c *SessionController) RemoveCourse(ctx *gin.Context) {
	session, err := c.sessionService.RemoveCourse(ctx, ctx.Param("id"), ctx.Param("semesterId"), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// SetGrade assigns or clears a grade
// @Summary Set a course grade
// @Description Assigns a grade from the fixed scale to a course entry, or clears it with an empty grade.
// @Tags semesters
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param semesterId path string true "Semester id"
// @Param code path string true "Course code"
// @Param request body dto.SetGradeRequest true "Grade"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Unrecognized grade"
// @Failure 404 {object} dto.ErrorResponse "Session, semester or course not found"
// @Router /sessions/{id}/semesters/{semesterId}/courses/{code}/grade [put]
func (c *SessionController) SetGrade(ctx *gin.Context) {
	var req dto.SetGradeRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	session, err := c.sessionService.SetGrade(ctx, ctx.Param("id"), ctx.Param("semesterId"), ctx.Param("code"), req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// GetSummary computes the session's GPA summary
// @Summary Get the GPA summary
// @Description Computes the cumulative GPA, the most recent semester GPA, credits earned, completed courses and, when a program is selected, the remaining-credits estimate. Figures are computed on read and never cached.
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/summary [get]
func (c *SessionController) GetSummary(ctx *gin.Context) {
	summary, err := c.sessionService.Summary(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
