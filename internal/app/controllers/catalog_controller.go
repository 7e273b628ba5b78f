package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/selim/gradepoint/internal/app/models/dto"
	"github.com/selim/gradepoint/internal/app/services"
	"github.com/selim/gradepoint/internal/gpa"
	"github.com/selim/gradepoint/internal/middleware"
)

// CatalogController handles the read-only reference data: faculties,
// programs, the course search and the grade scale.
type CatalogController struct {
	catalogService services.CatalogService
	sessionService services.SessionService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService, sessionService services.SessionService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		sessionService: sessionService,
	}
}

// GetAllFaculties retrieves all faculties
// @Summary Get all faculties
// @Description Retrieves the list of faculties
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /faculties [get]
func (c *CatalogController) GetAllFaculties(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Faculties()))
}

// GetPrograms retrieves programs, optionally filtered by faculty
// @Summary Get programs
// @Description Retrieves programs, filtered to one faculty when the faculty query parameter is set
// @Tags catalog
// @Produce json
// @Param faculty query string false "Faculty code"
// @Success 200 {object} dto.APIResponse
// @Router /programs [get]
func (c *CatalogController) GetPrograms(ctx *gin.Context) {
	facultyCode := ctx.Query("faculty")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Programs(facultyCode)))
}

// SearchCourses filters the course catalog
// @Summary Search catalog courses
// @Description Filters the catalog by faculty, an optional free-text query and, when a session and semester are given, excludes courses already added to that semester
// @Tags catalog
// @Produce json
// @Param faculty query string true "Faculty code"
// @Param q query string false "Free-text query matched against course code and name"
// @Param session query string false "Session id supplying the exclusion set"
// @Param semester query string false "Semester id within the session"
// @Success 200 {object} dto.APIResponse{data=dto.CourseSearchResponse}
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 503 {object} dto.ErrorResponse "Session store unavailable"
// @Router /catalog/courses [get]
func (c *CatalogController) SearchCourses(ctx *gin.Context) {
	facultyCode := ctx.Query("faculty")
	query := strings.TrimSpace(ctx.Query("q"))

	exclude := map[string]struct{}{}
	sessionID := ctx.Query("session")
	semesterID := ctx.Query("semester")
	if sessionID != "" && semesterID != "" {
		session, err := c.sessionService.Get(ctx, sessionID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		if semester := session.SemesterByID(semesterID); semester != nil {
			exclude = semester.CourseCodes()
		}
	}

	courses := c.catalogService.SearchCourses(facultyCode, query, exclude)

	response := dto.CourseSearchResponse{
		FacultyCode: facultyCode,
		Query:       query,
		Courses:     make([]dto.CourseResponse, 0, len(courses)),
	}
	for _, course := range courses {
		response.Courses = append(response.Courses, dto.CourseResponse{
			Code:         course.Code,
			Name:         course.Name,
			Credits:      course.Credits,
			FacultyCodes: course.FacultyCodes,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}

// GetGradeScale returns the institutional grade scale
// @Summary Get the grade scale
// @Description Returns the fixed letter-grade to grade-point mapping
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GradeScaleResponse}
// @Router /catalog/grades [get]
func (c *CatalogController) GetGradeScale(ctx *gin.Context) {
	keys := gpa.GradeKeys()
	response := dto.GradeScaleResponse{Grades: make([]dto.GradeResponse, 0, len(keys))}
	for _, grade := range keys {
		points, _ := gpa.GradePoint(grade)
		response.Grades = append(response.Grades, dto.GradeResponse{Grade: grade, Points: points})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}
