package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/selim/gradepoint/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	sessionController *controllers.SessionController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Catalog routes (read-only reference data) ---
	v1.GET("/faculties", catalogController.GetAllFaculties)
	v1.GET("/programs", catalogController.GetPrograms)

	catalog := v1.Group("/catalog")
	{
		catalog.GET("/courses", catalogController.SearchCourses)
		catalog.GET("/grades", catalogController.GetGradeScale)
	}

	// --- Session and ledger routes ---
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", sessionController.CreateSession)
		sessions.GET("/:id", sessionController.GetSession)
		sessions.PUT("/:id/selection", sessionController.UpdateSelection)
		sessions.GET("/:id/summary", sessionController.GetSummary)

		semesters := sessions.Group("/:id/semesters")
		{
			semesters.POST("", sessionController.AddSemester)
			semesters.DELETE("/:semesterId", sessionController.RemoveSemester)
			semesters.PATCH("/:semesterId", sessionController.RenameSemester)
			semesters.POST("/:semesterId/courses", sessionController.AddCourse)
			semesters.DELETE("/:semesterId/courses/:code", sessionController.RemoveCourse)
			semesters.PUT("/:semesterId/courses/:code/grade", sessionController.SetGrade)
		}
	}
}
