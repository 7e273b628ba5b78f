package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selim/gradepoint/internal/app/models/dto"
)

// BindAndValidate binds the JSON request body into obj and, when
// binding or field validation fails, writes a 400 with per-field
// messages. Returns false when the request was rejected and the
// handler should stop.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
