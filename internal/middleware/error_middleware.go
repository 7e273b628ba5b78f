package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selim/gradepoint/internal/app/models/dto"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto the HTTP error taxonomy:
// capacity and duplicate conflicts are 409, validation failures 400,
// missing resources 404, and an unreachable store 503. Nothing here is
// fatal; conflict responses always mean the stored state is unchanged.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSemesterLimitReached):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSemesterLimit, "Semester limit reached")))
	case errors.Is(err, apperrors.ErrDuplicateCourse):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDuplicateCourse, "Course already added to this semester")))
	case errors.Is(err, apperrors.ErrInvalidGrade):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidGrade, "Unrecognized grade").WithField("grade")))
	case errors.Is(err, apperrors.ErrProgramFacultyMismatch):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Program does not belong to the selected faculty")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	case errors.Is(err, apperrors.ErrSessionNotFound):
		// Clients treat a missing session as first use, not a failure.
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Session not found").WithSeverity(dto.ErrorSeverityInfo)))
	case errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrProgramNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrSemesterNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case errors.Is(err, apperrors.ErrDataUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDataUnavailable, "Data temporarily unavailable").WithSeverity(dto.ErrorSeverityWarning)))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
