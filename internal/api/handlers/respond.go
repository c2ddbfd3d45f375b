package handlers

import (
	"errors"
	"net/http"

	apperrors "community-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err),
		apperrors.IsStateTransition(err),
		apperrors.IsReferenced(err),
		apperrors.IsVersionConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUserHasApprovedObstacle),
		errors.Is(err, apperrors.ErrScheduleInConflict),
		errors.Is(err, apperrors.ErrUserDisabled),
		errors.Is(err, apperrors.ErrSystemRoleImmutable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrWeekNotMondayToSunday),
		errors.Is(err, apperrors.ErrSameTasksForConflict),
		errors.Is(err, apperrors.ErrTaskNotOnDay),
		errors.Is(err, apperrors.ErrRoleNotAllowedForTask):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
