package handlers

import (
	"errors"
	"net/http"

	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Garden capacity (2) is too small for 3 selected plants"`
	Code    string `json:"code,omitempty" example:"GARDEN_CAPACITY_EXCEEDED"`
	Details string `json:"details,omitempty"`
}

// respondError maps service errors onto HTTP status codes. Planning errors
// carry their message verbatim so clients can show it as is.
func respondError(c *gin.Context, err error, fallback string) {
	var planningErr *apperrors.PlanningError

	switch {
	case errors.As(err, &planningErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: planningErr.Error(), Code: planningErr.Code})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDatasetNotLoaded):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback, Details: err.Error()})
	}
}
