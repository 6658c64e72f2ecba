package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
	"github.com/ThilinaShalom/fitgen.AI/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	auth  *usecase.AuthService
	plans *usecase.PlanService
	admin *usecase.AdminService
}

// NewHandler creates a new HTTP handler
func NewHandler(auth *usecase.AuthService, plans *usecase.PlanService, admin *usecase.AdminService) *Handler {
	return &Handler{
		auth:  auth,
		plans: plans,
		admin: admin,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "fitgen-backend",
		"version": "1.0.0",
	})
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrUnknownMacroPreference):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the mapped status and the error message.
func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errorStatus(err), gin.H{"error": err.Error()})
}
