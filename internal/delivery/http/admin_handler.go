package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThilinaShalom/fitgen.AI/internal/usecase"
)

type registerCoachRequest struct {
	CoachName      string   `json:"coach_name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required"`
	Specialization string   `json:"specialization"`
	ProfilePicURL  string   `json:"profile_pic_url"`
	Services       []string `json:"services"`
}

// RegisterCoach creates a coach account with its profile fields.
func (h *Handler) RegisterCoach(c *gin.Context) {
	var req registerCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coach, err := h.auth.RegisterCoach(
		c.Request.Context(),
		req.Email, req.Password, req.CoachName,
		req.Specialization, req.ProfilePicURL, req.Services,
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "coach registered", "coach": coach})
}

// ListCoaches returns all coach accounts for the admin dashboard.
func (h *Handler) ListCoaches(c *gin.Context) {
	coaches, err := h.admin.ListCoaches(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coaches": coaches})
}

// GetCoach returns one coach account.
func (h *Handler) GetCoach(c *gin.Context) {
	coach, err := h.admin.GetCoach(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coach": coach})
}

// UpdateCoach edits a coach's profile fields.
func (h *Handler) UpdateCoach(c *gin.Context) {
	var update usecase.CoachUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coach, err := h.admin.UpdateCoach(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "coach updated", "coach": coach})
}

// DeleteCoach removes a coach account.
func (h *Handler) DeleteCoach(c *gin.Context) {
	if err := h.admin.DeleteCoach(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "coach deleted"})
}

// ResetCoachPassword mails a password reset link to a coach.
func (h *Handler) ResetCoachPassword(c *gin.Context) {
	coach, err := h.admin.GetCoach(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.auth.RequestPasswordReset(c.Request.Context(), coach.Email); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reset link sent"})
}
