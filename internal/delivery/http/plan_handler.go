package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThilinaShalom/fitgen.AI/internal/usecase"
)

type reviewRequest struct {
	CoachComment string `json:"coach_comment"`
	Action       string `json:"action"`
}

// GeneratePlan runs the full generation pipeline for the logged-in customer.
func (h *Handler) GeneratePlan(c *gin.Context) {
	session := sessionFromContext(c)

	var form usecase.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.plans.Generate(c.Request.Context(), session.UserID, &form)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// CustomerDashboard returns the customer's own plans.
func (h *Handler) CustomerDashboard(c *gin.Context) {
	session := sessionFromContext(c)

	userName, plans, err := h.plans.CustomerPlans(c.Request.Context(), session.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_name": userName, "plans": plans})
}

// CoachDashboard returns all plans awaiting review, joined with owner names.
func (h *Handler) CoachDashboard(c *gin.Context) {
	plans, err := h.plans.RequestedPlans(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// SendPlanToCoach flags the customer's own plan for coach review.
func (h *Handler) SendPlanToCoach(c *gin.Context) {
	session := sessionFromContext(c)

	if err := h.plans.SendToCoach(c.Request.Context(), c.Param("id"), session.UserID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "plan sent to coach"})
}

// ReviewPlan records the coach's verdict on a requested plan.
func (h *Handler) ReviewPlan(c *gin.Context) {
	session := sessionFromContext(c)

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.plans.Review(c.Request.Context(), c.Param("id"), session.UserID, req.CoachComment, req.Action)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review recorded", "status": status})
}

// DeletePlan removes the customer's own plan.
func (h *Handler) DeletePlan(c *gin.Context) {
	session := sessionFromContext(c)

	if err := h.plans.DeletePlan(c.Request.Context(), c.Param("id"), session.UserID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "plan deleted"})
}
