package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/rence141/Organizational-Management-Sys-sub000/internal/errors"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/middleware"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/services"
)

// AnalyticsHandler serves dashboard statistics.
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview returns the caller's cross-organization dashboard summary.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	stats, err := h.analyticsService.Overview(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// OrganizationStats returns statistics for one organization.
func (h *AnalyticsHandler) OrganizationStats(c *gin.Context) {
	org, ok := middleware.GetOrganization(c)
	if !ok {
		apierrors.InternalError(c, "Organization not found in context")
		return
	}

	stats, err := h.analyticsService.ForOrganization(org.ID)
	if err != nil {
		respondOrganizationError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
