package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/dto"
	apierrors "github.com/rence141/Organizational-Management-Sys-sub000/internal/errors"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/middleware"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
)

// CreateAnnouncement posts an announcement to the organization feed.
// Any current member may post.
func (h *OrganizationHandler) CreateAnnouncement(c *gin.Context) {
	org, ok := middleware.GetOrganization(c)
	if !ok {
		apierrors.InternalError(c, "Organization not found in context")
		return
	}

	userID, _ := middleware.GetUserID(c)

	type AnnouncementRequest struct {
		Title   string `json:"title" binding:"required,max=255"`
		Content string `json:"content"`
	}

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	announcement, err := h.orgService.CreateAnnouncement(org.ID, userID, req.Title, req.Content)
	if err != nil {
		respondOrganizationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnnouncementDTO(*announcement))
}

// ListAnnouncements returns the organization's announcement feed, paginated.
func (h *OrganizationHandler) ListAnnouncements(c *gin.Context) {
	org, ok := middleware.GetOrganization(c)
	if !ok {
		apierrors.InternalError(c, "Organization not found in context")
		return
	}

	params := utils.GetPaginationParams(c)

	announcements, total, err := h.orgService.ListAnnouncements(org.ID, params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnnouncementListResponse(announcements, params, total))
}

// CreateEvent posts an event to the organization calendar.
func (h *OrganizationHandler) CreateEvent(c *gin.Context) {
	org, ok := middleware.GetOrganization(c)
	if !ok {
		apierrors.InternalError(c, "Organization not found in context")
		return
	}

	userID, _ := middleware.GetUserID(c)

	type EventRequest struct {
		Title       string    `json:"title" binding:"required,max=255"`
		Description string    `json:"description"`
		StartsAt    time.Time `json:"starts_at" binding:"required"`
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.orgService.CreateEvent(org.ID, userID, req.Title, req.Description, req.StartsAt)
	if err != nil {
		respondOrganizationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDTO(*event))
}

// ListEvents returns the organization's events ordered by start time.
func (h *OrganizationHandler) ListEvents(c *gin.Context) {
	org, ok := middleware.GetOrganization(c)
	if !ok {
		apierrors.InternalError(c, "Organization not found in context")
		return
	}

	params := utils.GetPaginationParams(c)

	events, total, err := h.orgService.ListEvents(org.ID, params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventListResponse(events, params, total))
}
