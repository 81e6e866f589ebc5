package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/dto"
	apierrors "github.com/rence141/Organizational-Management-Sys-sub000/internal/errors"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/middleware"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/services"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
)

// AdminHandler serves the platform-admin surface. All routes are gated by
// the admin role allow-list.
type AdminHandler struct {
	adminService    *services.AdminService
	securityService *services.SecurityService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService, securityService *services.SecurityService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		securityService: securityService,
	}
}

// ListUsers returns all users, paginated.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminService.ListUsers(params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	userDTOs := make([]dto.UserDTO, len(users))
	for i, u := range users {
		userDTOs[i] = dto.ToUserDTO(u)
	}

	c.JSON(http.StatusOK, gin.H{
		"users": userDTOs,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// DeleteUser soft deletes a user account.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, _ := middleware.GetUserID(c)

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.adminService.DeleteUser(actorID, targetID, c.ClientIP()); err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDeleteYourself):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUserOwnsOrganizations):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

// ListOrganizations returns all organizations, paginated.
func (h *AdminHandler) ListOrganizations(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orgs, total, err := h.adminService.ListOrganizations(params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	orgDTOs := make([]dto.OrganizationDTO, len(orgs))
	for i, o := range orgs {
		orgDTOs[i] = dto.ToOrganizationDTO(o, false)
	}

	c.JSON(http.StatusOK, gin.H{
		"organizations": orgDTOs,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// SetOrganizationStatus suspends or reactivates an organization.
func (h *AdminHandler) SetOrganizationStatus(c *gin.Context) {
	actorID, _ := middleware.GetUserID(c)

	orgID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid organization ID")
		return
	}

	type StatusRequest struct {
		Status models.OrganizationStatus `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	org, err := h.adminService.SetOrganizationStatus(actorID, orgID, req.Status, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrOrganizationNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org, false))
}

// ListSecurityLogs returns the audit trail, optionally filtered by user.
func (h *AdminHandler) ListSecurityLogs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.SecurityLogFilter{
		Page:  params.Page,
		Limit: params.Limit,
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user_id filter")
			return
		}
		filter.UserID = &userID
	}

	entries, total, err := h.securityService.List(filter)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs": entries,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
