package dto

import (
	"time"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
)

// NotificationDTO represents a notification in API responses
type NotificationDTO struct {
	ID        uint64                  `json:"id"`
	Message   string                  `json:"message"`
	Type      models.NotificationType `json:"type"`
	Unread    bool                    `json:"unread"`
	CreatedAt time.Time               `json:"created_at"`
}

// NotificationListResponse is the paginated notification feed with the
// unread count.
type NotificationListResponse struct {
	Notifications []NotificationDTO        `json:"notifications"`
	UnreadCount   int64                    `json:"unread_count"`
	Pagination    utils.PaginationResponse `json:"pagination"`
}

// ToNotificationDTO converts a Notification model to NotificationDTO
func ToNotificationDTO(n models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Message:   n.Message,
		Type:      n.Type,
		Unread:    n.Unread,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converts notifications to a paginated response
func ToNotificationListResponse(notifications []models.Notification, unread int64, params utils.PaginationParams, total int64) NotificationListResponse {
	items := make([]NotificationDTO, len(notifications))
	for i, n := range notifications {
		items[i] = ToNotificationDTO(n)
	}

	return NotificationListResponse{
		Notifications: items,
		UnreadCount:   unread,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
