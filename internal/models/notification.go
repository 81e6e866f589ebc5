package models

import "time"

type NotificationType string

const (
	NotificationSecurity   NotificationType = "security"
	NotificationMembership NotificationType = "membership"
	NotificationGeneral    NotificationType = "general"
)

// Notification rows are append-only; the only mutation is the bulk
// mark-read update.
type Notification struct {
	ID        uint64           `gorm:"primarykey" json:"id"`
	UserID    uint64           `gorm:"not null;index" json:"user_id"`
	Message   string           `gorm:"type:varchar(500);not null" json:"message"`
	Type      NotificationType `gorm:"type:varchar(20);not null;default:'general'" json:"type"`
	Unread    bool             `gorm:"not null;default:true" json:"unread"`
	CreatedAt time.Time        `json:"created_at"`
}
