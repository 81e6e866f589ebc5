package models

import "time"

// SecurityLog is the append-only audit trail of security-relevant actions.
type SecurityLog struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	IP        string    `gorm:"type:varchar(45)" json:"ip"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
