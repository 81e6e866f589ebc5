package models

import "time"

type Event struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganizationID uint64    `gorm:"not null;index" json:"organization_id"`
	CreatorID      uint64    `gorm:"not null" json:"creator_id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	StartsAt       time.Time `gorm:"not null" json:"starts_at"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Creator User `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}
