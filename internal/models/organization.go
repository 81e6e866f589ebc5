package models

import (
	"time"

	"gorm.io/gorm"
)

type OrganizationPlan string

const (
	PlanFree       OrganizationPlan = "free"
	PlanPro        OrganizationPlan = "pro"
	PlanEnterprise OrganizationPlan = "enterprise"
)

type OrganizationStatus string

const (
	StatusActive    OrganizationStatus = "active"
	StatusSuspended OrganizationStatus = "suspended"
)

type Organization struct {
	ID         uint64             `gorm:"primarykey" json:"id"`
	Name       string             `gorm:"type:varchar(255);not null" json:"name"`
	Domain     string             `gorm:"type:varchar(255);uniqueIndex;not null" json:"domain"`
	Plan       OrganizationPlan   `gorm:"type:varchar(20);not null;default:'free'" json:"plan"`
	Status     OrganizationStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	InviteCode string             `gorm:"type:varchar(50);uniqueIndex;not null" json:"invite_code"`
	OwnerID    uint64             `gorm:"not null" json:"owner_id"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relations
	Owner         User                 `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members       []OrganizationMember `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
	Announcements []Announcement       `gorm:"foreignKey:OrganizationID" json:"announcements,omitempty"`
	Events        []Event              `gorm:"foreignKey:OrganizationID" json:"events,omitempty"`
}
