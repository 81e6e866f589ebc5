package models

import "time"

// MembershipRole is the single role a user holds inside one organization.
// A membership row carries exactly one role, so a user can never be both
// officer and co-owner of the same organization.
type MembershipRole string

const (
	RoleOwner   MembershipRole = "owner"
	RoleCoOwner MembershipRole = "co_owner"
	RoleOfficer MembershipRole = "officer"
	RoleMember  MembershipRole = "member"
)

type OrganizationMember struct {
	OrganizationID uint64         `gorm:"primarykey" json:"organization_id"`
	UserID         uint64         `gorm:"primarykey" json:"user_id"`
	Role           MembershipRole `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt       time.Time      `json:"joined_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	User         User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
