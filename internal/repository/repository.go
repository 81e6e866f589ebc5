package repository

import (
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// List retrieves users with pagination
	List(params utils.PaginationParams) ([]models.User, int64, error)

	// DeleteWithMemberships soft deletes a user and removes their
	// non-owner memberships in a single transaction.
	DeleteWithMemberships(id uint64) error

	// CountOwnedOrganizations counts organizations the user owns
	CountOwnedOrganizations(userID uint64) (int64, error)
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// CreateWithOwner creates an organization and its owner membership
	// within a single transaction.
	CreateWithOwner(org *models.Organization, member *models.OrganizationMember) error

	// FindByID finds an organization by ID
	FindByID(id uint64) (*models.Organization, error)

	// FindByDomain finds an organization by domain
	FindByDomain(domain string) (*models.Organization, error)

	// FindByInviteCode finds an organization by invite code
	FindByInviteCode(code string) (*models.Organization, error)

	// Update updates an organization
	Update(org *models.Organization) error

	// Delete deletes an organization and all related data
	Delete(id uint64) error

	// List retrieves organizations with pagination
	List(params utils.PaginationParams) ([]models.Organization, int64, error)

	// AddMember adds a member to an organization
	AddMember(member *models.OrganizationMember) error

	// RemoveMember removes a member from an organization
	RemoveMember(organizationID, userID uint64) error

	// UpdateMemberRole sets the single role of a membership
	UpdateMemberRole(organizationID, userID uint64, role models.MembershipRole) error

	// FindMember finds a specific organization member
	FindMember(organizationID, userID uint64) (*models.OrganizationMember, error)

	// ListMembershipsByUserID lists all organizations a user is a member of
	ListMembershipsByUserID(userID uint64) ([]models.OrganizationMember, error)

	// ListMembers lists all members of an organization
	ListMembers(organizationID uint64) ([]models.OrganizationMember, error)

	// CountMembers counts members of an organization. Member counts are
	// always derived from membership rows, never stored.
	CountMembers(organizationID uint64) (int64, error)

	// CountMembersByRole breaks the member count down per role
	CountMembersByRole(organizationID uint64) (map[models.MembershipRole]int64, error)

	// ListRecentMembers returns the latest joins of an organization
	ListRecentMembers(organizationID uint64, limit int) ([]models.OrganizationMember, error)
}

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	// Create appends an announcement
	Create(a *models.Announcement) error

	// ListByOrganization retrieves an organization's announcements,
	// newest first, with pagination
	ListByOrganization(organizationID uint64, params utils.PaginationParams) ([]models.Announcement, int64, error)

	// CountByOrganizations counts announcements across organizations
	CountByOrganizations(organizationIDs []uint64) (int64, error)
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create appends an event
	Create(e *models.Event) error

	// ListByOrganization retrieves an organization's events ordered by
	// start time, with pagination
	ListByOrganization(organizationID uint64, params utils.PaginationParams) ([]models.Event, int64, error)

	// CountByOrganizations counts events across organizations
	CountByOrganizations(organizationIDs []uint64) (int64, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create appends a notification
	Create(n *models.Notification) error

	// ListByUser retrieves a user's notifications, newest first
	ListByUser(userID uint64, params utils.PaginationParams) ([]models.Notification, int64, error)

	// CountUnread counts a user's unread notifications
	CountUnread(userID uint64) (int64, error)

	// MarkAllRead marks all of a user's notifications as read and
	// returns how many rows changed
	MarkAllRead(userID uint64) (int64, error)
}

// SecurityLogFilter holds filtering options for listing security logs
type SecurityLogFilter struct {
	UserID *uint64
	Page   int
	Limit  int
}

// SecurityLogRepository defines the interface for the audit trail
type SecurityLogRepository interface {
	// Create appends a security log entry
	Create(entry *models.SecurityLog) error

	// List retrieves entries, newest first, optionally filtered by user
	List(filter SecurityLogFilter) ([]models.SecurityLog, int64, error)
}
