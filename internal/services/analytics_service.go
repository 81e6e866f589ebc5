package services

import (
	"errors"
	"fmt"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"gorm.io/gorm"
)

// OverviewStats is the per-user dashboard summary. Every number is derived
// by counting rows at read time; nothing here is a stored counter.
type OverviewStats struct {
	Organizations       int64 `json:"organizations"`
	TotalMembers        int64 `json:"total_members"`
	Announcements       int64 `json:"announcements"`
	Events              int64 `json:"events"`
	UnreadNotifications int64 `json:"unread_notifications"`
}

// OrganizationStats summarizes one organization for its members.
type OrganizationStats struct {
	MemberCount   int64                           `json:"member_count"`
	RoleBreakdown map[models.MembershipRole]int64 `json:"role_breakdown"`
	Announcements int64                           `json:"announcements"`
	Events        int64                           `json:"events"`
	RecentJoins   []models.OrganizationMember     `json:"recent_joins"`
}

// AnalyticsService computes dashboard numbers.
type AnalyticsService struct {
	orgRepo   repository.OrganizationRepository
	annRepo   repository.AnnouncementRepository
	evRepo    repository.EventRepository
	notifRepo repository.NotificationRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	orgRepo repository.OrganizationRepository,
	annRepo repository.AnnouncementRepository,
	evRepo repository.EventRepository,
	notifRepo repository.NotificationRepository,
) *AnalyticsService {
	return &AnalyticsService{
		orgRepo:   orgRepo,
		annRepo:   annRepo,
		evRepo:    evRepo,
		notifRepo: notifRepo,
	}
}

// Overview computes the caller's dashboard summary across all of their
// organizations.
func (s *AnalyticsService) Overview(userID uint64) (*OverviewStats, error) {
	memberships, err := s.orgRepo.ListMembershipsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	orgIDs := make([]uint64, len(memberships))
	for i, m := range memberships {
		orgIDs[i] = m.OrganizationID
	}

	stats := &OverviewStats{
		Organizations: int64(len(memberships)),
	}

	for _, orgID := range orgIDs {
		count, err := s.orgRepo.CountMembers(orgID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}
		stats.TotalMembers += count
	}

	if stats.Announcements, err = s.annRepo.CountByOrganizations(orgIDs); err != nil {
		return nil, fmt.Errorf("failed to count announcements: %w", err)
	}
	if stats.Events, err = s.evRepo.CountByOrganizations(orgIDs); err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	if stats.UnreadNotifications, err = s.notifRepo.CountUnread(userID); err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return stats, nil
}

// ForOrganization computes one organization's stats.
func (s *AnalyticsService) ForOrganization(orgID uint64) (*OrganizationStats, error) {
	if _, err := s.orgRepo.FindByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	memberCount, err := s.orgRepo.CountMembers(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	breakdown, err := s.orgRepo.CountMembersByRole(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members by role: %w", err)
	}

	announcements, err := s.annRepo.CountByOrganizations([]uint64{orgID})
	if err != nil {
		return nil, fmt.Errorf("failed to count announcements: %w", err)
	}

	events, err := s.evRepo.CountByOrganizations([]uint64{orgID})
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	recent, err := s.orgRepo.ListRecentMembers(orgID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent joins: %w", err)
	}

	return &OrganizationStats{
		MemberCount:   memberCount,
		RoleBreakdown: breakdown,
		Announcements: announcements,
		Events:        events,
		RecentJoins:   recent,
	}, nil
}
