package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrOrganizationNotFound       = errors.New("organization not found")
	ErrInvalidOrganizationName    = errors.New("organization name cannot be empty")
	ErrInvalidOrganizationDomain  = errors.New("organization domain cannot be empty")
	ErrDomainTaken                = errors.New("domain is already registered")
	ErrInviteCodeGenerationFailed = errors.New("failed to generate invite code")
	ErrInvalidInviteCode          = errors.New("invalid invite code")
	ErrAlreadyOrganizationMember  = errors.New("user is already a member of this organization")
	ErrCannotRemoveYourself       = errors.New("cannot remove yourself from the organization")
	ErrCannotRemoveOwner          = errors.New("the organization owner cannot be removed")
	ErrCannotChangeOwnerRole      = errors.New("the owner's role cannot be changed")
	ErrOrganizationMemberNotFound = errors.New("organization member not found")
	ErrInvalidPromotionRole       = errors.New("role must be co_owner or officer")
	ErrEmptyAnnouncementTitle     = errors.New("announcement title cannot be empty")
	ErrEmptyEventTitle            = errors.New("event title cannot be empty")
)

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo  repository.OrganizationRepository
	annRepo  repository.AnnouncementRepository
	evRepo   repository.EventRepository
	notifier *NotificationService
	security *SecurityService
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(
	orgRepo repository.OrganizationRepository,
	annRepo repository.AnnouncementRepository,
	evRepo repository.EventRepository,
	notifier *NotificationService,
	security *SecurityService,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		annRepo:  annRepo,
		evRepo:   evRepo,
		notifier: notifier,
		security: security,
	}
}

// CreateOrganizationInput represents parameters to create a new organization.
type CreateOrganizationInput struct {
	Name    string
	Domain  string
	Plan    models.OrganizationPlan
	OwnerID uint64
}

// CreateOrganization creates an organization with the requester as owner
// and sole initial member. The organization row and the owner membership
// are written in one transaction; the unique index on domain backstops the
// pre-insert lookup under concurrent creates.
func (s *OrganizationService) CreateOrganization(input CreateOrganizationInput) (*models.Organization, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidOrganizationName
	}
	domain := strings.ToLower(strings.TrimSpace(input.Domain))
	if domain == "" {
		return nil, ErrInvalidOrganizationDomain
	}

	if _, err := s.orgRepo.FindByDomain(domain); err == nil {
		return nil, ErrDomainTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check domain: %w", err)
	}

	inviteCode, err := utils.GenerateInviteCode()
	if err != nil {
		return nil, ErrInviteCodeGenerationFailed
	}

	plan := input.Plan
	if plan == "" {
		plan = models.PlanFree
	}

	org := &models.Organization{
		Name:       input.Name,
		Domain:     domain,
		Plan:       plan,
		Status:     models.StatusActive,
		InviteCode: inviteCode,
		OwnerID:    input.OwnerID,
	}

	member := &models.OrganizationMember{
		Role:     models.RoleOwner,
		JoinedAt: time.Now(),
	}

	if err := s.orgRepo.CreateWithOwner(org, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDomainTaken
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return org, nil
}

// ListOrganizationsForUser returns organizations the user belongs to.
func (s *OrganizationService) ListOrganizationsForUser(userID uint64) ([]models.OrganizationMember, error) {
	memberships, err := s.orgRepo.ListMembershipsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return memberships, nil
}

// GetOrganizationWithMembers returns an organization and all of its members.
func (s *OrganizationService) GetOrganizationWithMembers(orgID uint64) (*models.Organization, []models.OrganizationMember, error) {
	org, err := s.orgRepo.FindByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrOrganizationNotFound
		}
		return nil, nil, fmt.Errorf("failed to find organization: %w", err)
	}

	members, err := s.orgRepo.ListMembers(orgID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list organization members: %w", err)
	}

	return org, members, nil
}

// UpdateOrganizationInput carries optional field updates; empty values
// leave the field unchanged.
type UpdateOrganizationInput struct {
	Name   string
	Plan   models.OrganizationPlan
	Status models.OrganizationStatus
}

// UpdateOrganization updates an organization's mutable fields.
func (s *OrganizationService) UpdateOrganization(orgID uint64, input UpdateOrganizationInput) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	if input.Name != "" {
		org.Name = input.Name
	}
	if input.Plan != "" {
		org.Plan = input.Plan
	}
	if input.Status != "" {
		org.Status = input.Status
	}

	if err := s.orgRepo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return org, nil
}

// DeleteOrganization removes an organization and its members, announcements,
// and events.
func (s *OrganizationService) DeleteOrganization(orgID uint64) error {
	if _, err := s.orgRepo.FindByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to find organization: %w", err)
	}

	if err := s.orgRepo.Delete(orgID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	return nil
}

// JoinOrganizationByInvite adds a user to an organization via invite code.
// Joining twice is rejected without duplicating the membership row.
func (s *OrganizationService) JoinOrganizationByInvite(userID uint64, inviteCode string) (*models.Organization, error) {
	org, err := s.orgRepo.FindByInviteCode(inviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidInviteCode
		}
		return nil, fmt.Errorf("failed to find organization by invite code: %w", err)
	}

	if _, err := s.orgRepo.FindMember(org.ID, userID); err == nil {
		return nil, ErrAlreadyOrganizationMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	member := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         userID,
		Role:           models.RoleMember,
		JoinedAt:       time.Now(),
	}

	if err := s.orgRepo.AddMember(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyOrganizationMember
		}
		return nil, fmt.Errorf("failed to add member to organization: %w", err)
	}

	s.notifier.Notify(userID, models.NotificationMembership,
		fmt.Sprintf("You joined %s", org.Name))

	return org, nil
}

// RegenerateInviteCode generates a new invite code for the organization.
func (s *OrganizationService) RegenerateInviteCode(orgID uint64) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	code, err := utils.GenerateInviteCode()
	if err != nil {
		return nil, ErrInviteCodeGenerationFailed
	}

	org.InviteCode = code
	if err := s.orgRepo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update invite code: %w", err)
	}

	return org, nil
}

// PromoteMember sets a member's role to co_owner or officer. The role is a
// single column, so promoting to one tier leaves no residue in another.
func (s *OrganizationService) PromoteMember(orgID, actorID, targetID uint64, role models.MembershipRole, ip string) (*models.OrganizationMember, error) {
	if role != models.RoleCoOwner && role != models.RoleOfficer {
		return nil, ErrInvalidPromotionRole
	}

	member, err := s.orgRepo.FindMember(orgID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationMemberNotFound
		}
		return nil, fmt.Errorf("failed to find organization member: %w", err)
	}

	if member.Role == models.RoleOwner {
		return nil, ErrCannotChangeOwnerRole
	}

	if err := s.orgRepo.UpdateMemberRole(orgID, targetID, role); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}
	member.Role = role

	s.security.Record(actorID, "promote_member", ip, "success")
	s.notifier.Notify(targetID, models.NotificationMembership,
		fmt.Sprintf("Your role was changed to %s", role))

	return member, nil
}

// DemoteMember sets a co-owner or officer back to plain member.
func (s *OrganizationService) DemoteMember(orgID, actorID, targetID uint64, ip string) (*models.OrganizationMember, error) {
	member, err := s.orgRepo.FindMember(orgID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationMemberNotFound
		}
		return nil, fmt.Errorf("failed to find organization member: %w", err)
	}

	if member.Role == models.RoleOwner {
		return nil, ErrCannotChangeOwnerRole
	}

	if err := s.orgRepo.UpdateMemberRole(orgID, targetID, models.RoleMember); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}
	member.Role = models.RoleMember

	s.security.Record(actorID, "demote_member", ip, "success")

	return member, nil
}

// RemoveMember removes a member from the organization. The owner row can
// never be removed, regardless of caller.
func (s *OrganizationService) RemoveMember(orgID, actorID, targetID uint64, ip string) error {
	if targetID == actorID {
		return ErrCannotRemoveYourself
	}

	member, err := s.orgRepo.FindMember(orgID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrganizationMemberNotFound
		}
		return fmt.Errorf("failed to find organization member: %w", err)
	}

	if member.Role == models.RoleOwner {
		return ErrCannotRemoveOwner
	}

	if err := s.orgRepo.RemoveMember(orgID, targetID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.security.Record(actorID, "kick_member", ip, "success")
	s.notifier.Notify(targetID, models.NotificationMembership,
		"You were removed from an organization")

	return nil
}

// CreateAnnouncement appends an announcement to the organization feed.
func (s *OrganizationService) CreateAnnouncement(orgID, authorID uint64, title, content string) (*models.Announcement, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyAnnouncementTitle
	}

	a := &models.Announcement{
		OrganizationID: orgID,
		AuthorID:       authorID,
		Title:          title,
		Content:        content,
	}

	if err := s.annRepo.Create(a); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// ListAnnouncements returns an organization's announcements, paginated.
func (s *OrganizationService) ListAnnouncements(orgID uint64, params utils.PaginationParams) ([]models.Announcement, int64, error) {
	announcements, total, err := s.annRepo.ListByOrganization(orgID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, total, nil
}

// CreateEvent appends an event to the organization calendar.
func (s *OrganizationService) CreateEvent(orgID, creatorID uint64, title, description string, startsAt time.Time) (*models.Event, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyEventTitle
	}

	e := &models.Event{
		OrganizationID: orgID,
		CreatorID:      creatorID,
		Title:          title,
		Description:    description,
		StartsAt:       startsAt,
	}

	if err := s.evRepo.Create(e); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return e, nil
}

// ListEvents returns an organization's events ordered by start time.
func (s *OrganizationService) ListEvents(orgID uint64, params utils.PaginationParams) ([]models.Event, int64, error) {
	events, total, err := s.evRepo.ListByOrganization(orgID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return events, total, nil
}
