package services

import (
	"errors"
	"fmt"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrCannotDeleteYourself  = errors.New("cannot delete your own account")
	ErrUserOwnsOrganizations = errors.New("user still owns organizations")
	ErrInvalidStatus         = errors.New("status must be active or suspended")
)

// AdminService backs the platform-admin surface.
type AdminService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	security *SecurityService
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, security *SecurityService) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		security: security,
	}
}

// ListUsers returns all users, paginated.
func (s *AdminService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	return s.userRepo.List(params)
}

// DeleteUser soft deletes a user account. Admins cannot delete themselves,
// and a user who still owns organizations must transfer or delete them
// first so no organization is left ownerless.
func (s *AdminService) DeleteUser(actorID, targetID uint64, ip string) error {
	if actorID == targetID {
		return ErrCannotDeleteYourself
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	owned, err := s.userRepo.CountOwnedOrganizations(targetID)
	if err != nil {
		return fmt.Errorf("failed to count owned organizations: %w", err)
	}
	if owned > 0 {
		return ErrUserOwnsOrganizations
	}

	if err := s.userRepo.DeleteWithMemberships(targetID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.security.Record(actorID, "admin_delete_user", ip, "success")

	return nil
}

// ListOrganizations returns all organizations, paginated.
func (s *AdminService) ListOrganizations(params utils.PaginationParams) ([]models.Organization, int64, error) {
	return s.orgRepo.List(params)
}

// SetOrganizationStatus suspends or reactivates an organization.
func (s *AdminService) SetOrganizationStatus(actorID, orgID uint64, status models.OrganizationStatus, ip string) (*models.Organization, error) {
	if status != models.StatusActive && status != models.StatusSuspended {
		return nil, ErrInvalidStatus
	}

	org, err := s.orgRepo.FindByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	org.Status = status
	if err := s.orgRepo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization status: %w", err)
	}

	s.security.Record(actorID, "admin_set_org_status", ip, "success")

	return org, nil
}
