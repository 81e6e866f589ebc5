package repository

import (
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
	"gorm.io/gorm"
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// CreateWithOwner creates the organization and the owner membership in one
// transaction so a failed membership insert rolls back the organization.
func (r *GormOrganizationRepository) CreateWithOwner(org *models.Organization, member *models.OrganizationMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		member.OrganizationID = org.ID
		member.UserID = org.OwnerID

		return tx.Create(member).Error
	})
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindByDomain finds an organization by domain
func (r *GormOrganizationRepository) FindByDomain(domain string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.Where("domain = ?", domain).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindByInviteCode finds an organization by invite code
func (r *GormOrganizationRepository) FindByInviteCode(code string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.Where("invite_code = ?", code).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *GormOrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete deletes an organization and all related data in a transaction
func (r *GormOrganizationRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.Announcement{}).Error; err != nil {
			return err
		}

		if err := tx.Where("organization_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return err
		}

		if err := tx.Where("organization_id = ?", id).Delete(&models.OrganizationMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Organization{}, id).Error
	})
}

// List retrieves organizations with pagination, newest first
func (r *GormOrganizationRepository) List(params utils.PaginationParams) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	var total int64

	query := r.db.Model(&models.Organization{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").
		Scopes(paginate(params)).
		Find(&orgs).Error; err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// AddMember adds a member to an organization
func (r *GormOrganizationRepository) AddMember(member *models.OrganizationMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a member from an organization
func (r *GormOrganizationRepository) RemoveMember(organizationID, userID uint64) error {
	return r.db.Where("organization_id = ? AND user_id = ?", organizationID, userID).
		Delete(&models.OrganizationMember{}).Error
}

// UpdateMemberRole sets the single role column of a membership row
func (r *GormOrganizationRepository) UpdateMemberRole(organizationID, userID uint64, role models.MembershipRole) error {
	return r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		Update("role", role).Error
}

// FindMember finds a specific organization member with their user loaded
func (r *GormOrganizationRepository) FindMember(organizationID, userID uint64) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	if err := r.db.Preload("User").
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembershipsByUserID lists all organizations a user is a member of
func (r *GormOrganizationRepository) ListMembershipsByUserID(userID uint64) ([]models.OrganizationMember, error) {
	var memberships []models.OrganizationMember
	if err := r.db.Preload("Organization").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListMembers lists all members of an organization
func (r *GormOrganizationRepository) ListMembers(organizationID uint64) ([]models.OrganizationMember, error) {
	var members []models.OrganizationMember
	if err := r.db.Preload("User").
		Where("organization_id = ?", organizationID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CountMembers counts members of an organization
func (r *GormOrganizationRepository) CountMembers(organizationID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error
	return count, err
}

// CountMembersByRole breaks the member count down per role
func (r *GormOrganizationRepository) CountMembersByRole(organizationID uint64) (map[models.MembershipRole]int64, error) {
	type roleCount struct {
		Role  models.MembershipRole
		Count int64
	}

	var rows []roleCount
	err := r.db.Model(&models.OrganizationMember{}).
		Select("role, COUNT(*) as count").
		Where("organization_id = ?", organizationID).
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.MembershipRole]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

// ListRecentMembers returns the latest joins of an organization
func (r *GormOrganizationRepository) ListRecentMembers(organizationID uint64, limit int) ([]models.OrganizationMember, error) {
	var members []models.OrganizationMember
	if err := r.db.Preload("User").
		Where("organization_id = ?", organizationID).
		Order("joined_at DESC").
		Limit(limit).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
