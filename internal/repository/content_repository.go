package repository

import (
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
	"gorm.io/gorm"
)

// GormAnnouncementRepository is a GORM implementation of AnnouncementRepository
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// Create appends an announcement
func (r *GormAnnouncementRepository) Create(a *models.Announcement) error {
	return r.db.Create(a).Error
}

// ListByOrganization retrieves an organization's announcements, newest first
func (r *GormAnnouncementRepository) ListByOrganization(organizationID uint64, params utils.PaginationParams) ([]models.Announcement, int64, error) {
	var announcements []models.Announcement
	var total int64

	query := r.db.Model(&models.Announcement{}).Where("organization_id = ?", organizationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Author").
		Order("created_at DESC").
		Scopes(paginate(params)).
		Find(&announcements).Error; err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

// CountByOrganizations counts announcements across organizations
func (r *GormAnnouncementRepository) CountByOrganizations(organizationIDs []uint64) (int64, error) {
	if len(organizationIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&models.Announcement{}).
		Where("organization_id IN ?", organizationIDs).
		Count(&count).Error
	return count, err
}

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

// Create appends an event
func (r *GormEventRepository) Create(e *models.Event) error {
	return r.db.Create(e).Error
}

// ListByOrganization retrieves an organization's events ordered by start time
func (r *GormEventRepository) ListByOrganization(organizationID uint64, params utils.PaginationParams) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.Model(&models.Event{}).Where("organization_id = ?", organizationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Creator").
		Order("starts_at ASC").
		Scopes(paginate(params)).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// CountByOrganizations counts events across organizations
func (r *GormEventRepository) CountByOrganizations(organizationIDs []uint64) (int64, error) {
	if len(organizationIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&models.Event{}).
		Where("organization_id IN ?", organizationIDs).
		Count(&count).Error
	return count, err
}
