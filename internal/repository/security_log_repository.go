package repository

import (
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"gorm.io/gorm"
)

// GormSecurityLogRepository is a GORM implementation of SecurityLogRepository
type GormSecurityLogRepository struct {
	db *gorm.DB
}

// NewSecurityLogRepository creates a new SecurityLogRepository
func NewSecurityLogRepository(db *gorm.DB) SecurityLogRepository {
	return &GormSecurityLogRepository{db: db}
}

// Create appends a security log entry
func (r *GormSecurityLogRepository) Create(entry *models.SecurityLog) error {
	return r.db.Create(entry).Error
}

// List retrieves entries, newest first, optionally filtered by user
func (r *GormSecurityLogRepository) List(filter SecurityLogFilter) ([]models.SecurityLog, int64, error) {
	var entries []models.SecurityLog

	query := r.db.Model(&models.SecurityLog{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		listQuery = listQuery.Offset(offset).Limit(filter.Limit)
	}

	if err := listQuery.Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
