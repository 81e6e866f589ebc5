package services

import (
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/logger"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"go.uber.org/zap"
)

// SecurityService appends to the audit trail. Audit writes are side
// effects of the request that triggered them and never fail it.
type SecurityService struct {
	repo repository.SecurityLogRepository
}

// NewSecurityService creates a new SecurityService.
func NewSecurityService(repo repository.SecurityLogRepository) *SecurityService {
	return &SecurityService{repo: repo}
}

// Record appends one audit entry. Failures are logged and swallowed.
func (s *SecurityService) Record(userID uint64, action, ip, status string) {
	entry := &models.SecurityLog{
		UserID: userID,
		Action: action,
		IP:     ip,
		Status: status,
	}

	if err := s.repo.Create(entry); err != nil {
		logger.L.Error("security log write failed",
			zap.Uint64("user_id", userID),
			zap.String("action", action),
			zap.Error(err))
	}
}

// List retrieves audit entries for the admin surface.
func (s *SecurityService) List(filter repository.SecurityLogFilter) ([]models.SecurityLog, int64, error) {
	return s.repo.List(filter)
}
