package services

import (
	"fmt"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/logger"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
	"go.uber.org/zap"
)

// NotificationService manages the per-user notification feed.
type NotificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Notify appends a notification as a side effect of another operation.
// Failures are logged and swallowed so they never fail the request.
func (s *NotificationService) Notify(userID uint64, kind models.NotificationType, message string) {
	n := &models.Notification{
		UserID:  userID,
		Message: message,
		Type:    kind,
		Unread:  true,
	}

	if err := s.repo.Create(n); err != nil {
		logger.L.Error("notification write failed",
			zap.Uint64("user_id", userID),
			zap.Error(err))
	}
}

// ListForUser returns a user's notifications, newest first, with the
// unread count.
func (s *NotificationService) ListForUser(userID uint64, params utils.PaginationParams) ([]models.Notification, int64, int64, error) {
	notifications, total, err := s.repo.ListByUser(userID, params)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.repo.CountUnread(userID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return notifications, total, unread, nil
}

// MarkAllRead marks all of a user's notifications as read.
func (s *NotificationService) MarkAllRead(userID uint64) (int64, error) {
	updated, err := s.repo.MarkAllRead(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return updated, nil
}
