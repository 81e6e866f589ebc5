package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/constants"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
	ErrInvalidName          = errors.New("name cannot be empty")
)

// UserService handles profile and security-setting updates.
type UserService struct {
	userRepo repository.UserRepository
	security *SecurityService
	notifier *NotificationService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, security *SecurityService, notifier *NotificationService) *UserService {
	return &UserService{
		userRepo: userRepo,
		security: security,
		notifier: notifier,
	}
}

// UpdateProfile updates the user's display name.
func (s *UserService) UpdateProfile(userID uint64, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Name = name
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *UserService) ChangePassword(userID uint64, currentPassword, newPassword, ip string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		s.security.Record(userID, "password_change", ip, "failure")
		return ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	now := time.Now()
	user.PasswordHash = string(hash)
	user.LastPasswordChange = &now
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.security.Record(userID, "password_change", ip, "success")
	s.notifier.Notify(userID, models.NotificationSecurity, "Your password was changed")

	return nil
}

// SecuritySettingsInput carries optional flag toggles; nil leaves a flag
// unchanged.
type SecuritySettingsInput struct {
	TwoFactorEnabled   *bool
	LoginAlertsEnabled *bool
}

// UpdateSecuritySettings toggles the user's security flags.
func (s *UserService) UpdateSecuritySettings(userID uint64, input SecuritySettingsInput, ip string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.TwoFactorEnabled != nil {
		user.TwoFactorEnabled = *input.TwoFactorEnabled
	}
	if input.LoginAlertsEnabled != nil {
		user.LoginAlertsEnabled = *input.LoginAlertsEnabled
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update security settings: %w", err)
	}

	s.security.Record(userID, "security_settings_change", ip, "success")

	return user, nil
}
