package dto

import (
	"time"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID                 uint64          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Role               models.UserRole `json:"role"`
	IsVerified         bool            `json:"is_verified"`
	TwoFactorEnabled   bool            `json:"two_factor_enabled"`
	LoginAlertsEnabled bool            `json:"login_alerts_enabled"`
	LastPasswordChange *time.Time      `json:"last_password_change,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// UserSummaryDTO is the minimal user shape embedded in other responses
type UserSummaryDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		IsVerified:         user.IsVerified,
		TwoFactorEnabled:   user.TwoFactorEnabled,
		LoginAlertsEnabled: user.LoginAlertsEnabled,
		LastPasswordChange: user.LastPasswordChange,
		CreatedAt:          user.CreatedAt,
	}
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
