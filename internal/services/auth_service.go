package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/constants"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/logger"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/token"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// dummyHash keeps the login path doing one bcrypt comparison whether or not
// the email exists, so the two failure cases are indistinguishable by timing.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("login-timing-equalizer"), bcrypt.DefaultCost)

// AuthService handles signup, login, and token issuance.
type AuthService struct {
	userRepo  repository.UserRepository
	security  *SecurityService
	notifier  *NotificationService
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, security *SecurityService, notifier *NotificationService, jwtSecret []byte) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		security:  security,
		notifier:  notifier,
		jwtSecret: jwtSecret,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	IP       string
}

// Signup creates a new user with the default role.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		// The unique index catches duplicates that slip past the pre-insert
		// lookup, including emails held by soft-deleted accounts.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, ErrFailedToCreateUser
	}

	s.security.Record(user.ID, "signup", input.IP, "success")

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
	IP       string
}

// LoginResult carries the authenticated user and their bearer token.
type LoginResult struct {
	User  *models.User
	Token string
}

// Login verifies credentials and issues a signed bearer token. Unknown
// email and wrong password produce the same error after the same amount
// of hash work.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.security.Record(user.ID, "login", input.IP, "failure")
		return nil, ErrInvalidCredentials
	}

	signed, err := token.Issue(s.jwtSecret, user)
	if err != nil {
		logger.L.Error("token issuance failed", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, ErrFailedToIssueToken
	}

	s.security.Record(user.ID, "login", input.IP, "success")

	if user.LoginAlertsEnabled {
		s.notifier.Notify(user.ID, models.NotificationSecurity,
			fmt.Sprintf("New login to your account at %s", time.Now().Format(time.RFC1123)))
	}

	return &LoginResult{User: user, Token: signed}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
