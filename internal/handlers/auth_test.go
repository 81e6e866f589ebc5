package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/database"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/dto"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/middleware"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/services"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/token"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testJWTSecret = []byte("test-secret")

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&models.SecurityLog{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	securityService := services.NewSecurityService(repository.NewSecurityLogRepository(db))
	notificationService := services.NewNotificationService(repository.NewNotificationRepository(db))
	authService := services.NewAuthService(userRepo, securityService, notificationService, testJWTSecret)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/auth/signup", env.handler.Signup)

	w := postJSON(t, r, "/api/auth/signup", map[string]string{
		"name":     "New User",
		"email":    "new@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "New User", response.Name)
	require.Equal(t, "new@example.com", response.Email)
	require.Equal(t, models.UserRoleUser, response.Role)
	require.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/auth/signup", env.handler.Signup)

	payload := map[string]string{
		"name":     "First",
		"email":    "dup@example.com",
		"password": "supersecret",
	}

	w := postJSON(t, r, "/api/auth/signup", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	payload["name"] = "Second"
	w = postJSON(t, r, "/api/auth/signup", payload)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/auth/signup", env.handler.Signup)

	w := postJSON(t, r, "/api/auth/signup", map[string]string{
		"name":     "Shorty",
		"email":    "shorty@example.com",
		"password": "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_TokenClaimsMatchUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Name:     "Existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string      `json:"token"`
		User  dto.UserDTO `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, user.ID, response.User.ID)

	claims, err := token.Verify(testJWTSecret, response.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, user.Role, claims.Role)
}

func TestAuthHandler_Login_UniformFailure(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Name:     "Existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	wrongPassword := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "not-the-password",
	})
	unknownEmail := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever-pass",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, wrongPassword.Code, unknownEmail.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAuthHandler_Signup_EmailHeldByDeletedAccount(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Name:     "Former",
		Email:    "former@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NoError(t, env.db.Delete(&models.User{}, user.ID).Error)

	// The soft-deleted account is invisible to the pre-insert lookup, so
	// this lands on the unique index and must still surface as a conflict.
	r := gin.New()
	r.POST("/api/auth/signup", env.handler.Signup)

	w := postJSON(t, r, "/api/auth/signup", map[string]string{
		"name":     "Newcomer",
		"email":    "former@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_AlertNotification(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Name:     "Alerted",
		Email:    "alerted@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("login_alerts_enabled", true).Error)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "alerted@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var notifications []models.Notification
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	require.Equal(t, models.NotificationSecurity, notifications[0].Type)
	require.True(t, notifications[0].Unread)
}

func TestAuthHandler_Login_NoAlertWhenDisabled(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Name:     "Quiet",
		Email:    "quiet@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "quiet@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Notification{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestAuthHandler_Login_RecordsSecurityLog(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Name:     "Audited",
		Email:    "audited@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "audited@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var logs []models.SecurityLog
	require.NoError(t, env.db.Where("user_id = ? AND action = ?", user.ID, "login").Find(&logs).Error)
	require.Len(t, logs, 1)
	require.Equal(t, "failure", logs[0].Status)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Name:     "Me",
		Email:    "me@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	signed, err := token.Issue(testJWTSecret, user)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/auth/me", middleware.RequireAuth(testJWTSecret), env.handler.GetCurrentUser)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "me@example.com", response.Email)
}
