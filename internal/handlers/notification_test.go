package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/database"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/dto"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/middleware"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type notificationTestEnv struct {
	db      *gorm.DB
	service *services.NotificationService
	router  *gin.Engine
}

func setupNotificationTestEnv(t *testing.T) notificationTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Notification{})
	require.NoError(t, err)

	database.SetDB(db)

	service := services.NewNotificationService(repository.NewNotificationRepository(db))
	handler := NewNotificationHandler(service)

	r := gin.New()
	notifications := r.Group("/api/notifications")
	notifications.Use(middleware.RequireAuth(testJWTSecret))
	{
		notifications.GET("", handler.ListNotifications)
		notifications.PUT("/read", handler.MarkAllRead)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return notificationTestEnv{db: db, service: service, router: r}
}

func TestNotificationHandler_List(t *testing.T) {
	env := setupNotificationTestEnv(t)
	user := createTestUser(t, env.db, "User", "user@example.com", models.UserRoleUser)
	other := createTestUser(t, env.db, "Other", "other@example.com", models.UserRoleUser)

	env.service.Notify(user.ID, models.NotificationSecurity, "New login to your account")
	env.service.Notify(user.ID, models.NotificationMembership, "You joined Acme")
	env.service.Notify(other.ID, models.NotificationGeneral, "Not yours")

	w := doAuthedJSON(t, env.router, http.MethodGet, "/api/notifications", user, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.NotificationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Notifications, 2)
	require.Equal(t, int64(2), response.UnreadCount)

	for _, n := range response.Notifications {
		require.NotEqual(t, "Not yours", n.Message)
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	env := setupNotificationTestEnv(t)
	user := createTestUser(t, env.db, "User", "user@example.com", models.UserRoleUser)

	env.service.Notify(user.ID, models.NotificationGeneral, "one")
	env.service.Notify(user.ID, models.NotificationGeneral, "two")

	w := doAuthedJSON(t, env.router, http.MethodPut, "/api/notifications/read", user, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Updated int64 `json:"updated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(2), response.Updated)

	w = doAuthedJSON(t, env.router, http.MethodGet, "/api/notifications", user, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.NotificationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, int64(0), list.UnreadCount)
	require.Len(t, list.Notifications, 2)
}
