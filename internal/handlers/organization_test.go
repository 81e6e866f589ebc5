package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
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

type orgTestEnv struct {
	db         *gorm.DB
	handler    *OrganizationHandler
	orgService *services.OrganizationService
	router     *gin.Engine
}

func setupOrgTestEnv(t *testing.T) orgTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.OrganizationMember{},
		&models.Announcement{},
		&models.Event{},
		&models.Notification{},
		&models.SecurityLog{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	orgRepo := repository.NewOrganizationRepository(db)
	annRepo := repository.NewAnnouncementRepository(db)
	evRepo := repository.NewEventRepository(db)
	notificationService := services.NewNotificationService(repository.NewNotificationRepository(db))
	securityService := services.NewSecurityService(repository.NewSecurityLogRepository(db))
	orgService := services.NewOrganizationService(orgRepo, annRepo, evRepo, notificationService, securityService)
	handler := NewOrganizationHandler(orgService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return orgTestEnv{
		db:         db,
		handler:    handler,
		orgService: orgService,
		router:     organizationRouter(handler),
	}
}

// organizationRouter wires the same middleware chain the server uses.
func organizationRouter(h *OrganizationHandler) *gin.Engine {
	r := gin.New()
	orgs := r.Group("/api/organizations")
	orgs.Use(middleware.RequireAuth(testJWTSecret))
	{
		orgs.POST("", h.CreateOrganization)
		orgs.GET("", h.ListOrganizations)
		orgs.POST("/join", h.JoinOrganization)
		orgs.GET("/:id", middleware.RequireOrganizationAccess(), h.GetOrganization)
		orgs.PUT("/:id", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), h.UpdateOrganization)
		orgs.DELETE("/:id", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), h.DeleteOrganization)
		orgs.POST("/:id/regenerate-code", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), h.RegenerateInviteCode)
		orgs.POST("/:id/members/:user_id/promote", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), h.PromoteMember)
		orgs.POST("/:id/members/:user_id/demote", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), h.DemoteMember)
		orgs.DELETE("/:id/members/:user_id", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationOwnerOrAdmin(), h.RemoveMember)
		orgs.POST("/:id/announcements", middleware.RequireOrganizationAccess(), h.CreateAnnouncement)
		orgs.GET("/:id/announcements", middleware.RequireOrganizationAccess(), h.ListAnnouncements)
		orgs.POST("/:id/events", middleware.RequireOrganizationAccess(), h.CreateEvent)
		orgs.GET("/:id/events", middleware.RequireOrganizationAccess(), h.ListEvents)
	}
	return r
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "not-checked-here",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// doAuthedJSON sends a request authenticated as the given user.
func doAuthedJSON(t *testing.T, r *gin.Engine, method, path string, user *models.User, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	signed, err := token.Issue(testJWTSecret, user)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createOrgFor(t *testing.T, env orgTestEnv, owner *models.User, name, domain string) *models.Organization {
	t.Helper()

	org, err := env.orgService.CreateOrganization(services.CreateOrganizationInput{
		Name:    name,
		Domain:  domain,
		OwnerID: owner.ID,
	})
	require.NoError(t, err)
	return org
}

func TestOrganizationHandler_Create(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)

	w := doAuthedJSON(t, env.router, http.MethodPost, "/api/organizations", owner, map[string]string{
		"name":   "Acme",
		"domain": "acme.example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.OrganizationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Acme", response.Name)
	require.Equal(t, "acme.example.com", response.Domain)
	require.Equal(t, models.PlanFree, response.Plan)
	require.Equal(t, models.StatusActive, response.Status)
	require.Equal(t, owner.ID, response.OwnerID)
	require.Len(t, response.InviteCode, 14)

	// The creator becomes the sole initial member, as owner.
	var members []models.OrganizationMember
	require.NoError(t, env.db.Where("organization_id = ?", response.ID).Find(&members).Error)
	require.Len(t, members, 1)
	require.Equal(t, owner.ID, members[0].UserID)
	require.Equal(t, models.RoleOwner, members[0].Role)
}

func TestOrganizationHandler_Create_DuplicateDomain(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	createOrgFor(t, env, owner, "Acme", "acme.example.com")

	w := doAuthedJSON(t, env.router, http.MethodPost, "/api/organizations", owner, map[string]string{
		"name":   "Acme Again",
		"domain": "acme.example.com",
	})

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestOrganizationHandler_Create_DomainHeldByDeletedOrganization(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	require.NoError(t, env.orgService.DeleteOrganization(org.ID))

	// The soft-deleted row is invisible to the pre-insert lookup, so this
	// insert lands on the unique index and must still map to a conflict
	// rather than a bare 500. Same path a concurrent duplicate create takes.
	w := doAuthedJSON(t, env.router, http.MethodPost, "/api/organizations", owner, map[string]string{
		"name":   "Acme Reborn",
		"domain": "acme.example.com",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestOrganizationHandler_List(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	other := createTestUser(t, env.db, "Other", "other@example.com", models.UserRoleUser)

	createOrgFor(t, env, owner, "Acme", "acme.example.com")
	createOrgFor(t, env, other, "Globex", "globex.example.com")

	w := doAuthedJSON(t, env.router, http.MethodGet, "/api/organizations", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Organizations []dto.OrganizationWithRoleDTO `json:"organizations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Organizations, 1)
	require.Equal(t, "Acme", response.Organizations[0].Name)
	require.Equal(t, models.RoleOwner, response.Organizations[0].Role)
}

func TestOrganizationHandler_Get_NonMemberGets404(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	stranger := createTestUser(t, env.db, "Stranger", "stranger@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	w := doAuthedJSON(t, env.router, http.MethodGet, fmt.Sprintf("/api/organizations/%d", org.ID), stranger, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganizationHandler_Get_MemberSeesDetail(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	member := createTestUser(t, env.db, "Member", "member@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(member.ID, org.InviteCode)
	require.NoError(t, err)

	w := doAuthedJSON(t, env.router, http.MethodGet, fmt.Sprintf("/api/organizations/%d", org.ID), member, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OrganizationDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, org.ID, response.ID)
	require.Len(t, response.Members, 2)
	require.Equal(t, models.RoleMember, response.YourRole)
}

func TestOrganizationHandler_Join(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	joiner := createTestUser(t, env.db, "Joiner", "joiner@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	w := doAuthedJSON(t, env.router, http.MethodPost, "/api/organizations/join", joiner, map[string]string{
		"invite_code": org.InviteCode,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var member models.OrganizationMember
	require.NoError(t, env.db.Where("organization_id = ? AND user_id = ?", org.ID, joiner.ID).First(&member).Error)
	require.Equal(t, models.RoleMember, member.Role)
}

func TestOrganizationHandler_Join_TwiceKeepsOneMembership(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	joiner := createTestUser(t, env.db, "Joiner", "joiner@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	payload := map[string]string{"invite_code": org.InviteCode}

	w := doAuthedJSON(t, env.router, http.MethodPost, "/api/organizations/join", joiner, payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = doAuthedJSON(t, env.router, http.MethodPost, "/api/organizations/join", joiner, payload)
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND user_id = ?", org.ID, joiner.ID).
		Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestOrganizationHandler_Join_InvalidCode(t *testing.T) {
	env := setupOrgTestEnv(t)
	joiner := createTestUser(t, env.db, "Joiner", "joiner@example.com", models.UserRoleUser)

	w := doAuthedJSON(t, env.router, http.MethodPost, "/api/organizations/join", joiner, map[string]string{
		"invite_code": "NOPE-NOPE-NOPE",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganizationHandler_Update_RoundTrip(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	w := doAuthedJSON(t, env.router, http.MethodPut, fmt.Sprintf("/api/organizations/%d", org.ID), owner, map[string]string{
		"name": "Acme Renamed",
		"plan": "pro",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A subsequent read returns exactly what was stored.
	w = doAuthedJSON(t, env.router, http.MethodGet, fmt.Sprintf("/api/organizations/%d", org.ID), owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OrganizationDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Acme Renamed", response.Name)
	require.Equal(t, models.PlanPro, response.Plan)
	require.Equal(t, "acme.example.com", response.Domain)
}

func TestOrganizationHandler_Update_NonOwnerForbidden(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	member := createTestUser(t, env.db, "Member", "member@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(member.ID, org.InviteCode)
	require.NoError(t, err)

	w := doAuthedJSON(t, env.router, http.MethodPut, fmt.Sprintf("/api/organizations/%d", org.ID), member, map[string]string{
		"name": "Hijacked",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	var stored models.Organization
	require.NoError(t, env.db.First(&stored, org.ID).Error)
	require.Equal(t, "Acme", stored.Name)
}

func TestOrganizationHandler_Delete(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	w := doAuthedJSON(t, env.router, http.MethodDelete, fmt.Sprintf("/api/organizations/%d", org.ID), owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orgCount, memberCount int64
	require.NoError(t, env.db.Model(&models.Organization{}).Where("id = ?", org.ID).Count(&orgCount).Error)
	require.NoError(t, env.db.Model(&models.OrganizationMember{}).Where("organization_id = ?", org.ID).Count(&memberCount).Error)
	require.Equal(t, int64(0), orgCount)
	require.Equal(t, int64(0), memberCount)
}

func TestOrganizationHandler_RegenerateInviteCode(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	joiner := createTestUser(t, env.db, "Joiner", "joiner@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")
	oldCode := org.InviteCode

	w := doAuthedJSON(t, env.router, http.MethodPost, fmt.Sprintf("/api/organizations/%d/regenerate-code", org.ID), owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OrganizationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEqual(t, oldCode, response.InviteCode)
	require.Len(t, response.InviteCode, 14)

	// The old code no longer admits anyone.
	w = doAuthedJSON(t, env.router, http.MethodPost, "/api/organizations/join", joiner, map[string]string{
		"invite_code": oldCode,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganizationHandler_Promote(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	member := createTestUser(t, env.db, "Member", "member@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(member.ID, org.InviteCode)
	require.NoError(t, err)

	promotePath := fmt.Sprintf("/api/organizations/%d/members/%d/promote", org.ID, member.ID)

	w := doAuthedJSON(t, env.router, http.MethodPost, promotePath, owner, map[string]string{"role": "officer"})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Member dto.OrganizationMemberDTO `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, models.RoleOfficer, response.Member.Role)
	require.Equal(t, member.ID, response.Member.User.ID)
	require.Equal(t, "Member", response.Member.User.Name)

	var stored models.OrganizationMember
	require.NoError(t, env.db.Where("organization_id = ? AND user_id = ?", org.ID, member.ID).First(&stored).Error)
	require.Equal(t, models.RoleOfficer, stored.Role)

	// Promoting again replaces the role outright; the single column can
	// never hold officer and co_owner at once.
	w = doAuthedJSON(t, env.router, http.MethodPost, promotePath, owner, map[string]string{"role": "co_owner"})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, env.db.Where("organization_id = ? AND user_id = ?", org.ID, member.ID).First(&stored).Error)
	require.Equal(t, models.RoleCoOwner, stored.Role)
}

func TestOrganizationHandler_Promote_NotifiesTarget(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	member := createTestUser(t, env.db, "Member", "member@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(member.ID, org.InviteCode)
	require.NoError(t, err)

	path := fmt.Sprintf("/api/organizations/%d/members/%d/promote", org.ID, member.ID)
	w := doAuthedJSON(t, env.router, http.MethodPost, path, owner, map[string]string{"role": "officer"})
	require.Equal(t, http.StatusOK, w.Code)

	var notifications []models.Notification
	require.NoError(t, env.db.
		Where("user_id = ? AND type = ?", member.ID, models.NotificationMembership).
		Order("id DESC").
		Find(&notifications).Error)
	require.NotEmpty(t, notifications)
	require.Contains(t, notifications[0].Message, "officer")
}

func TestOrganizationHandler_Promote_InvalidRole(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	member := createTestUser(t, env.db, "Member", "member@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(member.ID, org.InviteCode)
	require.NoError(t, err)

	path := fmt.Sprintf("/api/organizations/%d/members/%d/promote", org.ID, member.ID)
	w := doAuthedJSON(t, env.router, http.MethodPost, path, owner, map[string]string{"role": "owner"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrganizationHandler_Promote_NonOwnerForbidden(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	officer := createTestUser(t, env.db, "Officer", "officer@example.com", models.UserRoleUser)
	member := createTestUser(t, env.db, "Member", "member@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(officer.ID, org.InviteCode)
	require.NoError(t, err)
	_, err = env.orgService.JoinOrganizationByInvite(member.ID, org.InviteCode)
	require.NoError(t, err)
	_, err = env.orgService.PromoteMember(org.ID, owner.ID, officer.ID, models.RoleOfficer, "")
	require.NoError(t, err)

	path := fmt.Sprintf("/api/organizations/%d/members/%d/promote", org.ID, member.ID)
	w := doAuthedJSON(t, env.router, http.MethodPost, path, officer, map[string]string{"role": "co_owner"})
	require.Equal(t, http.StatusForbidden, w.Code)

	// The refused promotion left the target untouched.
	var stored models.OrganizationMember
	require.NoError(t, env.db.Where("organization_id = ? AND user_id = ?", org.ID, member.ID).First(&stored).Error)
	require.Equal(t, models.RoleMember, stored.Role)
}

func TestOrganizationHandler_Promote_OwnerRowProtected(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	path := fmt.Sprintf("/api/organizations/%d/members/%d/promote", org.ID, owner.ID)
	w := doAuthedJSON(t, env.router, http.MethodPost, path, owner, map[string]string{"role": "officer"})
	require.Equal(t, http.StatusForbidden, w.Code)

	var stored models.OrganizationMember
	require.NoError(t, env.db.Where("organization_id = ? AND user_id = ?", org.ID, owner.ID).First(&stored).Error)
	require.Equal(t, models.RoleOwner, stored.Role)
}

func TestOrganizationHandler_Demote(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	officer := createTestUser(t, env.db, "Officer", "officer@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(officer.ID, org.InviteCode)
	require.NoError(t, err)
	_, err = env.orgService.PromoteMember(org.ID, owner.ID, officer.ID, models.RoleOfficer, "")
	require.NoError(t, err)

	path := fmt.Sprintf("/api/organizations/%d/members/%d/demote", org.ID, officer.ID)
	w := doAuthedJSON(t, env.router, http.MethodPost, path, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.OrganizationMember
	require.NoError(t, env.db.Where("organization_id = ? AND user_id = ?", org.ID, officer.ID).First(&stored).Error)
	require.Equal(t, models.RoleMember, stored.Role)
}

func TestOrganizationHandler_RemoveMember(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	member := createTestUser(t, env.db, "Member", "member@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(member.ID, org.InviteCode)
	require.NoError(t, err)

	path := fmt.Sprintf("/api/organizations/%d/members/%d", org.ID, member.ID)
	w := doAuthedJSON(t, env.router, http.MethodDelete, path, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND user_id = ?", org.ID, member.ID).
		Count(&count).Error)
	require.Equal(t, int64(0), count)

	// The kicked user is told about it.
	var notifications []models.Notification
	require.NoError(t, env.db.Where("user_id = ?", member.ID).Find(&notifications).Error)
	require.NotEmpty(t, notifications)
}

func TestOrganizationHandler_RemoveMember_Self(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	path := fmt.Sprintf("/api/organizations/%d/members/%d", org.ID, owner.ID)
	w := doAuthedJSON(t, env.router, http.MethodDelete, path, owner, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ?", org.ID).
		Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestOrganizationHandler_RemoveMember_OwnerProtected(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	admin := createTestUser(t, env.db, "Admin", "admin@example.com", models.UserRoleAdmin)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	// Even a platform admin cannot remove the owner.
	path := fmt.Sprintf("/api/organizations/%d/members/%d", org.ID, owner.ID)
	w := doAuthedJSON(t, env.router, http.MethodDelete, path, admin, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND user_id = ?", org.ID, owner.ID).
		Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestOrganizationHandler_RemoveMember_AdminCanKick(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	member := createTestUser(t, env.db, "Member", "member@example.com", models.UserRoleUser)
	admin := createTestUser(t, env.db, "Admin", "admin@example.com", models.UserRoleAdmin)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(member.ID, org.InviteCode)
	require.NoError(t, err)

	path := fmt.Sprintf("/api/organizations/%d/members/%d", org.ID, member.ID)
	w := doAuthedJSON(t, env.router, http.MethodDelete, path, admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestOrganizationHandler_RemoveMember_PlainMemberForbidden(t *testing.T) {
	env := setupOrgTestEnv(t)
	owner := createTestUser(t, env.db, "Owner", "owner@example.com", models.UserRoleUser)
	first := createTestUser(t, env.db, "First", "first@example.com", models.UserRoleUser)
	second := createTestUser(t, env.db, "Second", "second@example.com", models.UserRoleUser)
	org := createOrgFor(t, env, owner, "Acme", "acme.example.com")

	_, err := env.orgService.JoinOrganizationByInvite(first.ID, org.InviteCode)
	require.NoError(t, err)
	_, err = env.orgService.JoinOrganizationByInvite(second.ID, org.InviteCode)
	require.NoError(t, err)

	path := fmt.Sprintf("/api/organizations/%d/members/%d", org.ID, second.ID)
	w := doAuthedJSON(t, env.router, http.MethodDelete, path, first, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ?", org.ID).
		Count(&count).Error)
	require.Equal(t, int64(3), count)
}
