package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/config"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/database"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/handlers"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/logger"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/middleware"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/repository"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/services"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	logger.Init(cfg.GinMode)
	defer logger.L.Sync()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.EnsureAdmin(database.GetDB(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.GinMode == gin.ReleaseMode {
			log.Fatal("JWT_SECRET must be set in release mode")
		}
		cfg.JWTSecret = "dev-only-secret"
	}
	jwtSecret := []byte(cfg.JWTSecret)

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	annRepo := repository.NewAnnouncementRepository(db)
	evRepo := repository.NewEventRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	secLogRepo := repository.NewSecurityLogRepository(db)

	// Services
	securityService := services.NewSecurityService(secLogRepo)
	notificationService := services.NewNotificationService(notifRepo)
	authService := services.NewAuthService(userRepo, securityService, notificationService, jwtSecret)
	userService := services.NewUserService(userRepo, securityService, notificationService)
	orgService := services.NewOrganizationService(orgRepo, annRepo, evRepo, notificationService, securityService)
	analyticsService := services.NewAnalyticsService(orgRepo, annRepo, evRepo, notifRepo)
	adminService := services.NewAdminService(userRepo, orgRepo, securityService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, authService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	adminHandler := handlers.NewAdminHandler(adminService, securityService)

	r := gin.Default()
	r.Use(middleware.RequestID())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Organization Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public except /me)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(jwtSecret), authHandler.GetCurrentUser)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(jwtSecret))
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.PUT("/password", userHandler.ChangePassword)
			users.PUT("/security", userHandler.UpdateSecuritySettings)
		}

		// Organization routes (protected)
		orgs := api.Group("/organizations")
		orgs.Use(middleware.RequireAuth(jwtSecret))
		{
			orgs.POST("", orgHandler.CreateOrganization)
			orgs.GET("", orgHandler.ListOrganizations)
			orgs.POST("/join", orgHandler.JoinOrganization)
			orgs.GET("/:id", middleware.RequireOrganizationAccess(), orgHandler.GetOrganization)
			orgs.PUT("/:id", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), orgHandler.UpdateOrganization)
			orgs.DELETE("/:id", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), orgHandler.DeleteOrganization)
			orgs.POST("/:id/regenerate-code", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), orgHandler.RegenerateInviteCode)
			orgs.POST("/:id/members/:user_id/promote", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), orgHandler.PromoteMember)
			orgs.POST("/:id/members/:user_id/demote", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationRole(models.RoleOwner), orgHandler.DemoteMember)
			orgs.DELETE("/:id/members/:user_id", middleware.RequireOrganizationAccess(), middleware.RequireOrganizationOwnerOrAdmin(), orgHandler.RemoveMember)
			orgs.POST("/:id/announcements", middleware.RequireOrganizationAccess(), orgHandler.CreateAnnouncement)
			orgs.GET("/:id/announcements", middleware.RequireOrganizationAccess(), orgHandler.ListAnnouncements)
			orgs.POST("/:id/events", middleware.RequireOrganizationAccess(), orgHandler.CreateEvent)
			orgs.GET("/:id/events", middleware.RequireOrganizationAccess(), orgHandler.ListEvents)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(middleware.RequireAuth(jwtSecret))
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.PUT("/read", notificationHandler.MarkAllRead)
		}

		// Analytics routes (protected)
		analytics := api.Group("/analytics")
		analytics.Use(middleware.RequireAuth(jwtSecret))
		{
			analytics.GET("/overview", analyticsHandler.Overview)
			analytics.GET("/organizations/:id", middleware.RequireOrganizationAccess(), analyticsHandler.OrganizationStats)
		}

		// Admin routes (protected, admin allow-list)
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(jwtSecret), middleware.RequireRole(models.UserRoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/organizations", adminHandler.ListOrganizations)
			admin.PUT("/organizations/:id/status", adminHandler.SetOrganizationStatus)
			admin.GET("/security-logs", adminHandler.ListSecurityLogs)
		}
	}

	logger.L.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
