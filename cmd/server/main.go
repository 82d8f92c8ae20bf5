package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/markjessn/mini-pms/internal/config"
	"github.com/markjessn/mini-pms/internal/constants"
	"github.com/markjessn/mini-pms/internal/database"
	"github.com/markjessn/mini-pms/internal/handlers"
	"github.com/markjessn/mini-pms/internal/logging"
	"github.com/markjessn/mini-pms/internal/middleware"
	"github.com/markjessn/mini-pms/internal/notify"
	"github.com/markjessn/mini-pms/internal/repository"
	"github.com/markjessn/mini-pms/internal/services"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogFile)

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logging.Logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		logging.Logger.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)

	// Notification hub
	hub := notify.NewHub()

	// Services
	authService := services.NewAuthService(userRepo, orgRepo)
	orgService := services.NewOrganizationService(orgRepo)
	projectService := services.NewProjectService(projectRepo, orgRepo, hub)
	taskService := services.NewTaskService(taskRepo, projectRepo, hub)
	commentService := services.NewCommentService(commentRepo, taskRepo, hub)
	statsService := services.NewStatisticsService(statsRepo, orgRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService, commentService)
	statsHandler := handlers.NewStatisticsHandler(statsService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.ResolveTenant())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Organization routes
		orgs := api.Group("/organizations")
		{
			orgs.GET("", orgHandler.ListOrganizations)
			orgs.GET("/:slug", orgHandler.GetOrganization)
			orgs.POST("", orgHandler.CreateOrganization)
			orgs.PUT("/:id", middleware.RequireAuth(), orgHandler.UpdateOrganization)
			orgs.DELETE("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), orgHandler.DeleteOrganization)
			orgs.POST("/:id/members", middleware.RequireAuth(), middleware.RequireAdmin(), authHandler.CreateOrgMember)
		}
		api.DELETE("/members/:id", middleware.RequireAuth(), middleware.RequireAdmin(), authHandler.DeleteOrgMember)

		// Tenant-scoped routes: every request must carry a resolvable
		// X-Organization-Slug header.
		tenant := api.Group("")
		tenant.Use(middleware.RequireTenant())
		{
			tenant.GET("/projects", projectHandler.ListProjects)
			tenant.GET("/projects/:id", projectHandler.GetProject)
			tenant.POST("/projects", projectHandler.CreateProject)
			tenant.PATCH("/projects/:id", projectHandler.UpdateProject)
			tenant.DELETE("/projects/:id", projectHandler.DeleteProject)

			tenant.GET("/tasks", taskHandler.ListTasks)
			tenant.GET("/tasks/:id", taskHandler.GetTask)
			tenant.POST("/tasks", taskHandler.CreateTask)
			tenant.PATCH("/tasks/:id", taskHandler.UpdateTask)
			tenant.DELETE("/tasks/:id", taskHandler.DeleteTask)

			tenant.GET("/tasks/:id/comments", taskHandler.ListTaskComments)
			tenant.POST("/tasks/:id/comments", taskHandler.AddTaskComment)
			tenant.DELETE("/comments/:id", taskHandler.DeleteTaskComment)

			tenant.GET("/statistics", statsHandler.GetProjectStatistics)
		}
	}

	// Real-time subscription endpoints
	ws := r.Group("/ws")
	{
		ws.GET("/projects/:id/tasks", wsHandler.SubscribeProjectTasks)
		ws.GET("/tasks/:id/comments", wsHandler.SubscribeTaskComments)
		ws.GET("/organizations/:slug/projects", wsHandler.SubscribeOrganizationProjects)
	}

	logging.Logger.Infof("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logging.Logger.Fatalf("Failed to start server: %v", err)
	}
}
