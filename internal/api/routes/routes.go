package routes

import (
	"task-orchestrator-backend/internal/api/handlers"
	"task-orchestrator-backend/internal/api/middleware"
	"task-orchestrator-backend/internal/config"
	"task-orchestrator-backend/internal/hub"
	"task-orchestrator-backend/internal/repository"
	"task-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize persistence layer
	store := repository.NewStore(db)
	uow := repository.NewUnitOfWork(db)

	// Initialize services
	taskService := service.NewTaskService(store, uow, validator)
	projectService := service.NewProjectService(store, uow, validator)
	userService := service.NewUserService(store, uow, validator)
	teamService := service.NewTeamService(store, uow, validator)
	commentService := service.NewCommentService(store, uow, validator)

	// Initialize the broadcast hub
	taskHub := hub.New()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService, taskHub)
	projectHandler := handlers.NewProjectHandler(projectService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Real-time task notifications
	router.GET("/ws/tasks", gin.WrapF(taskHub.ServeWS))

	// API routes
	api := router.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetAllTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.GET("/user/:userId", taskHandler.GetTasksByUser)
			tasks.GET("/project/:projectId", taskHandler.GetTasksByProject)
			tasks.GET("/:id/comments", commentHandler.GetTaskComments)
			tasks.POST("/:id/comments", commentHandler.CreateTaskComment)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.GetAllProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("", projectHandler.CreateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.GetAllUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.GetAllTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", teamHandler.CreateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.GetTeamMembers)
			teams.POST("/:id/members", teamHandler.AddTeamMember)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveTeamMember)
		}

		comments := api.Group("/comments")
		{
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}
	}

	return router
}
