package routes

import (
	"community-scheduler-backend/internal/api/handlers"
	"community-scheduler-backend/internal/api/middleware"
	"community-scheduler-backend/internal/auth"
	"community-scheduler-backend/internal/config"
	"community-scheduler-backend/internal/repository"
	"community-scheduler-backend/internal/scheduler"
	"community-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and handlers into the HTTP router
func SetupRouter(db *gorm.DB, cfg *config.Config, log *logrus.Entry) *gin.Engine {
	// Repositories
	roleRepo := repository.NewRoleRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	conflictRepo := repository.NewConflictRepository(db)
	obstacleRepo := repository.NewObstacleRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	specialDateRepo := repository.NewSpecialDateRepository(db)
	weekRevRepo := repository.NewWeekRevisionRepository(db)

	// Services
	statsDate := cfg.StatsDateTime()
	roleService := service.NewRoleService(roleRepo)
	taskService := service.NewTaskService(taskRepo, roleRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	conflictService := service.NewConflictService(conflictRepo, taskRepo)
	obstacleService := service.NewObstacleService(obstacleRepo, userRepo, taskRepo, scheduleRepo)
	scheduleService := service.NewScheduleService(
		scheduleRepo, userRepo, taskRepo, conflictRepo, obstacleRepo,
		specialDateRepo, weekRevRepo, scheduler.NewEngine(), statsDate)
	statisticsService := service.NewStatisticsService(scheduleRepo, userRepo, taskRepo, statsDate)
	specialDateService := service.NewSpecialDateService(specialDateRepo)
	authService := auth.NewService(userRepo, cfg)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	roleHandler := handlers.NewRoleHandler(roleService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService, statisticsService)
	conflictHandler := handlers.NewConflictHandler(conflictService)
	obstacleHandler := handlers.NewObstacleHandler(obstacleService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	specialDateHandler := handlers.NewSpecialDateHandler(specialDateService)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/google", authHandler.GoogleAuthURL)
		authGroup.GET("/google/callback", authHandler.GoogleCallback)
		authGroup.GET("/validate", auth.RequireAuth(authService), authHandler.Validate)
	}

	authed := api.Group("")
	authed.Use(auth.RequireAuth(authService))

	roles := authed.Group("/roles")
	{
		roles.GET("", roleHandler.ListRoles)
		roles.GET("/:id", roleHandler.GetRole)
		roles.POST("", auth.RequireSupervisor(), roleHandler.CreateRole)
		roles.PUT("/sort-orders", auth.RequireSupervisor(), roleHandler.UpdateSortOrders)
		roles.PUT("/visibilities", auth.RequireSupervisor(), roleHandler.UpdateVisibilities)
		roles.PUT("/:id", auth.RequireSupervisor(), roleHandler.UpdateRole)
		roles.DELETE("/:id", auth.RequireSupervisor(), roleHandler.DeleteRole)
	}

	tasks := authed.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/visible-in-obstacle-form", taskHandler.ListTasksVisibleInObstacleForm)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.POST("", auth.RequireSupervisor(), taskHandler.CreateTask)
		tasks.PUT("/:id", auth.RequireSupervisor(), taskHandler.UpdateTask)
		tasks.DELETE("/:id", auth.RequireSupervisor(), taskHandler.DeleteTask)
	}

	users := authed.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/current", userHandler.GetCurrentUser)
		users.GET("/:id", userHandler.GetUser)
		users.GET("/:id/statistics", userHandler.GetUserStatistics)
		users.POST("", auth.RequireSupervisor(), userHandler.CreateUser)
		users.PUT("/:id", auth.RequireSupervisor(), userHandler.UpdateUser)
		users.DELETE("/:id", auth.RequireSupervisor(), userHandler.DeleteUser)
	}

	conflicts := authed.Group("/conflicts")
	{
		conflicts.GET("", conflictHandler.ListConflicts)
		conflicts.GET("/:id", conflictHandler.GetConflict)
		conflicts.POST("", auth.RequireSupervisor(), conflictHandler.CreateConflict)
		conflicts.PUT("/:id", auth.RequireSupervisor(), conflictHandler.UpdateConflict)
		conflicts.DELETE("/:id", auth.RequireSupervisor(), conflictHandler.DeleteConflict)
	}

	obstacles := authed.Group("/obstacles")
	{
		obstacles.GET("", auth.RequireSupervisor(), obstacleHandler.ListObstacles)
		obstacles.GET("/count", auth.RequireSupervisor(), obstacleHandler.CountObstaclesByStatus)
		obstacles.GET("/users/:userId", obstacleHandler.ListObstaclesByUser)
		obstacles.GET("/tasks/:taskId", auth.RequireSupervisor(), obstacleHandler.ListObstaclesByTask)
		obstacles.GET("/:id", obstacleHandler.GetObstacle)
		obstacles.POST("", obstacleHandler.CreateObstacle)
		obstacles.PATCH("/:id", auth.RequireSupervisor(), obstacleHandler.PatchObstacle)
		obstacles.DELETE("/:id", obstacleHandler.DeleteObstacle)
	}

	schedules := authed.Group("/schedules")
	{
		schedules.GET("", scheduleHandler.ListSchedulesInWeek)
		schedules.GET("/week-revision", scheduleHandler.GetWeekRevision)
		schedules.GET("/week/by-users", scheduleHandler.GetWeekShortInfoByUsers)
		schedules.GET("/week/by-tasks", scheduleHandler.GetWeekShortInfoByTasks)
		schedules.GET("/users/:userId", scheduleHandler.ListSchedulesByUser)
		schedules.GET("/users/:userId/available-tasks", scheduleHandler.ListAvailableTasks)
		schedules.GET("/users/:userId/dependencies", scheduleHandler.GetUserDependencies)
		schedules.GET("/users/:userId/dependencies/daily", scheduleHandler.GetUserDependenciesDaily)
		schedules.POST("", auth.RequireSupervisor(), scheduleHandler.CreateSchedule)
		schedules.POST("/week", auth.RequireSupervisor(), scheduleHandler.AssignWeek)
		schedules.DELETE("/week", auth.RequireSupervisor(), scheduleHandler.UnassignWeek)
		schedules.POST("/generate", auth.RequireSupervisor(), scheduleHandler.GenerateWeek)
		schedules.DELETE("/:id", auth.RequireSupervisor(), scheduleHandler.DeleteSchedule)
	}

	specialDates := authed.Group("/special-dates")
	{
		specialDates.GET("", specialDateHandler.ListSpecialDates)
		specialDates.POST("", auth.RequireSupervisor(), specialDateHandler.CreateSpecialDate)
		specialDates.DELETE("/:id", auth.RequireSupervisor(), specialDateHandler.DeleteSpecialDate)
	}

	return router
}
