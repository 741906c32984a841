// Package app wires repositories, services and controllers together. Both
// the server entrypoint and the test suites build the application through it,
// so every dependency stays injectable.
package app

import (
	"log/slog"

	"teamcamp/internal/authz"
	"teamcamp/internal/config"
	"teamcamp/internal/features/activity"
	"teamcamp/internal/features/files"
	projects_controllers "teamcamp/internal/features/projects/controllers"
	projects_repositories "teamcamp/internal/features/projects/repositories"
	projects_services "teamcamp/internal/features/projects/services"
	system_healthcheck "teamcamp/internal/features/system/healthcheck"
	"teamcamp/internal/features/tasks"
	users_controllers "teamcamp/internal/features/users/controllers"
	users_middleware "teamcamp/internal/features/users/middleware"
	users_repositories "teamcamp/internal/features/users/repositories"
	users_services "teamcamp/internal/features/users/services"
	"teamcamp/internal/objectstore"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	IdentityService *users_services.IdentityService
	Resolver        *authz.Resolver

	authController        *users_controllers.AuthController
	projectController     *projects_controllers.ProjectController
	membershipController  *projects_controllers.MembershipController
	taskController        *tasks.TaskController
	fileController        *files.FileController
	activityController    *activity.ActivityController
	healthcheckController *system_healthcheck.HealthcheckController

	cfg *config.Config
	log *slog.Logger
}

func New(db *gorm.DB, objects objectstore.Remover, cfg *config.Config, log *slog.Logger) *App {
	userRepository := users_repositories.NewUserRepository(db)
	projectRepository := projects_repositories.NewProjectRepository(db)
	membershipRepository := projects_repositories.NewMembershipRepository(db)
	guestRepository := projects_repositories.NewGuestMemberRepository(db)
	taskRepository := tasks.NewTaskRepository(db)
	fileRepository := files.NewFileRepository(db)
	activityRepository := activity.NewActivityRepository(db)

	resolver := authz.NewResolver(projects_repositories.NewAuthorizationStore(db))

	identityService := users_services.NewIdentityService(cfg.JWTSecret, userRepository)
	activityService := activity.NewActivityService(activityRepository, resolver, log)
	projectService := projects_services.NewProjectService(
		projectRepository, membershipRepository, resolver, activityService)
	membershipService := projects_services.NewMembershipService(
		membershipRepository, guestRepository, userRepository, resolver, activityService)
	taskService := tasks.NewTaskService(taskRepository, resolver, activityService)
	fileService := files.NewFileService(fileRepository, objects, resolver, activityService, log)
	healthcheckService := system_healthcheck.NewHealthcheckService(db)

	return &App{
		IdentityService: identityService,
		Resolver:        resolver,

		authController:        users_controllers.NewAuthController(),
		projectController:     projects_controllers.NewProjectController(projectService, log),
		membershipController:  projects_controllers.NewMembershipController(membershipService, log),
		taskController:        tasks.NewTaskController(taskService, log),
		fileController:        files.NewFileController(fileService, log),
		activityController:    activity.NewActivityController(activityService, log),
		healthcheckController: system_healthcheck.NewHealthcheckController(healthcheckService),

		cfg: cfg,
		log: log,
	}
}

// Router builds the HTTP surface: public health and docs, everything else
// behind bearer authentication under /api/v1.
func (a *App) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	if a.cfg.EnvMode == config.EnvModeDevelopment {
		engine.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
			},
			AllowCredentials: true,
		}))
	}

	v1 := engine.Group("/api/v1")

	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	a.healthcheckController.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware(a.IdentityService))

	a.authController.RegisterRoutes(protected)
	a.projectController.RegisterRoutes(protected)
	a.membershipController.RegisterRoutes(protected)
	a.taskController.RegisterRoutes(protected)
	a.fileController.RegisterRoutes(protected)
	a.activityController.RegisterRoutes(protected)

	return engine
}
