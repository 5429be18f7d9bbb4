package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	projectUsecases "trackd/internal/application/project/usecases"
	ticketUsecases "trackd/internal/application/ticket/usecases"
	userUsecases "trackd/internal/application/user/usecases"
	"trackd/internal/domain/ticket"
	"trackd/internal/infrastructure/auth"
	"trackd/internal/infrastructure/config"
	"trackd/internal/infrastructure/repository"
	"trackd/internal/infrastructure/services"
	projecthandlers "trackd/internal/interfaces/http/handlers/project"
	tickethandlers "trackd/internal/interfaces/http/handlers/ticket"
	userhandlers "trackd/internal/interfaces/http/handlers/user"
	"trackd/internal/interfaces/http/middleware"
	"trackd/internal/interfaces/http/routes"
	"trackd/internal/shared/db"
	"trackd/internal/shared/logger"
)

// Router wires repositories, use cases, handlers and middleware into a
// gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	ticketHandler  *tickethandlers.TicketHandler
	userHandler    *userhandlers.UserHandler
	projectHandler *projecthandlers.ProjectHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	log            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)
	modificationRepo := repository.NewModificationRepository(database)
	projectRepo := repository.NewProjectRepository(database)

	allocator := services.NewGormIDAllocator(database)
	txManager := db.NewTransactionManager(database)
	accessPolicy := ticket.NewAccessPolicy(userRepo, ticketRepo, assignmentRepo)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, allocator, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(accessPolicy, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(userRepo, ticketRepo, assignmentRepo, log)
	editTicketUC := ticketUsecases.NewEditTicketUseCase(userRepo, ticketRepo, modificationRepo, allocator, txManager, log)
	changeStatusUC := ticketUsecases.NewChangeStatusUseCase(accessPolicy, ticketRepo, log)
	changePriorityUC := ticketUsecases.NewChangePriorityUseCase(accessPolicy, ticketRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(accessPolicy, ticketRepo, commentRepo, assignmentRepo, txManager, log)
	assignTicketUC := ticketUsecases.NewAssignTicketUseCase(accessPolicy, userRepo, assignmentRepo, allocator, log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(accessPolicy, commentRepo, allocator, log)
	listCommentsUC := ticketUsecases.NewListCommentsUseCase(accessPolicy, commentRepo, log)
	deleteCommentUC := ticketUsecases.NewDeleteCommentUseCase(accessPolicy, commentRepo, log)

	ensureUserUC := userUsecases.NewEnsureUserUseCase(userRepo, allocator, log)
	getUserByIDUC := userUsecases.NewGetUserByIDUseCase(userRepo, log)
	getUserByEmailUC := userUsecases.NewGetUserByEmailUseCase(userRepo, log)

	createProjectUC := projectUsecases.NewCreateProjectUseCase(projectRepo, userRepo, allocator, log)
	listProjectsUC := projectUsecases.NewListProjectsUseCase(projectRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC,
		getTicketUC,
		listTicketsUC,
		editTicketUC,
		changeStatusUC,
		changePriorityUC,
		deleteTicketUC,
		assignTicketUC,
		addCommentUC,
		listCommentsUC,
		deleteCommentUC,
		log,
	)
	userHandler := userhandlers.NewUserHandler(getUserByIDUC, getUserByEmailUC, log)
	projectHandler := projecthandlers.NewProjectHandler(createProjectUC, listProjectsUC, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.Audience)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, ensureUserUC, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		ticketHandler:  ticketHandler,
		userHandler:    userHandler,
		projectHandler: projectHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		log:            log,
	}
}

// SetupRoutes registers middleware and all route groups
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupProjectRoutes(api, &routes.ProjectRouteConfig{
		ProjectHandler: r.projectHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
