package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "campusdesk/internal/application/auth/usecases"
	ticketusecases "campusdesk/internal/application/ticket/usecases"
	userusecases "campusdesk/internal/application/user/usecases"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/email"
	"campusdesk/internal/infrastructure/repository"
	"campusdesk/internal/infrastructure/storage"
	attachmenthandlers "campusdesk/internal/interfaces/http/handlers/attachment"
	authhandlers "campusdesk/internal/interfaces/http/handlers/auth"
	tickethandlers "campusdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "campusdesk/internal/interfaces/http/handlers/user"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/interfaces/http/routes"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine            *gin.Engine
	authHandler       *authhandlers.AuthHandler
	userHandler       *userhandlers.UserHandler
	ticketHandler     *tickethandlers.TicketHandler
	attachmentHandler *attachmenthandlers.AttachmentHandler
	authMiddleware    *middleware.AuthMiddleware
	allowedOrigins    []string
	log               logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpMinutes)

	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, userRepo, notifier, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, userRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, userRepo, notifier, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, userRepo, log)
	listCommentsUC := ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, userRepo, log)
	uploadUC := ticketusecases.NewUploadAttachmentUseCase(ticketRepo, attachmentRepo, store, log)
	downloadUC := ticketusecases.NewDownloadAttachmentUseCase(attachmentRepo, store, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, commentRepo, attachmentRepo, store, txManager, log)

	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC)
	userHandler := userhandlers.NewUserHandler(listUsersUC)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, listTicketsUC, getTicketUC, updateTicketUC,
		assignTicketUC, addCommentUC, listCommentsUC, deleteTicketUC,
	)
	attachmentHandler := attachmenthandlers.NewAttachmentHandler(uploadUC, downloadUC, cfg.Upload.MaxSizeBytes())

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:            engine,
		authHandler:       authHandler,
		userHandler:       userHandler,
		ticketHandler:     ticketHandler,
		attachmentHandler: attachmentHandler,
		authMiddleware:    authMiddleware,
		allowedOrigins:    cfg.Server.AllowedOrigins,
		log:               log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:     r.ticketHandler,
		AttachmentHandler: r.attachmentHandler,
		AuthMiddleware:    r.authMiddleware,
	})
	routes.SetupAttachmentRoutes(r.engine, &routes.AttachmentRouteConfig{
		AttachmentHandler: r.attachmentHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
