// Package http assembles the gin engine from repositories, use cases and
// handlers.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	flagUsecases "switchboard/internal/application/flag/usecases"
	userUsecases "switchboard/internal/application/user/usecases"
	"switchboard/internal/infrastructure/auth"
	"switchboard/internal/infrastructure/cache"
	"switchboard/internal/infrastructure/config"
	"switchboard/internal/infrastructure/repository"
	syncclient "switchboard/internal/infrastructure/sync"
	"switchboard/internal/interfaces/http/handlers"
	adminhandlers "switchboard/internal/interfaces/http/handlers/admin"
	"switchboard/internal/interfaces/http/middleware"
	"switchboard/internal/interfaces/http/routes"
	"switchboard/internal/shared/logger"
	"switchboard/internal/shared/markdown"
)

// Router owns the engine and the dependency graph behind it.
type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	redis  *redis.Client
	cfg    *config.Config
	logger logger.Interface
}

func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	return &Router{
		engine: gin.New(),
		db:     db,
		redis:  redisClient,
		cfg:    cfg,
		logger: log,
	}
}

// SetupRoutes builds repositories, use cases and handlers, then registers
// every route group on the engine.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))

	flagRepo := repository.NewSwitchRepository(r.db, r.logger.Named("switch_repo"))
	historyRepo := repository.NewSwitchHistoryRepository(r.db, r.logger.Named("history_repo"))
	userRepo := repository.NewUserRepository(r.db, r.logger.Named("user_repo"))

	responseCache := cache.NewResponseCache(r.redis, "switchboard:", r.logger.Named("response_cache"))
	jwtService := auth.NewJWTService(&r.cfg.Auth.JWT)
	passwordHasher := auth.NewPasswordHasher(r.cfg.Auth.Password.BcryptCost)
	remote := syncclient.NewClient(r.cfg.Flag.SyncURL, r.cfg.Flag.SyncTimeout(), r.logger.Named("sync"))
	renderer := markdown.NewRenderer()

	evaluateFlags := flagUsecases.NewEvaluateFlagsUseCase(flagRepo, responseCache, r.cfg.Flag.CacheTTL(), r.logger)
	fullInfo := flagUsecases.NewFullInfoUseCase(flagRepo, r.logger)
	flagBadge := flagUsecases.NewFlagBadgeUseCase(flagRepo, r.cfg.Badge, r.logger)
	listFlags := flagUsecases.NewListFlagsUseCase(flagRepo, r.logger)
	getFlag := flagUsecases.NewGetFlagUseCase(flagRepo, historyRepo, renderer, r.cfg.Server.BaseURL, r.logger)
	createFlag := flagUsecases.NewCreateFlagUseCase(flagRepo, historyRepo, r.cfg.Flag.TTLDays, r.logger)
	updateFlag := flagUsecases.NewUpdateFlagUseCase(flagRepo, historyRepo, r.logger)
	deleteFlag := flagUsecases.NewDeleteFlagUseCase(flagRepo, r.logger)
	resurrectFlag := flagUsecases.NewResurrectFlagUseCase(flagRepo, r.logger)
	syncFlags := flagUsecases.NewSyncFlagsUseCase(flagRepo, remote, r.cfg.Flag.TTLDays, r.logger)

	login := userUsecases.NewLoginUseCase(userRepo, passwordHasher, jwtService, r.logger)
	listUsers := userUsecases.NewListUsersUseCase(userRepo, r.logger)
	getUser := userUsecases.NewGetUserUseCase(userRepo, r.logger)
	createUser := userUsecases.NewCreateUserUseCase(userRepo, passwordHasher, r.logger)
	updateUser := userUsecases.NewUpdateUserUseCase(userRepo, passwordHasher, r.logger)
	authorizeEdit := userUsecases.NewAuthorizeFlagEditUseCase(userRepo, r.logger)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, r.logger)

	routes.SetupPublicRoutes(r.engine, &routes.PublicRouteConfig{
		SwitchHandler: handlers.NewSwitchHandler(
			evaluateFlags,
			fullInfo,
			flagBadge,
			r.cfg.Flag.EnableFullInfoEndpoint,
			r.logger,
		),
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AuthHandler: handlers.NewAuthHandler(login, r.logger),
		SwitchHandler: adminhandlers.NewSwitchHandler(
			listFlags,
			getFlag,
			createFlag,
			updateFlag,
			deleteFlag,
			resurrectFlag,
			syncFlags,
			authorizeEdit,
			r.logger,
		),
		UserHandler:    adminhandlers.NewUserHandler(listUsers, getUser, createUser, updateUser, r.logger),
		AuthMiddleware: authMiddleware,
		AllowedOrigins: r.cfg.Server.AllowedOrigins,
	})
}

// GetEngine exposes the assembled engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
