package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petcare-mx/platform/internal/api/handler"
	"github.com/petcare-mx/platform/internal/api/middleware"
	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
	"github.com/petcare-mx/platform/internal/core/service"
	"github.com/petcare-mx/platform/internal/infrastructure/config"
	"github.com/petcare-mx/platform/internal/infrastructure/crypto"
	mongodb "github.com/petcare-mx/platform/internal/infrastructure/db/mongo"
	redisdb "github.com/petcare-mx/platform/internal/infrastructure/db/redis"
	"github.com/petcare-mx/platform/internal/infrastructure/http/handlers"
	"github.com/petcare-mx/platform/internal/infrastructure/httpclient"
	"github.com/petcare-mx/platform/internal/infrastructure/token"
)

// newEcho builds an Echo instance with the middleware and plumbing
// every service shares: recovery, request ids, request logging,
// prometheus, validation, the error envelope, and the probe/metrics/
// swagger endpoints.
func newEcho(subsystem string, log zerolog.Logger, checks ...handlers.DependencyCheck) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(subsystem))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	healthHandler := handlers.NewHealthHandler()
	readyHandler := handlers.NewHealthDependenciesHandler(checks...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// NewAuthRouter wires the auth service: the login orchestrator backed
// by the user-service HTTP adapters, a redis attempt limiter, and the
// JWT issuer.
func NewAuthRouter(cfg *config.AuthConfig, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	userClient := httpclient.NewUserClient(cfg.UserServiceURL, cfg.UpstreamTimeout, log)

	var limiter ports.AttemptLimiter
	if rdb != nil {
		limiter = redisdb.NewAttemptLimiter(rdb, cfg.MaxLoginFailures, cfg.LoginWindow)
	}

	authService := service.NewAuthService(
		userClient,
		userClient,
		crypto.NewBcryptHasher(),
		token.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.TTL),
		limiter,
		log,
	)
	authHandler := handler.NewAuthHandler(authService)

	checks := []handlers.DependencyCheck{
		handlers.HTTPCheck("user_service", cfg.UserServiceURL+"/health"),
	}
	if rdb != nil {
		checks = append(checks, handlers.RedisCheck(rdb))
	}

	e := newEcho("petcare_auth", log, checks...)
	e.POST("/api/petcare/auth/login", authHandler.Login)

	return e
}

// NewUserRouter wires the user service: account registration, owner
// and vet lookups, and the internal auth-info endpoints consumed by
// the auth service.
func NewUserRouter(cfg *config.UserConfig, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	accountRepo := mongodb.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo, crypto.NewBcryptHasher(), log)
	accountHandler := handler.NewAccountHandler(accountService)
	authInfoHandler := handler.NewAuthInfoHandler(accountService)
	authRequired := middleware.Auth(cfg.JWT.Secret)
	vetOnly := middleware.RBAC(domain.RoleVet)

	e := newEcho("petcare_user", log, handlers.MongoCheck(db))

	g := e.Group("/api/petcare")

	// Public registration.
	g.POST("/register/user", accountHandler.RegisterOwner)
	g.POST("/register/vet", accountHandler.RegisterVet)

	// Internal: consumed by the auth service, reachable only on the
	// internal network.
	g.GET("/auth-info/:username", authInfoHandler.GetAuthInfo)
	g.GET("/auth-info/details/:id", authInfoHandler.GetAuthProfile)

	// Owner lookups are restricted to veterinarians.
	g.GET("/users", accountHandler.List(domain.RoleOwner), authRequired, vetOnly)
	g.GET("/user/:id", accountHandler.GetSummary(domain.RoleOwner), authRequired, vetOnly)
	g.GET("/user/details/:id", accountHandler.GetDetail(domain.RoleOwner), authRequired, vetOnly)
	g.GET("/user/exists/:id", accountHandler.Exists(domain.RoleOwner), authRequired)

	// Vet lookups are available to any authenticated account.
	g.GET("/vets", accountHandler.List(domain.RoleVet), authRequired)
	g.GET("/vet/:id", accountHandler.GetSummary(domain.RoleVet), authRequired)
	g.GET("/vet/details/:id", accountHandler.GetDetail(domain.RoleVet), authRequired)
	g.GET("/vet/exists/:id", accountHandler.Exists(domain.RoleVet), authRequired)

	return e
}

// NewPetRouter wires the pet service: pet CRUD plus the cross-service
// composites that join pets with owner and vet accounts.
func NewPetRouter(cfg *config.PetConfig, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	petRepo := mongodb.NewPetRepository(db)
	directory := httpclient.NewAccountDirectory(cfg.UserServiceURL, cfg.UpstreamTimeout, log)
	petService := service.NewPetService(petRepo, directory, log)
	petHandler := handler.NewPetHandler(petService)
	authRequired := middleware.Auth(cfg.JWT.Secret)

	e := newEcho("petcare_pet", log,
		handlers.MongoCheck(db),
		handlers.HTTPCheck("user_service", cfg.UserServiceURL+"/health"),
	)

	g := e.Group("/api/petcare", authRequired)

	g.POST("/pet", petHandler.Create, middleware.RBAC(domain.RoleOwner))
	g.GET("/pet/exists/:name", petHandler.Exists)
	g.GET("/pets/user/:id", petHandler.ListByOwner)
	g.GET("/pets/vet/:id", petHandler.ListByVet, middleware.RBAC(domain.RoleVet))
	g.GET("/pet/:petId/user/:userId", petHandler.DetailForOwner)
	g.GET("/pet/:petId/vet/:vetId", petHandler.DetailForVet, middleware.RBAC(domain.RoleVet))
	g.PUT("/pet/:petId/vet/:vetId", petHandler.AssignVet)

	return e
}
