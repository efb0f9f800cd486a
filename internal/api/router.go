package api

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/webshop/webshop-api/internal/api/handler"
	"github.com/webshop/webshop-api/internal/api/middleware"
	"github.com/webshop/webshop-api/internal/core/domain"
	"github.com/webshop/webshop-api/internal/core/service"
	"github.com/webshop/webshop-api/internal/infrastructure/catalog"
	mongostore "github.com/webshop/webshop-api/internal/infrastructure/db/mongo"
	redisstore "github.com/webshop/webshop-api/internal/infrastructure/db/redis"
	"github.com/webshop/webshop-api/internal/pkg/config"
)

// userIDPattern is the shape of a single-user route id. Anything else is an
// unknown path, answered 404 before authentication is even attempted.
var userIDPattern = regexp.MustCompile(`^[0-9a-z]{8,24}$`)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login throttling is then disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Auth.Realm)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("webshop"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisstore.NewLoginThrottle(rdb, cfg.Auth.FailureWindow)
	}
	authService := service.NewAuthService(userRepo, throttle, cfg.Auth.MaxLoginFailures, log)
	userService := service.NewUserService(userRepo, log)

	catalogRepo, err := catalog.NewRepository()
	if err != nil {
		return nil, err
	}
	productService := service.NewProductService(catalogRepo, log)

	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	basicAuth := middleware.BasicAuth(authService, cfg.Auth.Realm)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	anyRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleCustomer)
	acceptJSON := middleware.AcceptJSON()

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/register", userHandler.Register, acceptJSON, middleware.RequireJSONBody())
	api.GET("/users", userHandler.List, acceptJSON, basicAuth, adminOnly)
	api.GET("/products", productHandler.List, acceptJSON, basicAuth, anyRole)

	api.GET("/users/:id", userHandler.Get, validUserID, basicAuth, adminOnly)
	api.PUT("/users/:id", userHandler.UpdateRole, validUserID, basicAuth, adminOnly)
	api.DELETE("/users/:id", userHandler.Delete, validUserID, basicAuth, adminOnly)

	for path := range allowedMethods {
		e.OPTIONS(path, handleOptions)
	}

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Static assets: every other GET falls through to public/ ---
	mountStatic(e, cfg.PublicDir)

	return e, nil
}

// mountStatic serves the public assets for every GET no API route claimed.
// Static registers only GET /*, which would make a non-GET request to an
// unknown path read as 405; the explicit fallbacks keep it a 404.
func mountStatic(e *echo.Echo, dir string) {
	e.Static("/", dir)
	for _, method := range []string{
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodHead,
		http.MethodOptions,
	} {
		e.Add(method, "/*", func(echo.Context) error { return echo.ErrNotFound })
	}
}

// validUserID turns a request whose id segment does not have the expected
// shape into a plain 404, keeping malformed paths indistinguishable from
// unknown ones.
func validUserID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !userIDPattern.MatchString(c.Param("id")) {
			return echo.ErrNotFound
		}
		return next(c)
	}
}
