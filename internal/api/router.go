package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/stormapp/canteen-api/docs"
	"github.com/stormapp/canteen-api/internal/api/handler"
	"github.com/stormapp/canteen-api/internal/api/middleware"
	"github.com/stormapp/canteen-api/internal/core/service"
	mongodb "github.com/stormapp/canteen-api/internal/infrastructure/db/mongo"
	redisdb "github.com/stormapp/canteen-api/internal/infrastructure/db/redis"
	"github.com/stormapp/canteen-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("canteen"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	categoryRepo := mongodb.NewCategoryRepository(db)
	menuItemRepo := mongodb.NewMenuItemRepository(db)
	selectionRepo := mongodb.NewSelectionRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	resetTokens := redisdb.NewResetTokenStore(rdb)

	categoryService := service.NewCategoryService(categoryRepo, log)
	menuItemService := service.NewMenuItemService(menuItemRepo, log)
	selectionService := service.NewSelectionService(selectionRepo, log)
	displayService := service.NewMenuDisplayService(selectionRepo, menuItemRepo, log)
	authService := service.NewAuthService(authRepo, resetTokens, jwtSecret, time.Hour, log)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	menuItemHandler := handler.NewMenuItemHandler(menuItemService)
	selectionHandler := handler.NewSelectionHandler(selectionService)
	displayHandler := handler.NewMenuDisplayHandler(displayService)
	authHandler := handler.NewAuthHandler(authService, jwtSecret)

	requireAuth := middleware.Auth(jwtSecret)
	requireAdmin := middleware.RequireAdmin()

	// --- Public routes ---
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/logout", authHandler.Logout)
	e.POST("/api/forgot-password", authHandler.ForgotPassword)
	e.POST("/api/reset-password", authHandler.ResetPassword)
	e.GET("/api/storm/me", authHandler.Me)
	e.GET("/api/daily_menu_display", displayHandler.Get)

	// --- Authenticated routes ---
	authed := e.Group("/api", requireAuth)
	authed.GET("/categories", categoryHandler.List)
	authed.GET("/category/:category_id", categoryHandler.Get)
	authed.GET("/menu_items", menuItemHandler.List)
	authed.GET("/menu_item/:menu_item_id", menuItemHandler.Get)
	authed.GET("/user_selections", selectionHandler.Get)
	authed.POST("/user_selections", selectionHandler.Submit)

	// --- Admin routes ---
	admin := e.Group("/api", requireAuth, requireAdmin)
	admin.POST("/category", categoryHandler.Create)
	admin.PUT("/category/:category_id", categoryHandler.Update)
	admin.DELETE("/category/:category_id", categoryHandler.Delete)
	admin.POST("/menu_item", menuItemHandler.Create)
	admin.PUT("/menu_item/:menu_item_id", menuItemHandler.Update)
	admin.DELETE("/menu_item/:menu_item_id", menuItemHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
