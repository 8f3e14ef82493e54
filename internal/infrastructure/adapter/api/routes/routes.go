package routes

import (
	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Auth     *handler.AuthHandler
	Card     *handler.CardHandler
	Transfer *handler.TransferHandler
	Admin    *handler.AdminHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth usecase.AuthUseCase, logger coreport.Logger) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")

	// Public
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
	}

	authenticated := api.Group("", middleware.Authenticate(auth, logger))

	// Owner scoped
	cardRoutes := authenticated.Group("/cards")
	{
		cardRoutes.GET("", h.Card.ListCards)
		cardRoutes.GET("/all", h.Card.ListAllCards)
		cardRoutes.GET("/filter", h.Card.FilterCards)
		cardRoutes.GET("/transfers", h.Transfer.History)
		cardRoutes.GET("/:id", h.Card.GetCard)
		cardRoutes.POST("", h.Card.IssueCard)
		cardRoutes.POST("/transfer", h.Transfer.Transfer)
		cardRoutes.PATCH("/:id/status", h.Card.UpdateStatus)
		cardRoutes.DELETE("/:id", h.Card.DeleteCard)
	}

	adminRoutes := authenticated.Group("/admin", middleware.RequireRole(entity.RoleAdmin))
	{
		adminRoutes.GET("/cards", h.Admin.ListCards)
		adminRoutes.GET("/cards/filter", h.Admin.FilterCards)
		adminRoutes.POST("/cards", h.Admin.IssueCard)
		adminRoutes.PATCH("/cards/:id/status", h.Admin.UpdateStatus)
		adminRoutes.DELETE("/cards/:id", h.Admin.DeleteCard)
		adminRoutes.POST("/users", h.Admin.CreateUser)
		adminRoutes.DELETE("/users/:id", h.Admin.DeleteUser)
		adminRoutes.POST("/sweep", h.Admin.Sweep)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
