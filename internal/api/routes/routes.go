package routes

import (
	"food-donation-backend/internal/api/handlers"
	"food-donation-backend/internal/api/middleware"
	"food-donation-backend/internal/auth"
	"food-donation-backend/internal/config"
	"food-donation-backend/internal/mailer"
	"food-donation-backend/internal/repository"
	"food-donation-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, mail mailer.Mailer) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator with custom rules
	validate := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organisationRepo := repository.NewOrganisationRepository(db)

	// Initialize auth
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	userService := service.NewUserService(userRepo, authService, mail, cfg, validate)
	organisationService := service.NewOrganisationService(organisationRepo, userRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	organisationHandler := handlers.NewOrganisationHandler(organisationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/verify-account", userHandler.VerifyAccount)
		users.GET("/profile", authMiddleware.RequireAuth(), userHandler.Profile)
		users.GET("/resend-confirmation-email", authMiddleware.RequireAuth(), userHandler.ResendConfirmationEmail)
	}

	organisations := api.Group("/organisations")
	organisations.Use(authMiddleware.RequireAuth())
	{
		organisations.POST("/register", organisationHandler.Register)
		organisations.GET("/my-organisations", organisationHandler.MyOrganisations)
		organisations.GET("/organisation/:id", organisationHandler.GetByID)
	}

	return router
}
