package main

import (
	"fmt"
	"net/http"
	"os"

	"assistec/internal/cache"
	"assistec/internal/config"
	"assistec/internal/database"
	"assistec/internal/handlers"
	"assistec/internal/logger"
	"assistec/internal/middleware"
	"assistec/internal/services"
	"assistec/internal/storage"
	"assistec/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "assistec/internal/docs" // Import swagger docs
)

// @title           Assistec API
// @version         1.0
// @description     Assistec is the backend for a repair service business site: a public landing page plus an admin panel with a financial ledger, gallery, advisory results, notes, and credential management.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Media storage for gallery uploads
	store, err := storage.NewDisk(appConfig.UploadDir, appConfig.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize media storage: %w", err)
	}

	// Public content cache
	contentCache, err := cache.New()
	if err != nil {
		return fmt.Errorf("failed to initialize content cache: %w", err)
	}
	defer contentCache.Close()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	galleryService := services.NewGalleryService(db, store, appConfig.MaxUploadBytes)
	businessService := services.NewBusinessService(db)
	advisoryService := services.NewAdvisoryService(db)
	credentialService := services.NewCredentialService(db)
	noteService := services.NewNoteService(db)

	// Bootstrap the first owner account on an empty database
	if err := userService.EnsureOwner(appConfig.AdminEmail, appConfig.AdminPassword); err != nil {
		return fmt.Errorf("failed to bootstrap owner account: %w", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	galleryHandler := handlers.NewGalleryHandler(galleryService, contentCache)
	businessHandler := handlers.NewBusinessHandler(businessService, contentCache)
	advisoryHandler := handlers.NewAdvisoryHandler(advisoryService, contentCache)
	credentialHandler := handlers.NewCredentialHandler(credentialService)
	noteHandler := handlers.NewNoteHandler(noteService)
	publicHandler := handlers.NewPublicHandler(businessService, galleryService, advisoryService, contentCache)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded gallery media
	router.Static("/media", appConfig.UploadDir)

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	public := v1.Group("/public")
	public.GET("/business", publicHandler.GetBusinessInfo)
	public.GET("/gallery", publicHandler.GetGallery)
	public.GET("/results", publicHandler.GetResults)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetPeriodTransactions)
	transactions.GET("/summary", transactionHandler.GetPeriodSummary)
	transactions.GET("/categories", transactionHandler.GetCategories)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Business profile routes
	business := protected.Group("/business")
	business.GET("", businessHandler.GetInfo)
	business.PUT("", businessHandler.UpdateInfo)

	// Gallery routes
	gallery := protected.Group("/gallery")
	gallery.GET("", galleryHandler.ListImages)
	gallery.POST("", galleryHandler.UploadImage)
	gallery.PUT("/:id", galleryHandler.UpdateImage)
	gallery.DELETE("/:id", galleryHandler.DeleteImage)

	// Advisory result routes
	results := protected.Group("/results")
	results.GET("", advisoryHandler.ListResults)
	results.PUT("", advisoryHandler.SaveResults)
	results.DELETE("/:id", advisoryHandler.DeleteResult)

	// Note routes
	notes := protected.Group("/notes")
	notes.GET("", noteHandler.ListNotes)
	notes.POST("", noteHandler.CreateNote)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.POST("/:id/pin", noteHandler.TogglePin)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	// Owner-only routes
	ownerOnly := protected.Group("/")
	ownerOnly.Use(middleware.RequireOwner())

	credentials := ownerOnly.Group("/credentials")
	credentials.GET("", credentialHandler.ListCredentials)
	credentials.POST("", credentialHandler.CreateCredential)
	credentials.PUT("/:id", credentialHandler.UpdateCredential)
	credentials.DELETE("/:id", credentialHandler.DeleteCredential)

	users := ownerOnly.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("/roles", userHandler.ListRoles)
	users.DELETE("/roles/:id", userHandler.RevokeRole)

	log.Infof("Starting Assistec backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
