package main

import (
	"log"
	"net/http"

	"github.com/VamsiKrishnaThota03/imf-gadget-api/docs"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/config"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/database"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/handlers"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/middleware"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/repository"
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Allow cross-origin requests from any origin
	r.Use(cors.Default())

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	gadgetRepo := repository.NewGadgetRepository(db)
	authService := services.NewAuthService(userRepo)
	gadgetService := services.NewGadgetService(gadgetRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret)
	gadgetHandler := handlers.NewGadgetHandler(gadgetService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "IMF Gadget API is running",
		})
	})

	// API documentation endpoint
	r.GET("/api-docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", docs.OpenAPI)
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Gadget routes (protected)
		gadgets := api.Group("/gadgets")
		gadgets.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			gadgets.GET("", gadgetHandler.ListGadgets)
			gadgets.POST("", gadgetHandler.CreateGadget)
			gadgets.PATCH("/:id", gadgetHandler.UpdateGadget)
			gadgets.DELETE("/:id", gadgetHandler.DeleteGadget)
			gadgets.POST("/:id/self-destruct", gadgetHandler.SelfDestruct)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
