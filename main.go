package main

import (
	"fmt"
	"log"
	"os"

	"gonotes/handler"
	"gonotes/middleware"
	"gonotes/repository"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"PORT",
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	// Initialize JWT
	utils.InitJWT()
	// Initialize MongoDB connection
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

func setupRouter(userService *usecase.UserService, notesService *usecase.NotesService) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20)) // 1 MiB

	// Operational endpoints
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	router.POST("/create-account", func(c *gin.Context) {
		handler.RegistrationHandler(c, userService)
	})
	router.POST("/login", func(c *gin.Context) {
		handler.LoginHandler(c, userService)
	})

	// Protected routes (authentication required)
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/get-user", func(c *gin.Context) {
			handler.GetUserHandler(c, userService)
		})

		protected.POST("/add-note", func(c *gin.Context) {
			handler.AddNoteHandler(c, notesService)
		})
		protected.PUT("/edit-note/:noteId", func(c *gin.Context) {
			handler.EditNoteHandler(c, notesService)
		})
		protected.GET("/get-all-notes", func(c *gin.Context) {
			handler.GetAllNotesHandler(c, notesService)
		})
		protected.DELETE("/delete-note/:noteId", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, notesService)
		})
		protected.PUT("/update-note-pinned/:noteId", func(c *gin.Context) {
			handler.UpdateNotePinnedHandler(c, notesService)
		})
		protected.GET("/search-notes", func(c *gin.Context) {
			handler.SearchNotesHandler(c, notesService)
		})
	}

	return router
}

func main() {
	userService := &usecase.UserService{
		Users: repository.GetUserRepo(utils.MongoClient),
	}
	notesService := &usecase.NotesService{
		Notes: repository.GetNotesRepo(utils.MongoClient),
	}

	router := setupRouter(userService, notesService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
