package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"appdrop-backend/internal/config"
	"appdrop-backend/internal/db"
	"appdrop-backend/internal/handlers"
	"appdrop-backend/internal/middleware"
	"appdrop-backend/internal/services"
	"appdrop-backend/internal/session"
	"appdrop-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	mongoDB := db.Connect(cfg.MongoURI, cfg.MongoDatabase)
	blobs := storage.NewMinio(storage.Options{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
		URLExpiry: cfg.URLExpiry,
	})

	sessions := session.NewContext()
	unsubscribe := sessions.Subscribe(func(ev session.Event) {
		log.Printf("Session %s: user=%s", ev.Type, ev.UserID)
	})
	defer unsubscribe()

	authService := services.NewAuthService(mongoDB, sessions, cfg.JWTSecret, cfg.TokenTTL, cfg.AdminEmail)
	fileService := services.NewFileService(mongoDB, blobs)
	userService := services.NewUserService(mongoDB)

	authHandler := handlers.NewAuthHandler(authService)
	fileHandler := handlers.NewFileHandler(fileService)
	adminHandler := handlers.NewAdminHandler(fileService, userService)

	requireAuth := middleware.RequireAuth([]byte(cfg.JWTSecret), sessions)

	// Auth routes
	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", requireAuth, authHandler.Logout)
	auth.Get("/me", requireAuth, authHandler.Me)

	// Dashboard routes
	files := app.Group("/files", requireAuth)
	files.Get("/", fileHandler.List)
	files.Get("/:id/download", fileHandler.Download)

	// Admin routes
	admin := app.Group("/admin", requireAuth, middleware.RequireAdmin())
	admin.Post("/upload", adminHandler.Upload)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id", adminHandler.UpdateUser)

	log.Fatal(app.Listen(":" + cfg.Port))
}
