package main

import (
	"context"
	"gin-marketplace/controllers"
	"gin-marketplace/infra"
	"gin-marketplace/middlewares"
	"gin-marketplace/models"
	"gin-marketplace/repositories"
	"gin-marketplace/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, secretKey string) *gin.Engine {
	tokenService := services.NewTokenService(secretKey)

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository, tokenService)
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(authService)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})
	r.GET("/files/*filepath", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"file_path": ctx.Param("filepath")})
	})
	r.POST("/token", authController.TokenLogin)

	api := r.Group("/api/v1")
	api.POST("/auth/login", authController.Login)

	userRouter := api.Group("/users")
	userRouterWithAuth := api.Group("/users", middlewares.AuthMiddleware(authService))
	userRouter.POST("/create", userController.Create)
	userRouterWithAuth.GET("/me", userController.Me)
	userRouter.GET("/", middlewares.RequireBearerToken(), userController.List)

	itemRouter := api.Group("/items")
	itemRouterWithAuth := api.Group("/items", middlewares.AuthMiddleware(authService))
	itemRouterWithAdminAuth := api.Group("/items", middlewares.AuthMiddleware(authService), middlewares.RoleBasedAccessControl("admin"))

	itemRouter.GET("", itemController.FindAll)
	itemRouterWithAuth.GET("/me", itemController.FindMine)
	itemRouter.GET("/:id", itemController.FindById)
	itemRouterWithAuth.POST("/create", itemController.Create)
	itemRouter.PUT("/:id", middlewares.RequireBearerToken(), itemController.Update)
	itemRouterWithAdminAuth.DELETE("/:id", itemController.Delete)

	return r
}

func initDB() *gorm.DB {
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		panic("Failed to migrate database")
	}

	return db
}

func main() {
	infra.Initialize()
	secretKey := infra.SecretKey()

	db := initDB()
	r := setupRouter(db, secretKey)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
