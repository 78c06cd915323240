package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"vacation-rentals/config"
	"vacation-rentals/database"
	"vacation-rentals/publishers"
	"vacation-rentals/repositories"
	"vacation-rentals/routes"
	"vacation-rentals/services"
	"vacation-rentals/utils"
)

func main() {
	// ============================================
	// 1. CONFIGURATION
	// ============================================
	cfg := config.LoadConfig()
	utils.InitLogger("vacation-rentals", cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	utils.Logger.Info("🔧 Configuration loaded:")
	utils.Logger.Infof("   - DB driver: %s", cfg.DB.Driver)
	utils.Logger.Infof("   - Port: %s", cfg.Port)
	if cfg.SessionSecret == "default-secret-change-in-production" {
		utils.Logger.Warn("SESSION_SECRET is not set, using the development default")
	}

	// ============================================
	// 2. DATABASE
	// ============================================
	utils.Logger.Infof("📡 Connecting to %s...", cfg.DB.Driver)
	db, err := database.Open(cfg.DB)
	if err != nil {
		utils.Logger.Fatalf("❌ Failed to connect to database: %v", err)
	}
	utils.Logger.Info("🔄 Running migrations...")
	if err := database.Migrate(db); err != nil {
		utils.Logger.Fatalf("❌ Failed to migrate database: %v", err)
	}
	utils.Logger.Info("✅ Tables created/updated")

	// ============================================
	// 3. LAYERS
	// ============================================
	utils.Logger.Info("🏗️  Initializing layers...")
	var publisher publishers.PropertyEventPublisher = publishers.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbit, err := publishers.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			utils.Logger.Fatalf("Failed to create RabbitMQ publisher: %v", err)
		}
		publisher = rabbit
	}
	defer publisher.Close()

	tx := repositories.NewTransactor(db)
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost, cfg.ListingCacheTTL)

	userService := services.NewUserService(userRepo, tx)
	propertyService := services.NewPropertyService(propertyRepo, userRepo, cacheRepo, tx, publisher)

	utils.Logger.Info("✅ Layers initialized")

	if !cfg.RedirectAuthenticated {
		utils.Logger.Debug("Authenticated users are not redirected away from /login and /register")
	}

	router, err := routes.SetupRouter(routes.Dependencies{
		Config:          cfg,
		Signer:          utils.NewSessionSigner(cfg.SessionSecret, cfg.SessionTTL),
		UserService:     userService,
		PropertyService: propertyService,
	})
	if err != nil {
		utils.Logger.Fatalf("❌ Failed to build router: %v", err)
	}
	utils.Logger.Info("✅ Routes configured:")
	for _, route := range router.Routes() {
		utils.Logger.Infof("   - %-6s %s", route.Method, route.Path)
	}

	// ============================================
	// 4. SERVER
	// ============================================
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		utils.Logger.Infof("🚀 Vacation rentals listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.Errorf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	utils.Logger.Info("Server exited")
}
