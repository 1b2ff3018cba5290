package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"homeconnect.backend/internal/config"
	"homeconnect.backend/internal/infrastructure/paystack"
	"homeconnect.backend/internal/infrastructure/repositories"
	"homeconnect.backend/internal/interfaces/http/handlers"
	"homeconnect.backend/internal/interfaces/http/middleware"
	"homeconnect.backend/internal/usecases"
	"homeconnect.backend/pkg/jwt"
	"homeconnect.backend/pkg/logger"
	"homeconnect.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis only backs the payment idempotency cache; without it the
	// middleware passes requests through.
	if cfg.Redis.URL != "" {
		if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		logger.Info(context.Background(), "Redis initialized")
	} else {
		logger.Warn(context.Background(), "REDIS_URL not set, payment idempotency cache disabled")
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info(context.Background(), "Database ready", zap.String("name", cfg.Database.DBName))

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	if cfg.Paystack.SecretKey == "" {
		logger.Warn(context.Background(), "PAYSTACK_SECRET_KEY not set, payment endpoints will refuse requests")
	}
	paystackClient := paystack.NewClient(cfg.Paystack.SecretKey, cfg.Paystack.BaseURL)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	listingRepo := repositories.NewListingRepository(db)
	unlockRepo := repositories.NewUnlockRepository(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	listingUsecase := usecases.NewListingUsecase(listingRepo, userRepo)
	paymentUsecase := usecases.NewPaymentUsecase(unlockRepo, paystackClient, cfg.Paystack.SecretKey != "")
	statsUsecase := usecases.NewStatsUsecase(userRepo, listingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	listingHandler := handlers.NewListingHandler(listingUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	contactHandler := handlers.NewContactHandler()
	statsHandler := handlers.NewStatsHandler(statsUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerIndexRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:    authHandler,
		listingHandler: listingHandler,
		paymentHandler: paymentHandler,
		contactHandler: contactHandler,
		statsHandler:   statsHandler,
		authMiddleware: authMiddleware,
	})

	logger.Info(context.Background(), "HomeConnect backend starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
