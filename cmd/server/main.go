package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rentora.backend/internal/config"
	"rentora.backend/internal/infrastructure/email"
	"rentora.backend/internal/infrastructure/pdf"
	"rentora.backend/internal/infrastructure/repositories"
	"rentora.backend/internal/infrastructure/storage"
	"rentora.backend/internal/interfaces/http/handlers"
	"rentora.backend/internal/interfaces/http/middleware"
	"rentora.backend/internal/usecases"
	"rentora.backend/pkg/jwt"
	"rentora.backend/pkg/logger"
	"rentora.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	billRepo := repositories.NewUtilityBillRepository(db)
	leaseRepo := repositories.NewLeaseRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	maintRepo := repositories.NewMaintenanceRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize infrastructure services
	fileStore := storage.NewLocalStore(cfg.Storage.BaseDir, cfg.Storage.MaxBytes)
	mailer := email.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.Sender)
	renderer := pdf.NewGenerator()

	// Initialize usecases
	userUsecase := usecases.NewUserUsecase(userRepo, jwtService)
	propertyUsecase := usecases.NewPropertyUsecase(propertyRepo, billRepo, userRepo, fileStore)
	leaseUsecase := usecases.NewLeaseUsecase(leaseRepo, propertyRepo, userRepo, uow, mailer, renderer, fileStore)
	paymentUsecase := usecases.NewPaymentUsecase(paymentRepo, leaseRepo, userRepo, mailer, renderer, fileStore, cfg.Billing.LateFeeDailyRate)
	maintUsecase := usecases.NewMaintenanceUsecase(maintRepo, propertyRepo, userRepo, mailer)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userUsecase)
	propertyHandler := handlers.NewPropertyHandler(propertyUsecase)
	leaseHandler := handlers.NewLeaseHandler(leaseUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	maintHandler := handlers.NewMaintenanceHandler(maintUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", middleware.MetricsHandler())
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		propertyHandler: propertyHandler,
		leaseHandler:    leaseHandler,
		paymentHandler:  paymentHandler,
		maintHandler:    maintHandler,
		authMiddleware:  authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 Rentora Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
