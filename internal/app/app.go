package app

import (
	"errors"
	"fmt"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/utils"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "name", cfg.Database.Name)
	gormDB, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Profile{},
		&models.Application{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Upload.StorageType,
		BasePath: cfg.Upload.Dir,
		BaseURL:  cfg.Upload.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	appHandlers := initializeHandlers(cfg, storageInstance)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	// Uploaded images are public read-only assets.
	ginRouter.Static("/uploads", cfg.Upload.Dir)

	return ginRouter
}

func initializeHandlers(cfg *config.Config, storageInstance storage.Storage) *handlers.AppHandlers {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			User:      cfg.Email.SMTPUser,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		emailProvider = email.NewNoopProvider()
	}

	userRepo := repositories.NewUserRepository()
	companyRepo := repositories.NewCompanyRepository()
	jobRepo := repositories.NewJobRepository()
	profileRepo := repositories.NewProfileRepository()
	applicationRepo := repositories.NewApplicationRepository()

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	companyService := services.NewCompanyService(companyRepo)
	jobService := services.NewJobService(jobRepo, companyRepo)
	profileService := services.NewProfileService(profileRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, emailProvider)
	filterService := services.NewFilterService(profileRepo)
	uploadService := services.NewUploadService(storageInstance, cfg.Upload.MaxSize)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
		AuthHandler:        handlers.NewAuthHandler(baseHandler, authService, userRepo),
		UserHandler:        handlers.NewUserHandler(baseHandler, userService, userRepo),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, companyService, userRepo),
		JobHandler:         handlers.NewJobHandler(baseHandler, jobService, userRepo),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, profileService, userRepo),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, applicationService, userRepo),
		FilterHandler:      handlers.NewFilterHandler(baseHandler, filterService),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, uploadService, userRepo),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.TxMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account when configured.
// Signup never grants admin, so without this a fresh install would have
// no way to reach the admin-only endpoints.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := utils.NormalizeEmail(cfg.FirstAdminEmail)
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
