package app

import (
	"fmt"

	"bluehire_backend/database"
	"bluehire_backend/internal/auth"
	"bluehire_backend/internal/config"
	"bluehire_backend/internal/email"
	"bluehire_backend/internal/handlers"
	"bluehire_backend/internal/logger"
	"bluehire_backend/internal/middleware"
	"bluehire_backend/internal/models"
	"bluehire_backend/internal/repositories"
	"bluehire_backend/internal/routes"
	"bluehire_backend/internal/services"
	"bluehire_backend/internal/sms"
	"bluehire_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run - точка входа приложения: конфиг, логгер, БД, роутер, listen.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	log := logger.GetLogger()

	// TranslateError: нарушения уникальных индексов приходят как
	// gorm.ErrDuplicatedKey, на них опирается слой репозиториев
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	log.Info("Database connection established")

	if err := AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	log.Info("Database migrations completed")

	if err := seedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	if cfg.Server.Env == "development" {
		if err := database.SeedDemoData(db); err != nil {
			logger.Fatal("Failed to seed demo data", "error", err)
		}
	}

	var mail email.Provider
	if cfg.Email.Enabled {
		mail = email.NewSMTPProvider(cfg)
	} else {
		mail = email.NewMockProvider()
	}

	engine := SetupRouter(cfg, db, mail, sms.NewLogProvider())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("🚀 Server starting", "addr", addr, "env", cfg.Server.Env)
	if err := engine.Run(addr); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}

// AutoMigrate накатывает схему по моделям. Порядок важен из-за внешних ключей.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WorkerProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
		&models.OTP{},
	)
}

// SetupRouter собирает весь граф зависимостей и возвращает готовый
// gin.Engine. Вынесен отдельно, чтобы тесты могли поднять приложение
// поверх своей БД и провайдеров.
func SetupRouter(cfg *config.Config, db *gorm.DB, mail email.Provider, smsProvider sms.Provider) *gin.Engine {
	sc := initializeServices(db, mail, smsProvider)
	appHandlers := handlers.NewAppHandlers(sc, validator.New())

	engine := initializeGinRouter(cfg)
	routes.RegisterRoutes(engine, appHandlers)

	return engine
}

func initializeServices(db *gorm.DB, mail email.Provider, smsProvider sms.Provider) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	otpRepo := repositories.NewOtpRepository(db)

	authService := services.NewAuthService(db, userRepo, profileRepo, mail)

	return &services.ServiceContainer{
		AuthService:        authService,
		OtpService:         services.NewOtpService(otpRepo, userRepo, smsProvider, authService),
		ProfileService:     services.NewProfileService(profileRepo, userRepo, jobRepo, applicationRepo),
		JobService:         services.NewJobService(jobRepo, profileRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, profileRepo, userRepo, mail),
		AdminService:       services.NewAdminService(userRepo, jobRepo, applicationRepo),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware())

	return engine
}

// seedFirstAdmin создает административную учетку при первом запуске.
// Регистрацией админа не получить, только через конфиг.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", cfg.FirstAdminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin account created", "email", cfg.FirstAdminEmail)
	return nil
}
