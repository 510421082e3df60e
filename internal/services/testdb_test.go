package services

import (
	"sync"
	"testing"

	"bluehire_backend/internal/config"
	"bluehire_backend/internal/email"
	"bluehire_backend/internal/models"
	"bluehire_backend/internal/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// captureSmsProvider запоминает отправленные коды вместо доставки.
type captureSmsProvider struct {
	mu   sync.Mutex
	sent []string
}

func (p *captureSmsProvider) SendOTP(phone, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, code)
	return nil
}

// testEnv - весь граф сервисов поверх in-memory базы.
type testEnv struct {
	db    *gorm.DB
	email *email.MockProvider
	sms   *captureSmsProvider

	authService        AuthService
	otpService         OtpService
	profileService     ProfileService
	jobService         JobService
	applicationService ApplicationService
	adminService       AdminService

	userRepo        repositories.UserRepository
	profileRepo     repositories.ProfileRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	otpRepo         repositories.OtpRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.OTP.TTLMinutes = 10
	cfg.Jobs.PublicLimit = 20
	config.AppConfig = cfg

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.WorkerProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
		&models.OTP{},
	))

	env := &testEnv{
		db:    db,
		email: email.NewMockProvider(),
		sms:   &captureSmsProvider{},
	}

	env.userRepo = repositories.NewUserRepository(db)
	env.profileRepo = repositories.NewProfileRepository(db)
	env.jobRepo = repositories.NewJobRepository(db)
	env.applicationRepo = repositories.NewApplicationRepository(db)
	env.otpRepo = repositories.NewOtpRepository(db)

	env.authService = NewAuthService(db, env.userRepo, env.profileRepo, env.email)
	env.otpService = NewOtpService(env.otpRepo, env.userRepo, env.sms, env.authService)
	env.profileService = NewProfileService(env.profileRepo, env.userRepo, env.jobRepo, env.applicationRepo)
	env.jobService = NewJobService(env.jobRepo, env.profileRepo)
	env.applicationService = NewApplicationService(env.applicationRepo, env.jobRepo, env.profileRepo, env.userRepo, env.email)
	env.adminService = NewAdminService(env.userRepo, env.jobRepo, env.applicationRepo)

	return env
}
