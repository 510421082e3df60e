package repositories

import (
	"testing"

	"bluehire_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB поднимает изолированную in-memory базу на каждый тест.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Одно соединение, иначе каждый коннект пула получит свою пустую базу
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

	return db
}

func createTestWorker(t *testing.T, db *gorm.DB, email, phone string) (*models.User, *models.WorkerProfile) {
	t.Helper()

	user := &models.User{
		Name:         "Test Worker",
		Email:        email,
		Phone:        &phone,
		PasswordHash: "hash",
		Role:         models.UserRoleWorker,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.WorkerProfile{UserID: user.ID}
	require.NoError(t, db.Create(profile).Error)

	return user, profile
}

func createTestEmployer(t *testing.T, db *gorm.DB, email, company string) (*models.User, *models.EmployerProfile) {
	t.Helper()

	user := &models.User{
		Name:         company,
		Email:        email,
		PasswordHash: "hash",
		Role:         models.UserRoleEmployer,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.EmployerProfile{
		UserID:      user.ID,
		CompanyName: company,
	}
	require.NoError(t, db.Create(profile).Error)

	return user, profile
}

func createTestJob(t *testing.T, db *gorm.DB, employerProfileID, title, category, location, skills string) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID:     employerProfileID,
		Title:          title,
		Description:    "test job",
		Category:       category,
		Location:       location,
		SkillsRequired: skills,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
