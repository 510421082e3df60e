package repositories

import (
	"context"
	"errors"

	"bluehire_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateApplication = errors.New("application already exists")
	ErrApplicationNotFound  = errors.New("application not found")
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByWorkerAndJob(ctx context.Context, workerID, jobID string) (*models.Application, error)
	ListByWorker(ctx context.Context, workerID string) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)
	FindAll(ctx context.Context) ([]models.Application, error)
	CountAll(ctx context.Context) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create опирается на составной уникальный индекс (worker_id, job_id):
// при конфликте вставка молча не происходит, и мы возвращаем
// ErrDuplicateApplication по RowsAffected. Это закрывает гонку
// двойного клика без сериализации запросов в приложении.
func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *models.Application) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "worker_id"}, {Name: "job_id"}},
			DoNothing: true,
		}).
		Create(application)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateApplication
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByWorkerAndJob(ctx context.Context, workerID, jobID string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		First(&application, "worker_id = ? AND job_id = ?", workerID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindAll(ctx context.Context) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Worker").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).Count(&count).Error
	return count, err
}
