package repositories

import (
	"context"
	"errors"
	"strings"

	"bluehire_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - конъюнкция опциональных фильтров поиска вакансий.
type JobFilter struct {
	Query    string // подстрока в title ИЛИ skills_required
	Location string
	Category string
	Limit    int // 0 = без лимита
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	Search(ctx context.Context, filter JobFilter) ([]models.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error)
	FindAll(ctx context.Context) ([]models.Job, error)
	CountAll(ctx context.Context) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Preload("Employer").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Search строит конъюнкцию case-insensitive substring-фильтров.
// LOWER(...) LIKE вместо ILIKE, чтобы один и тот же запрос работал
// и на Postgres, и на sqlite в тестах.
func (r *JobRepositoryImpl) Search(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{}).Preload("Employer")

	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(skills_required) LIKE ?", like, like)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var jobs []models.Job
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Count(&count).Error
	return count, err
}
