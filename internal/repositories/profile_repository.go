package repositories

import (
	"context"
	"errors"

	"bluehire_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	// Worker
	FindWorkerByUserID(ctx context.Context, userID string) (*models.WorkerProfile, error)
	CreateWorker(ctx context.Context, tx *gorm.DB, profile *models.WorkerProfile) error
	UpdateWorker(ctx context.Context, profile *models.WorkerProfile) error

	// Employer
	FindEmployerByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error)
	FindEmployerByID(ctx context.Context, id string) (*models.EmployerProfile, error)
	CreateEmployer(ctx context.Context, tx *gorm.DB, profile *models.EmployerProfile) error
	UpdateEmployer(ctx context.Context, profile *models.EmployerProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindWorkerByUserID(ctx context.Context, userID string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) CreateWorker(ctx context.Context, tx *gorm.DB, profile *models.WorkerProfile) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateWorker(ctx context.Context, profile *models.WorkerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *ProfileRepositoryImpl) FindEmployerByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindEmployerByID(ctx context.Context, id string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) CreateEmployer(ctx context.Context, tx *gorm.DB, profile *models.EmployerProfile) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateEmployer(ctx context.Context, profile *models.EmployerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
