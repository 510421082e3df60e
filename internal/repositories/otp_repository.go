package repositories

import (
	"context"
	"errors"

	"bluehire_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOtpNotFound = errors.New("otp not found")

type OtpRepository interface {
	Create(ctx context.Context, otp *models.OTP) error
	// FindLatestMatch возвращает самый свежий неиспользованный код
	// для пары (phone, code).
	FindLatestMatch(ctx context.Context, phone, code string) (*models.OTP, error)
	// Consume помечает код использованным. Условный UPDATE гарантирует,
	// что из двух гоняющихся запросов код достанется ровно одному.
	Consume(ctx context.Context, id string) error
}

type OtpRepositoryImpl struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &OtpRepositoryImpl{db: db}
}

func (r *OtpRepositoryImpl) Create(ctx context.Context, otp *models.OTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *OtpRepositoryImpl) FindLatestMatch(ctx context.Context, phone, code string) (*models.OTP, error) {
	var otp models.OTP
	err := r.db.WithContext(ctx).
		Where("phone = ? AND code = ? AND is_used = ?", phone, code, false).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOtpNotFound
		}
		return nil, err
	}
	return &otp, nil
}

func (r *OtpRepositoryImpl) Consume(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.OTP{}).
		Where("id = ? AND is_used = ?", id, false).
		Update("is_used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOtpNotFound
	}
	return nil
}
