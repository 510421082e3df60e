package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"bluehire_backend/internal/config"
	"bluehire_backend/internal/logger"
	"bluehire_backend/internal/models"
	"bluehire_backend/internal/repositories"
	"bluehire_backend/internal/services/dto"
	"bluehire_backend/internal/sms"
	"bluehire_backend/pkg/apperrors"
)

type OtpService interface {
	RequestOtp(ctx context.Context, phone string) (*dto.OtpRequestResponse, error)
	VerifyOtp(ctx context.Context, phone, code string) (*dto.OtpVerifyResponse, error)
}

type OtpServiceImpl struct {
	otpRepo     repositories.OtpRepository
	userRepo    repositories.UserRepository
	smsProvider sms.Provider
	authService AuthService
}

func NewOtpService(
	otpRepo repositories.OtpRepository,
	userRepo repositories.UserRepository,
	smsProvider sms.Provider,
	authService AuthService,
) OtpService {
	return &OtpServiceImpl{
		otpRepo:     otpRepo,
		userRepo:    userRepo,
		smsProvider: smsProvider,
		authService: authService,
	}
}

// RequestOtp выписывает новый код. Лимитов на количество активных кодов
// и частоту запросов нет - осознанный пробел, зафиксированный в DESIGN.md.
func (s *OtpServiceImpl) RequestOtp(ctx context.Context, phone string) (*dto.OtpRequestResponse, error) {
	code, err := generateOtpCode()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	otp := &models.OTP{
		Phone: phone,
		Code:  code,
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.smsProvider.SendOTP(phone, code); err != nil {
		logger.CtxWarn(ctx, "failed to deliver OTP", "phone", phone, "error", err.Error())
	}

	return &dto.OtpRequestResponse{
		Message:  "OTP code issued (demo: code included in response)",
		DemoCode: code,
	}, nil
}

// VerifyOtp проверяет код: самый свежий неиспользованный матч,
// не старше настроенного TTL. Успешный матч атомарно гасится,
// второй запрос с тем же кодом гарантированно получит отказ.
func (s *OtpServiceImpl) VerifyOtp(ctx context.Context, phone, code string) (*dto.OtpVerifyResponse, error) {
	otp, err := s.otpRepo.FindLatestMatch(ctx, phone, code)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOtpNotFound) {
			return nil, apperrors.ErrOtpInvalid
		}
		return nil, apperrors.InternalError(err)
	}

	ttl := time.Duration(config.GetConfig().OTP.TTLMinutes) * time.Minute
	if time.Since(otp.CreatedAt) > ttl {
		// Просроченную запись не трогаем
		return nil, apperrors.ErrOtpInvalid
	}

	if err := s.otpRepo.Consume(ctx, otp.ID); err != nil {
		if apperrors.Is(err, repositories.ErrOtpNotFound) {
			// Код перехвачен конкурентным запросом
			return nil, apperrors.ErrOtpInvalid
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return &dto.OtpVerifyResponse{
				Message:              "Phone verified. Please complete registration.",
				RegistrationRequired: true,
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	login, err := s.authService.LoginByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.OtpVerifyResponse{
		Message: "Logged in with mobile OTP",
		Login:   login,
	}, nil
}

// generateOtpCode возвращает равномерно распределенный 6-значный код
// из диапазона 100000-999999.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
