package services

import (
	"context"
	"fmt"

	"bluehire_backend/internal/auth"
	"bluehire_backend/internal/email"
	"bluehire_backend/internal/logger"
	"bluehire_backend/internal/models"
	"bluehire_backend/internal/repositories"
	"bluehire_backend/internal/services/dto"
	"bluehire_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginByUser(ctx context.Context, user *models.User) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	db            *gorm.DB
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
}

func NewAuthService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

// Register - регистрация нового пользователя.
// Пользователь и пустая заглушка профиля его роли создаются в одной
// транзакции: упавший между двумя вставками процесс не оставит
// пользователя без профиля.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if role != models.UserRoleWorker && role != models.UserRoleEmployer {
		return apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}
	if req.PreferredLanguage != "" {
		user.PreferredLanguage = req.PreferredLanguage
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		return s.createProfileStub(ctx, tx, user)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	// Побочный эффект, не влияющий на исход регистрации
	if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
		logger.CtxWarn(ctx, "failed to send welcome email", "email", user.Email, "error", err.Error())
	}

	return nil
}

func (s *AuthServiceImpl) createProfileStub(ctx context.Context, tx *gorm.DB, user *models.User) error {
	switch user.Role {
	case models.UserRoleEmployer:
		return s.profileRepo.CreateEmployer(ctx, tx, &models.EmployerProfile{
			UserID:      user.ID,
			CompanyName: fmt.Sprintf("%s's Company", user.Name),
		})
	case models.UserRoleWorker:
		return s.profileRepo.CreateWorker(ctx, tx, &models.WorkerProfile{
			UserID: user.ID,
		})
	}
	return nil
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.LoginByUser(ctx, user)
}

// LoginByUser выписывает сессию существующему пользователю
// (используется и парольным, и OTP-входом).
func (s *AuthServiceImpl) LoginByUser(ctx context.Context, user *models.User) (*dto.LoginResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        buildUserResponse(user),
	}, nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Role:              string(user.Role),
		PreferredLanguage: user.PreferredLanguage,
	}
	if user.Phone != nil {
		resp.Phone = *user.Phone
	}
	return resp
}
