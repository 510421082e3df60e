package services

import (
	"context"
	"testing"

	"bluehire_backend/internal/models"
	"bluehire_backend/internal/services/dto"
	"bluehire_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workerRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Phone:    "9100000001",
		Password: "password123",
		Role:     "worker",
	}
}

func TestAuthService_Register_CreatesUserWithProfileStub(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.authService.Register(ctx, workerRegisterRequest()))

	user, err := env.userRepo.FindByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleWorker, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Заглушка профиля создается вместе с пользователем
	profile, err := env.profileRepo.FindWorkerByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Skills)

	// Приветственное письмо ушло
	sent := env.email.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ravi@example.com", sent[0].To)
}

func TestAuthService_Register_EmployerGetsCompanyStub(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := workerRegisterRequest()
	req.Email = "metro@example.com"
	req.Name = "Metro Constructions"
	req.Role = "employer"
	require.NoError(t, env.authService.Register(ctx, req))

	user, err := env.userRepo.FindByEmail(ctx, "metro@example.com")
	require.NoError(t, err)

	profile, err := env.profileRepo.FindEmployerByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metro Constructions's Company", profile.CompanyName)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.authService.Register(ctx, workerRegisterRequest()))

	err := env.authService.Register(ctx, workerRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_RejectsWeakPassword(t *testing.T) {
	env := newTestEnv(t)

	req := workerRegisterRequest()
	req.Password = "123"
	err := env.authService.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_Register_RejectsAdminRole(t *testing.T) {
	env := newTestEnv(t)

	req := workerRegisterRequest()
	req.Role = "admin"
	err := env.authService.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.authService.Register(ctx, workerRegisterRequest()))

	resp, err := env.authService.Login(ctx, &dto.LoginRequest{
		Email:    "ravi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "worker", resp.User.Role)
	assert.Equal(t, "9100000001", resp.User.Phone)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.authService.Register(ctx, workerRegisterRequest()))

	_, err := env.authService.Login(ctx, &dto.LoginRequest{
		Email:    "ravi@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	// Неизвестный email неотличим от неверного пароля
	_, err := env.authService.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
