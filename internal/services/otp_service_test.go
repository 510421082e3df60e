package services

import (
	"context"
	"testing"
	"time"

	"bluehire_backend/internal/models"
	"bluehire_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpService_RequestAndVerify_NewPhone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.otpService.RequestOtp(ctx, "9100000001")
	require.NoError(t, err)
	require.Len(t, resp.DemoCode, 6)

	// Код ушел через SMS-провайдера и совпадает с демо-эхом
	require.Len(t, env.sms.sent, 1)
	assert.Equal(t, resp.DemoCode, env.sms.sent[0])

	// Телефон без учетки: код гасится, предлагается регистрация
	verify, err := env.otpService.VerifyOtp(ctx, "9100000001", resp.DemoCode)
	require.NoError(t, err)
	assert.True(t, verify.RegistrationRequired)
	assert.Nil(t, verify.Login)
}

func TestOtpService_Verify_LogsInExistingUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.authService.Register(ctx, workerRegisterRequest()))

	resp, err := env.otpService.RequestOtp(ctx, "9100000001")
	require.NoError(t, err)

	verify, err := env.otpService.VerifyOtp(ctx, "9100000001", resp.DemoCode)
	require.NoError(t, err)
	assert.False(t, verify.RegistrationRequired)
	require.NotNil(t, verify.Login)
	assert.NotEmpty(t, verify.Login.AccessToken)
	assert.Equal(t, "ravi@example.com", verify.Login.User.Email)
}

func TestOtpService_Verify_SingleUse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.otpService.RequestOtp(ctx, "9100000001")
	require.NoError(t, err)

	_, err = env.otpService.VerifyOtp(ctx, "9100000001", resp.DemoCode)
	require.NoError(t, err)

	// Второе предъявление того же кода отклоняется
	_, err = env.otpService.VerifyOtp(ctx, "9100000001", resp.DemoCode)
	assert.ErrorIs(t, err, apperrors.ErrOtpInvalid)
}

func TestOtpService_Verify_WrongCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.otpService.RequestOtp(ctx, "9100000001")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == resp.DemoCode {
		wrong = "000001"
	}
	_, err = env.otpService.VerifyOtp(ctx, "9100000001", wrong)
	assert.ErrorIs(t, err, apperrors.ErrOtpInvalid)

	// Неверная попытка не гасит настоящий код
	_, err = env.otpService.VerifyOtp(ctx, "9100000001", resp.DemoCode)
	assert.NoError(t, err)
}

func TestOtpService_Verify_Expired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	expired := &models.OTP{Phone: "9100000001", Code: "123456"}
	expired.CreatedAt = time.Now().Add(-11 * time.Minute)
	require.NoError(t, env.otpRepo.Create(ctx, expired))

	_, err := env.otpService.VerifyOtp(ctx, "9100000001", "123456")
	assert.ErrorIs(t, err, apperrors.ErrOtpInvalid)
}

func TestOtpService_Verify_TakesNewestCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	stale := &models.OTP{Phone: "9100000001", Code: "123456"}
	stale.CreatedAt = time.Now().Add(-11 * time.Minute)
	require.NoError(t, env.otpRepo.Create(ctx, stale))

	// Свежий код с тем же номиналом перекрывает просроченный
	fresh := &models.OTP{Phone: "9100000001", Code: "123456"}
	require.NoError(t, env.otpRepo.Create(ctx, fresh))

	_, err := env.otpService.VerifyOtp(ctx, "9100000001", "123456")
	assert.NoError(t, err)
}
