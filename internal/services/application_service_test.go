package services

import (
	"context"
	"testing"

	"bluehire_backend/internal/services/dto"
	"bluehire_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerUser регистрирует пользователя и возвращает его id.
func registerUser(t *testing.T, env *testEnv, name, emailAddr, phone, role string) string {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, env.authService.Register(ctx, &dto.RegisterRequest{
		Name:     name,
		Email:    emailAddr,
		Phone:    phone,
		Password: "password123",
		Role:     role,
	}))

	user, err := env.userRepo.FindByEmail(ctx, emailAddr)
	require.NoError(t, err)
	return user.ID
}

func postJob(t *testing.T, env *testEnv, employerUserID, title string) string {
	t.Helper()

	job, err := env.jobService.Create(context.Background(), employerUserID, &dto.CreateJobRequest{
		Title:       title,
		Description: "Good salary and benefits.",
		Category:    "Electrician",
		Location:    "Bengaluru",
	})
	require.NoError(t, err)
	return job.ID
}

func TestApplicationService_Apply(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employerID := registerUser(t, env, "Metro Constructions", "metro@test.local", "9000000001", "employer")
	workerID := registerUser(t, env, "Ravi Kumar", "ravi@test.local", "9100000001", "worker")
	jobID := postJob(t, env, employerID, "Electrician - Residential Projects")

	result, err := env.applicationService.Apply(ctx, workerID, jobID)
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	require.NotNil(t, result.Application)

	// Работодатель получил письмо о новом отклике (после welcome-писем)
	sent := env.email.Sent()
	require.NotEmpty(t, sent)
	last := sent[len(sent)-1]
	assert.Equal(t, "metro@test.local", last.To)
}

func TestApplicationService_Apply_IsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employerID := registerUser(t, env, "Metro Constructions", "metro@test.local", "9000000001", "employer")
	workerID := registerUser(t, env, "Ravi Kumar", "ravi@test.local", "9100000001", "worker")
	jobID := postJob(t, env, employerID, "Electrician - Residential Projects")

	first, err := env.applicationService.Apply(ctx, workerID, jobID)
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	// Двойной клик: та же заявка, пометка duplicate, без новой строки
	second, err := env.applicationService.Apply(ctx, workerID, jobID)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Application.ID, second.Application.ID)

	count, err := env.applicationRepo.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestApplicationService_Apply_UnknownJob(t *testing.T) {
	env := newTestEnv(t)

	workerID := registerUser(t, env, "Ravi Kumar", "ravi@test.local", "9100000001", "worker")

	_, err := env.applicationService.Apply(context.Background(), workerID,
		"00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestApplicationService_ListForJob_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := registerUser(t, env, "Metro Constructions", "metro@test.local", "9000000001", "employer")
	otherID := registerUser(t, env, "City Logistics", "logistics@test.local", "9000000002", "employer")
	workerID := registerUser(t, env, "Ravi Kumar", "ravi@test.local", "9100000001", "worker")
	jobID := postJob(t, env, ownerID, "Electrician - Residential Projects")

	_, err := env.applicationService.Apply(ctx, workerID, jobID)
	require.NoError(t, err)

	job, applications, err := env.applicationService.ListForJob(ctx, ownerID, jobID)
	require.NoError(t, err)
	assert.Equal(t, jobID, job.ID)
	require.Len(t, applications, 1)
	assert.Equal(t, "applied", string(applications[0].Status))

	// Чужая вакансия: отказ без данных
	_, _, err = env.applicationService.ListForJob(ctx, otherID, jobID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}
