package repositories

import (
	"context"
	"testing"

	"bluehire_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_Create_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	_, workerProfile := createTestWorker(t, db, "worker@test.local", "9100000001")
	_, employerProfile := createTestEmployer(t, db, "employer@test.local", "Metro Constructions")
	job := createTestJob(t, db, employerProfile.ID, "Electrician", "Electrician", "Bengaluru", "Wiring")

	first := &models.Application{WorkerID: workerProfile.ID, JobID: job.ID}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)

	stored, err := repo.FindByWorkerAndJob(ctx, workerProfile.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, stored.Status)

	// Повторная вставка той же пары упирается в уникальный индекс
	second := &models.Application{WorkerID: workerProfile.ID, JobID: job.ID}
	err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestApplicationRepository_Create_DifferentJobsAllowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	_, workerProfile := createTestWorker(t, db, "worker@test.local", "9100000001")
	_, employerProfile := createTestEmployer(t, db, "employer@test.local", "Metro Constructions")
	job1 := createTestJob(t, db, employerProfile.ID, "Electrician", "Electrician", "Bengaluru", "Wiring")
	job2 := createTestJob(t, db, employerProfile.ID, "Plumber", "Plumber", "Mysuru", "Pipe Fitting")

	require.NoError(t, repo.Create(ctx, &models.Application{WorkerID: workerProfile.ID, JobID: job1.ID}))
	require.NoError(t, repo.Create(ctx, &models.Application{WorkerID: workerProfile.ID, JobID: job2.ID}))

	applications, err := repo.ListByWorker(ctx, workerProfile.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 2)
}

func TestApplicationRepository_FindByWorkerAndJob(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	_, workerProfile := createTestWorker(t, db, "worker@test.local", "9100000001")
	_, employerProfile := createTestEmployer(t, db, "employer@test.local", "Metro Constructions")
	job := createTestJob(t, db, employerProfile.ID, "Electrician", "Electrician", "Bengaluru", "Wiring")

	_, err := repo.FindByWorkerAndJob(ctx, workerProfile.ID, job.ID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	require.NoError(t, repo.Create(ctx, &models.Application{WorkerID: workerProfile.ID, JobID: job.ID}))

	found, err := repo.FindByWorkerAndJob(ctx, workerProfile.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, found.JobID)
}

func TestApplicationRepository_ListByJob_PreloadsWorker(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	_, workerProfile := createTestWorker(t, db, "worker@test.local", "9100000001")
	_, employerProfile := createTestEmployer(t, db, "employer@test.local", "Metro Constructions")
	job := createTestJob(t, db, employerProfile.ID, "Electrician", "Electrician", "Bengaluru", "Wiring")

	require.NoError(t, repo.Create(ctx, &models.Application{WorkerID: workerProfile.ID, JobID: job.ID}))

	applications, err := repo.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	require.NotNil(t, applications[0].Worker)
	assert.Equal(t, workerProfile.ID, applications[0].Worker.ID)
}
