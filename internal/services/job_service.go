package services

import (
	"context"

	"bluehire_backend/internal/config"
	"bluehire_backend/internal/models"
	"bluehire_backend/internal/repositories"
	"bluehire_backend/internal/services/dto"
	"bluehire_backend/pkg/apperrors"
)

type JobService interface {
	// SearchPublic - публичная выдача, обрезается по jobs.public_limit.
	SearchPublic(ctx context.Context, q *dto.JobSearchQuery) ([]models.Job, error)
	// SearchForWorker - выдача для залогиненного рабочего, по умолчанию без лимита.
	SearchForWorker(ctx context.Context, q *dto.JobSearchQuery) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, employerUserID string, req *dto.CreateJobRequest) (*models.Job, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

func (s *JobServiceImpl) SearchPublic(ctx context.Context, q *dto.JobSearchQuery) ([]models.Job, error) {
	return s.search(ctx, q, config.GetConfig().Jobs.PublicLimit)
}

func (s *JobServiceImpl) SearchForWorker(ctx context.Context, q *dto.JobSearchQuery) ([]models.Job, error) {
	return s.search(ctx, q, config.GetConfig().Jobs.WorkerLimit)
}

func (s *JobServiceImpl) search(ctx context.Context, q *dto.JobSearchQuery, limit int) ([]models.Job, error) {
	jobs, err := s.jobRepo.Search(ctx, repositories.JobFilter{
		Query:    q.Query,
		Location: q.Location,
		Category: q.Category,
		Limit:    limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetByID(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Create публикует вакансию. Требует заполненного профиля компании:
// вакансия всегда принадлежит EmployerProfile, не User.
func (s *JobServiceImpl) Create(ctx context.Context, employerUserID string, req *dto.CreateJobRequest) (*models.Job, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(ctx, employerUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		EmployerID:     profile.ID,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Location:       req.Location,
		SkillsRequired: req.SkillsRequired,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}
