package services

import (
	"context"

	"bluehire_backend/internal/email"
	"bluehire_backend/internal/logger"
	"bluehire_backend/internal/models"
	"bluehire_backend/internal/repositories"
	"bluehire_backend/pkg/apperrors"
)

// ApplyResult различает новую заявку и повторную попытку:
// повтор - не ошибка, а мягкий no-op с информационным сообщением.
type ApplyResult struct {
	Application *models.Application
	Duplicate   bool
}

type ApplicationService interface {
	Apply(ctx context.Context, workerUserID, jobID string) (*ApplyResult, error)
	ListForJob(ctx context.Context, employerUserID, jobID string) (*models.Job, []models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ProfileRepository
	userRepo        repositories.UserRepository
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		emailProvider:   emailProvider,
	}
}

// Apply - идемпотентная подача заявки. Две попытки на одну пару
// (рабочий, вакансия) никогда не создают двух строк: предварительная
// проверка дает дружелюбное сообщение, уникальный индекс закрывает гонку.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, workerUserID, jobID string) (*ApplyResult, error) {
	profile, err := s.profileRepo.FindWorkerByUserID(ctx, workerUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if existing, err := s.applicationRepo.FindByWorkerAndJob(ctx, profile.ID, job.ID); err == nil {
		return &ApplyResult{Application: existing, Duplicate: true}, nil
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		WorkerID: profile.ID,
		JobID:    job.ID,
		Status:   models.ApplicationStatusApplied,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			// Конкурентный дубль проскочил мимо предварительной проверки
			existing, ferr := s.applicationRepo.FindByWorkerAndJob(ctx, profile.ID, job.ID)
			if ferr != nil {
				return nil, apperrors.InternalError(ferr)
			}
			return &ApplyResult{Application: existing, Duplicate: true}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyEmployer(ctx, job, workerUserID)

	return &ApplyResult{Application: application}, nil
}

// notifyEmployer - уведомление о новой заявке: строка в лог плюс письмо.
// Сбой доставки не влияет на исход подачи.
func (s *ApplicationServiceImpl) notifyEmployer(ctx context.Context, job *models.Job, workerUserID string) {
	logger.CtxInfo(ctx, "new application received",
		"job_id", job.ID,
		"job_title", job.Title,
	)

	worker, err := s.userRepo.FindByID(ctx, workerUserID)
	if err != nil {
		return
	}

	if job.Employer == nil {
		return
	}
	employerUser, err := s.userRepo.FindByID(ctx, job.Employer.UserID)
	if err != nil {
		return
	}

	if err := s.emailProvider.SendApplicationReceived(employerUser.Email, job.Title, worker.Name); err != nil {
		logger.CtxWarn(ctx, "failed to send application notification",
			"email", employerUser.Email, "error", err.Error())
	}
}

// ListForJob отдает заявки по вакансии только ее владельцу.
// Чужой работодатель получает отказ без каких-либо данных.
func (s *ApplicationServiceImpl) ListForJob(ctx context.Context, employerUserID, jobID string) (*models.Job, []models.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if job.Employer == nil || job.Employer.UserID != employerUserID {
		return nil, nil, apperrors.NewForbiddenError("Access denied")
	}

	applications, err := s.applicationRepo.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return job, applications, nil
}
