package services

import (
	"context"

	"bluehire_backend/internal/models"
	"bluehire_backend/internal/repositories"
	"bluehire_backend/internal/services/dto"
	"bluehire_backend/pkg/apperrors"
)

type ProfileService interface {
	GetWorkerProfile(ctx context.Context, userID string) (*models.WorkerProfile, error)
	UpsertWorkerProfile(ctx context.Context, userID string, req *dto.UpdateWorkerProfileRequest) (*models.WorkerProfile, error)
	WorkerDashboard(ctx context.Context, userID string) (*dto.WorkerDashboardResponse, error)

	GetEmployerProfile(ctx context.Context, userID string) (*models.EmployerProfile, error)
	UpsertEmployerProfile(ctx context.Context, userID string, req *dto.UpdateEmployerProfileRequest) (*models.EmployerProfile, error)
	EmployerDashboard(ctx context.Context, userID string) (*dto.EmployerDashboardResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo     repositories.ProfileRepository
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *ProfileServiceImpl) GetWorkerProfile(ctx context.Context, userID string) (*models.WorkerProfile, error) {
	profile, err := s.profileRepo.FindWorkerByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpsertWorkerProfile - один явный upsert: создать, если профиля еще нет,
// иначе обновить на месте. Две ветки вместо двух разных хендлеров.
func (s *ProfileServiceImpl) UpsertWorkerProfile(ctx context.Context, userID string, req *dto.UpdateWorkerProfileRequest) (*models.WorkerProfile, error) {
	profile, err := s.profileRepo.FindWorkerByUserID(ctx, userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.WorkerProfile{
			UserID:            userID,
			Skills:            req.Skills,
			ExperienceYears:   req.ExperienceYears,
			PreferredLocation: req.PreferredLocation,
		}
		if err := s.profileRepo.CreateWorker(ctx, nil, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}

	profile.Skills = req.Skills
	profile.ExperienceYears = req.ExperienceYears
	profile.PreferredLocation = req.PreferredLocation
	if err := s.profileRepo.UpdateWorker(ctx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) WorkerDashboard(ctx context.Context, userID string) (*dto.WorkerDashboardResponse, error) {
	resp := &dto.WorkerDashboardResponse{
		Applications: []models.Application{},
	}

	profile, err := s.profileRepo.FindWorkerByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			// Профиль еще не заполнен - дашборд пустой, но доступен
			return resp, nil
		}
		return nil, apperrors.InternalError(err)
	}
	resp.Profile = profile

	applications, err := s.applicationRepo.ListByWorker(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp.Applications = applications
	return resp, nil
}

func (s *ProfileServiceImpl) GetEmployerProfile(ctx context.Context, userID string) (*models.EmployerProfile, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpsertEmployerProfile(ctx context.Context, userID string, req *dto.UpdateEmployerProfileRequest) (*models.EmployerProfile, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}

		companyName := req.CompanyName
		if companyName == "" {
			// Как в исходной системе: пустое имя компании
			// подменяется именем пользователя
			user, uerr := s.userRepo.FindByID(ctx, userID)
			if uerr != nil {
				return nil, apperrors.InternalError(uerr)
			}
			companyName = user.Name
		}

		profile = &models.EmployerProfile{
			UserID:             userID,
			CompanyName:        companyName,
			CompanyDescription: req.CompanyDescription,
			Location:           req.Location,
		}
		if err := s.profileRepo.CreateEmployer(ctx, nil, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}

	if req.CompanyName != "" {
		profile.CompanyName = req.CompanyName
	}
	profile.CompanyDescription = req.CompanyDescription
	profile.Location = req.Location
	if err := s.profileRepo.UpdateEmployer(ctx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) EmployerDashboard(ctx context.Context, userID string) (*dto.EmployerDashboardResponse, error) {
	resp := &dto.EmployerDashboardResponse{
		Jobs: []models.Job{},
	}

	profile, err := s.profileRepo.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return resp, nil
		}
		return nil, apperrors.InternalError(err)
	}
	resp.Profile = profile

	jobs, err := s.jobRepo.ListByEmployer(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp.Jobs = jobs
	return resp, nil
}
