package services

import (
	"context"

	"bluehire_backend/internal/repositories"
	"bluehire_backend/internal/services/dto"
	"bluehire_backend/pkg/apperrors"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
}

type AdminServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// Dashboard - полные выборки, терпимо при малом масштабе.
func (s *AdminServiceImpl) Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	applications, err := s.applicationRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userCount, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobCount, err := s.jobRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	applicationCount, err := s.applicationRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminDashboardResponse{
		Users:            users,
		Jobs:             jobs,
		Applications:     applications,
		UserCount:        userCount,
		JobCount:         jobCount,
		ApplicationCount: applicationCount,
	}, nil
}
