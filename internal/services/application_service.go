package services

import (
	"fmt"

	"gorm.io/gorm"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/utils"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	emailProvider email.Provider,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		emailProvider:   emailProvider,
	}
}

func (s *ApplicationService) ListByJob(db *gorm.DB, jobID uint, page, pageSize int) (*dto.PageResponse, error) {
	exists, err := s.jobRepo.Exists(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound, "job", "Job not found")
	}

	total, err := s.applicationRepo.CountByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rows, err := s.applicationRepo.ListByJob(db, jobID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PageResponse{
		Items:    rows,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// Apply files an application for the authenticated caller. The confirmation
// email is best effort and never affects the response.
func (s *ApplicationService) Apply(db *gorm.DB, actor *models.User, req dto.ApplicationCreateRequest) (*dto.ApplicationCreatedResponse, error) {
	exists, err := s.jobRepo.Exists(db, req.JobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound, "job", "Job not found")
	}

	status := req.Status
	if status == "" {
		status = models.ApplicationStatusNew
	}

	application := &models.Application{
		JobID:   req.JobID,
		UserID:  actor.ID,
		Name:    req.Name,
		Email:   utils.NormalizeEmail(req.Email),
		Phone:   req.Phone,
		Message: req.Message,
		CVURL:   req.CVURL,
		Status:  status,
	}
	if err := s.applicationRepo.Create(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	go s.sendConfirmation(actor.Email, application.JobID)

	return &dto.ApplicationCreatedResponse{
		ID:     application.ID,
		JobID:  application.JobID,
		Status: application.Status,
	}, nil
}

func (s *ApplicationService) sendConfirmation(to string, jobID uint) {
	subject := "Application received"
	body := fmt.Sprintf("Your application for job #%d has been received.", jobID)
	if err := s.emailProvider.Send(to, subject, body); err != nil {
		logger.GetLogger().Warn("confirmation email failed", "to", to, "job_id", jobID, "error", err)
	}
}
