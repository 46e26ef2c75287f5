package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
}

func NewJobService(jobRepo repositories.JobRepository, companyRepo repositories.CompanyRepository) *JobService {
	return &JobService{jobRepo: jobRepo, companyRepo: companyRepo}
}

func (s *JobService) List(db *gorm.DB, f repositories.JobFilter) (*dto.PageResponse, error) {
	items, total, err := s.jobRepo.List(db, f)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PageResponse{
		Items:    items,
		Page:     f.Page,
		PageSize: f.PageSize,
		Total:    total,
	}, nil
}

func (s *JobService) Get(db *gorm.DB, id uint) (*repositories.JobDetail, error) {
	detail, err := s.jobRepo.FindDetail(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return detail, nil
}

// Create rejects postings against companies that do not exist instead of
// letting the foreign key error surface as a 500.
func (s *JobService) Create(db *gorm.DB, req dto.JobCreateRequest) (*repositories.JobDetail, error) {
	exists, err := s.companyRepo.Exists(db, req.CompanyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(repositories.ErrCompanyNotFound, "company", "Company not found")
	}

	job := &models.Job{
		CompanyID:     req.CompanyID,
		Title:         req.Title,
		ShortDesc:     req.ShortDesc,
		FullDesc:      req.FullDesc,
		Location:      req.Location,
		ProfileSought: req.ProfileSought,
		ContractType:  req.ContractType,
		WorkMode:      req.WorkMode,
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		Currency:      req.Currency,
		Tags:          req.Tags,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, job.ID)
}

// Patch is strict: any key outside the allowlist fails the whole request.
func (s *JobService) Patch(db *gorm.DB, id uint, payload map[string]interface{}) (*repositories.JobDetail, error) {
	fields, err := strictFields(payload, jobUpdatableFields)
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.UpdateFields(db, id, fields); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, id)
}

func (s *JobService) Delete(db *gorm.DB, id uint) error {
	if err := s.jobRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		if errors.Is(err, repositories.ErrRowReferenced) {
			return apperrors.ErrConflict(err, "job", "Job still has applications attached")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
