package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type CompanyService struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

func (s *CompanyService) List(db *gorm.DB, f repositories.CompanyFilter) (*dto.PageResponse, error) {
	items, total, err := s.companyRepo.List(db, f)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PageResponse{
		Items:    dto.CompaniesToResponse(items),
		Page:     f.Page,
		PageSize: f.PageSize,
		Total:    total,
	}, nil
}

func (s *CompanyService) Get(db *gorm.DB, id uint) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.CompanyToResponse(company)
	return &resp, nil
}

func (s *CompanyService) Create(db *gorm.DB, req dto.CompanyCreateRequest) (*dto.CompanyResponse, error) {
	company := &models.Company{
		Name:        req.Name,
		HQCity:      req.HQCity,
		Description: req.Description,
		Website:     req.Website,
		Sector:      req.Sector,
		SocialLinks: req.SocialLinks,
		Headcount:   req.Headcount,
		BannerURL:   req.BannerURL,
	}
	if err := s.companyRepo.Create(db, company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.CompanyToResponse(company)
	return &resp, nil
}

// Patch applies a partial update. Unknown keys are dropped, but a payload
// with nothing applicable left is rejected.
func (s *CompanyService) Patch(db *gorm.DB, id uint, payload map[string]interface{}) (*dto.CompanyResponse, error) {
	fields, err := filterFields(payload, companyUpdatableFields)
	if err != nil {
		return nil, err
	}
	if err := s.companyRepo.UpdateFields(db, id, fields); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, id)
}

func (s *CompanyService) Delete(db *gorm.DB, id uint) error {
	if err := s.companyRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrNotFound(err, "company", "Company not found")
		}
		if errors.Is(err, repositories.ErrRowReferenced) {
			return apperrors.ErrConflict(err, "company", "Company still has jobs attached")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
