package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) List(db *gorm.DB, f repositories.ProfileFilter) (*dto.PageResponse, error) {
	items, total, err := s.profileRepo.List(db, f)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PageResponse{
		Items:    dto.ProfilesToResponse(items),
		Page:     f.Page,
		PageSize: f.PageSize,
		Total:    total,
	}, nil
}

func (s *ProfileService) Get(db *gorm.DB, id uint) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ProfileToResponse(profile)
	return &resp, nil
}

// Create attaches the profile to the caller unless the payload names
// another user explicitly.
func (s *ProfileService) Create(db *gorm.DB, actor *models.User, req dto.ProfileCreateRequest) (*dto.ProfileResponse, error) {
	userID := req.UserID
	if userID == 0 {
		userID = actor.ID
	}

	profile := &models.Profile{
		UserID:          userID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DateBirth:       req.DateBirth,
		City:            req.City,
		Phone:           req.Phone,
		Diplomas:        req.Diplomas,
		Experiences:     req.Experiences,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		Languages:       req.Languages,
		Qualities:       req.Qualities,
		Interests:       req.Interests,
		JobTarget:       req.JobTarget,
		Motivation:      req.Motivation,
		Links:           req.Links,
		AvatarURL:       req.AvatarURL,
	}
	if err := s.profileRepo.Create(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ProfileToResponse(profile)
	return &resp, nil
}

// Patch lets the owner or an admin update a profile. Unknown keys are
// dropped; an update left empty is rejected.
func (s *ProfileService) Patch(db *gorm.DB, actor *models.User, id uint, payload map[string]interface{}) (*dto.ProfileResponse, error) {
	if err := s.authorize(db, actor, id); err != nil {
		return nil, err
	}
	fields, err := filterFields(payload, profileUpdatableFields)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.UpdateFields(db, id, fields); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, id)
}

func (s *ProfileService) Delete(db *gorm.DB, actor *models.User, id uint) error {
	if err := s.authorize(db, actor, id); err != nil {
		return err
	}
	if err := s.profileRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// authorize resolves the profile and checks the actor owns it or is an
// admin. Missing profiles report not-found before forbidden.
func (s *ProfileService) authorize(db *gorm.DB, actor *models.User, id uint) error {
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return apperrors.InternalError(err)
	}
	if profile.UserID != actor.ID && actor.Role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}
