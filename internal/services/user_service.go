package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateRole changes another user's role. Admins cannot change their own
// role, which keeps at least one admin reachable.
func (s *UserService) UpdateRole(db *gorm.DB, actor *models.User, targetID uint, role string) (*dto.UserDTO, error) {
	if actor.ID == targetID {
		return nil, apperrors.ErrCannotModifySelf
	}
	if !models.ValidUserRole(models.UserRole(role)) {
		return nil, apperrors.NewBadRequestError("invalid role: " + role)
	}

	if err := s.userRepo.UpdateRole(db, targetID, models.UserRole(role)); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, targetID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UserDTO{ID: user.ID, Email: user.Email, Role: string(user.Role)}, nil
}
