package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/utils"
	"jobboard_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup registers a new account. The role is always the default one; role
// elevation is a separate admin operation.
func (s *AuthService) Signup(db *gorm.DB, req dto.SignupRequest) (*dto.UserDTO, error) {
	email := utils.NormalizeEmail(req.Email)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserDTO{ID: user.ID, Email: user.Email, Role: string(user.Role)}, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password produce the same error on purpose.
func (s *AuthService) Login(db *gorm.DB, req dto.LoginRequest) (*dto.TokenResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
