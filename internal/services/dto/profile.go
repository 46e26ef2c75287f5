package dto

import (
	"time"

	"gorm.io/datatypes"

	"jobboard_backend/internal/models"
)

type ProfileCreateRequest struct {
	UserID          uint           `json:"user_id"`
	FirstName       string         `json:"first_name" validate:"required,min=1,max=255"`
	LastName        string         `json:"last_name" validate:"required,min=1,max=255"`
	DateBirth       string         `json:"date_birth" validate:"max=32"`
	City            string         `json:"city" validate:"required,min=1,max=255"`
	Phone           string         `json:"phone" validate:"max=64"`
	Diplomas        string         `json:"diplomas"`
	Experiences     string         `json:"experiences"`
	ExperienceYears *int           `json:"experience_years"`
	Skills          string         `json:"skills"`
	Languages       string         `json:"languages"`
	Qualities       string         `json:"qualities"`
	Interests       string         `json:"interests"`
	JobTarget       string         `json:"job_target"`
	Motivation      string         `json:"motivation"`
	Links           datatypes.JSON `json:"links"`
	AvatarURL       string         `json:"avatar_url" validate:"max=512"`
}

type ProfileResponse struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"user_id"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	DateBirth       string         `json:"date_birth"`
	City            string         `json:"city"`
	Phone           string         `json:"phone"`
	Diplomas        string         `json:"diplomas"`
	Experiences     string         `json:"experiences"`
	ExperienceYears *int           `json:"experience_years"`
	Skills          string         `json:"skills"`
	Languages       string         `json:"languages"`
	Qualities       string         `json:"qualities"`
	Interests       string         `json:"interests"`
	JobTarget       string         `json:"job_target"`
	Motivation      string         `json:"motivation"`
	Links           datatypes.JSON `json:"links"`
	AvatarURL       string         `json:"avatar_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       *time.Time     `json:"updated_at"`
}

func ProfileToResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		DateBirth:       p.DateBirth,
		City:            p.City,
		Phone:           p.Phone,
		Diplomas:        p.Diplomas,
		Experiences:     p.Experiences,
		ExperienceYears: p.ExperienceYears,
		Skills:          p.Skills,
		Languages:       p.Languages,
		Qualities:       p.Qualities,
		Interests:       p.Interests,
		JobTarget:       p.JobTarget,
		Motivation:      p.Motivation,
		Links:           p.Links,
		AvatarURL:       p.AvatarURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ProfilesToResponse(profiles []models.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, ProfileToResponse(&profiles[i]))
	}
	return out
}
