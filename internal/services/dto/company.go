package dto

import (
	"time"

	"gorm.io/datatypes"

	"jobboard_backend/internal/models"
)

type CompanyCreateRequest struct {
	Name        string         `json:"name" validate:"required,min=1,max=255"`
	HQCity      string         `json:"hq_city" validate:"max=255"`
	Description string         `json:"description"`
	Website     string         `json:"website" validate:"omitempty,max=512"`
	Sector      string         `json:"sector" validate:"max=255"`
	SocialLinks datatypes.JSON `json:"social_links"`
	Headcount   string         `json:"headcount" validate:"max=64"`
	BannerURL   string         `json:"banner_url" validate:"max=512"`
}

type CompanyResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	HQCity      string         `json:"hq_city"`
	Description string         `json:"description"`
	Website     string         `json:"website"`
	Sector      string         `json:"sector"`
	SocialLinks datatypes.JSON `json:"social_links"`
	Headcount   string         `json:"headcount"`
	BannerURL   string         `json:"banner_url"`
	CreatedAt   time.Time      `json:"created_at"`
}

func CompanyToResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		HQCity:      c.HQCity,
		Description: c.Description,
		Website:     c.Website,
		Sector:      c.Sector,
		SocialLinks: c.SocialLinks,
		Headcount:   c.Headcount,
		BannerURL:   c.BannerURL,
		CreatedAt:   c.CreatedAt,
	}
}

func CompaniesToResponse(companies []models.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, CompanyToResponse(&companies[i]))
	}
	return out
}
