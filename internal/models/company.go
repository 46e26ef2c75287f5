package models

import (
	"time"

	"gorm.io/datatypes"
)

type Company struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	HQCity      string         `gorm:"column:hq_city;size:255" json:"hq_city"`
	Description string         `gorm:"type:text" json:"description"`
	Website     string         `gorm:"size:512" json:"website"`
	Sector      string         `gorm:"size:255" json:"sector"`
	SocialLinks datatypes.JSON `gorm:"column:social_links" json:"social_links,omitempty"`
	Headcount   string         `gorm:"size:64" json:"headcount"`
	BannerURL   string         `gorm:"column:banner_url;size:512" json:"banner_url"`
	CreatedAt   time.Time      `json:"created_at"`

	// Relations
	Jobs []Job `gorm:"foreignKey:CompanyID" json:"-"`
}
