package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is a candidate profile owned by a user. Mutations are restricted
// to the owner or an admin. Skills and languages are comma-separated tag
// lists; the candidate filter facets are derived from them.
type Profile struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	FirstName       string         `gorm:"column:first_name;size:255;not null" json:"first_name"`
	LastName        string         `gorm:"column:last_name;size:255;not null" json:"last_name"`
	City            string         `gorm:"size:255;not null" json:"city"`
	DateBirth       string         `gorm:"column:date_birth;size:32" json:"date_birth,omitempty"`
	Phone           string         `gorm:"size:64" json:"phone,omitempty"`
	Diplomas        string         `gorm:"size:512" json:"diplomas,omitempty"`
	Experiences     string         `gorm:"type:text" json:"experiences,omitempty"`
	ExperienceYears *int           `gorm:"column:experience_years" json:"experience_years,omitempty"`
	Skills          string         `gorm:"size:1024" json:"skills,omitempty"`
	Languages       string         `gorm:"size:512" json:"languages,omitempty"`
	Qualities       string         `gorm:"size:512" json:"qualities,omitempty"`
	Interests       string         `gorm:"size:512" json:"interests,omitempty"`
	JobTarget       string         `gorm:"column:job_target;size:512" json:"job_target,omitempty"`
	Motivation      string         `gorm:"type:text" json:"motivation,omitempty"`
	Links           datatypes.JSON `json:"links,omitempty"`
	AvatarURL       string         `gorm:"column:avatar_url;size:512" json:"avatar_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	// Set explicitly on update so freshly created rows stay NULL and
	// recency ordering can fall back to created_at.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
