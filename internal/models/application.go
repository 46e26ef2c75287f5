package models

import "time"

// Application links an authenticated candidate to a job posting. The job
// reference is checked against a live row before insert.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JobID     uint      `gorm:"not null;index" json:"job_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:255" json:"name,omitempty"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Phone     string    `gorm:"size:64" json:"phone,omitempty"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	CVURL     string    `gorm:"column:cv_url;size:512" json:"cv_url,omitempty"`
	Status    string    `gorm:"size:32;not null;default:'new'" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Job  *Job  `gorm:"foreignKey:JobID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
