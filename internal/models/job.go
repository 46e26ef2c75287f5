package models

import "time"

// Job belongs to exactly one Company. The company reference is checked
// against a live row inside the request transaction before insert.
type Job struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CompanyID     uint      `gorm:"not null;index" json:"company_id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	ShortDesc     string    `gorm:"column:short_desc;size:512;not null" json:"short_desc"`
	FullDesc      string    `gorm:"column:full_desc;type:text" json:"full_desc"`
	Location      string    `gorm:"size:255" json:"location"`
	ProfileSought string    `gorm:"column:profile_sought;size:512" json:"profile_sought"`
	ContractType  string    `gorm:"column:contract_type;size:64" json:"contract_type"`
	WorkMode      string    `gorm:"column:work_mode;size:64" json:"work_mode"`
	SalaryMin     *int      `gorm:"column:salary_min" json:"salary_min"`
	SalaryMax     *int      `gorm:"column:salary_max" json:"salary_max"`
	Currency      string    `gorm:"size:8" json:"currency"`
	Tags          string    `gorm:"size:512" json:"tags"` // comma-separated
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Company      *Company      `gorm:"foreignKey:CompanyID" json:"-"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}
