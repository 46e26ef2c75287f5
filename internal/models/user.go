package models

import "time"

// User is an account row. Email is stored normalized to lowercase; the
// unique index on it is what surfaces duplicate signups as conflicts.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Profiles     []Profile     `gorm:"foreignKey:UserID" json:"-"`
	Applications []Application `gorm:"foreignKey:UserID" json:"-"`
}
