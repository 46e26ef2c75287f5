package repositories

import (
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

// ApplicationRow is what recruiters see per application: the account email
// wins over whatever the candidate typed into the form.
type ApplicationRow struct {
	ID             uint      `gorm:"column:id" json:"id"`
	UserID         uint      `gorm:"column:user_id" json:"user_id"`
	CandidateEmail string    `gorm:"column:candidate_email" json:"candidate_email"`
	Phone          string    `gorm:"column:phone" json:"phone"`
	Message        string    `gorm:"column:message" json:"message"`
	CVURL          string    `gorm:"column:cv_url" json:"cv_url"`
	Status         string    `gorm:"column:status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

type ApplicationRepository interface {
	ListByJob(db *gorm.DB, jobID uint, limit, offset int) ([]ApplicationRow, error)
	CountByJob(db *gorm.DB, jobID uint) (int64, error)
	Create(db *gorm.DB, application *models.Application) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) ListByJob(db *gorm.DB, jobID uint, limit, offset int) ([]ApplicationRow, error) {
	var rows []ApplicationRow
	err := db.Table("applications").
		Joins("LEFT JOIN users ON users.id = applications.user_id").
		Select(`applications.id, applications.user_id,
			COALESCE(users.email, applications.email) AS candidate_email,
			applications.phone, applications.message, applications.cv_url,
			applications.status, applications.created_at`).
		Where("applications.job_id = ?", jobID).
		Order("applications.created_at DESC, applications.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepositoryImpl) CountByJob(db *gorm.DB, jobID uint) (int64, error) {
	var total int64
	err := db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&total).Error
	return total, err
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}
