package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobFilter struct {
	Q        string // matches title or short_desc
	Page     int
	PageSize int
}

// JobListItem is the compact card shown in listings, with the owning
// company joined in.
type JobListItem struct {
	ID               uint      `gorm:"column:id" json:"id"`
	Title            string    `gorm:"column:title" json:"title"`
	ShortDesc        string    `gorm:"column:short_desc" json:"short_desc"`
	Location         string    `gorm:"column:location" json:"location"`
	ContractType     string    `gorm:"column:contract_type" json:"contract_type"`
	WorkMode         string    `gorm:"column:work_mode" json:"work_mode"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	CompanyName      string    `gorm:"column:company_name" json:"company_name"`
	CompanyBannerURL string    `gorm:"column:company_banner_url" json:"company_banner_url"`
}

// JobDetail is the full posting plus company display fields.
type JobDetail struct {
	ID               uint      `gorm:"column:id" json:"id"`
	CompanyID        uint      `gorm:"column:company_id" json:"company_id"`
	Title            string    `gorm:"column:title" json:"title"`
	ShortDesc        string    `gorm:"column:short_desc" json:"short_desc"`
	FullDesc         string    `gorm:"column:full_desc" json:"full_desc"`
	Location         string    `gorm:"column:location" json:"location"`
	ProfileSought    string    `gorm:"column:profile_sought" json:"profile_sought"`
	ContractType     string    `gorm:"column:contract_type" json:"contract_type"`
	WorkMode         string    `gorm:"column:work_mode" json:"work_mode"`
	SalaryMin        *int      `gorm:"column:salary_min" json:"salary_min"`
	SalaryMax        *int      `gorm:"column:salary_max" json:"salary_max"`
	Currency         string    `gorm:"column:currency" json:"currency"`
	Tags             string    `gorm:"column:tags" json:"tags"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	CompanyName      string    `gorm:"column:company_name" json:"company_name"`
	CompanyWebsite   string    `gorm:"column:company_website" json:"company_website"`
	CompanyBannerURL string    `gorm:"column:company_banner_url" json:"company_banner_url"`
}

type JobRepository interface {
	List(db *gorm.DB, f JobFilter) ([]JobListItem, int64, error)
	FindDetail(db *gorm.DB, id uint) (*JobDetail, error)
	Exists(db *gorm.DB, id uint) (bool, error)
	Create(db *gorm.DB, job *models.Job) error
	UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uint) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) List(db *gorm.DB, f JobFilter) ([]JobListItem, int64, error) {
	applyFilter := func(q *gorm.DB) *gorm.DB {
		q = q.Table("jobs").Joins("JOIN companies ON companies.id = jobs.company_id")
		if f.Q != "" {
			like := "%" + f.Q + "%"
			q = q.Where("jobs.title LIKE ? OR jobs.short_desc LIKE ?", like, like)
		}
		return q
	}

	var total int64
	if err := applyFilter(db).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []JobListItem
	err := applyFilter(db).
		Select(`jobs.id, jobs.title, jobs.short_desc, jobs.location,
			jobs.contract_type, jobs.work_mode, jobs.created_at,
			companies.name AS company_name,
			companies.banner_url AS company_banner_url`).
		Order("jobs.created_at DESC, jobs.id DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *JobRepositoryImpl) FindDetail(db *gorm.DB, id uint) (*JobDetail, error) {
	var detail JobDetail
	result := db.Table("jobs").
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Select(`jobs.id, jobs.company_id, jobs.title, jobs.short_desc, jobs.full_desc,
			jobs.location, jobs.profile_sought, jobs.contract_type, jobs.work_mode,
			jobs.salary_min, jobs.salary_max, jobs.currency, jobs.tags, jobs.created_at,
			companies.name AS company_name,
			companies.website AS company_website,
			companies.banner_url AS company_banner_url`).
		Where("jobs.id = ?", id).
		Limit(1).
		Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return &detail, nil
}

func (r *JobRepositoryImpl) Exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Job{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

// UpdateFields applies an allowlist-validated field map.
func (r *JobRepositoryImpl) UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		exists, err := r.Exists(db, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrJobNotFound
		}
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		if isRowReferenced(result.Error) {
			return ErrRowReferenced
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
