package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileFilter struct {
	Q        string // matches first or last name
	City     string // exact match
	Skills   string // substring match on the tag list
	Page     int
	PageSize int
}

type ProfileRepository interface {
	List(db *gorm.DB, f ProfileFilter) ([]models.Profile, int64, error)
	FindByID(db *gorm.DB, id uint) (*models.Profile, error)
	Create(db *gorm.DB, profile *models.Profile) error
	UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uint) error

	// Facet scans for the candidate filter aggregator.
	AllSkills(db *gorm.DB) ([]string, error)
	AllLanguages(db *gorm.DB) ([]string, error)
	DistinctDiplomas(db *gorm.DB) ([]string, error)
	DistinctExperienceYears(db *gorm.DB) ([]int, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) List(db *gorm.DB, f ProfileFilter) ([]models.Profile, int64, error) {
	applyFilter := func(q *gorm.DB) *gorm.DB {
		if f.Q != "" {
			like := "%" + f.Q + "%"
			q = q.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
		}
		if f.City != "" {
			q = q.Where("city = ?", f.City)
		}
		if f.Skills != "" {
			q = q.Where("skills LIKE ?", "%"+f.Skills+"%")
		}
		return q
	}

	var total int64
	if err := applyFilter(db.Model(&models.Profile{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Recency prefers the last touch; rows never updated fall back to
	// their creation time.
	var items []models.Profile
	err := applyFilter(db.Model(&models.Profile{})).
		Order("COALESCE(updated_at, created_at) DESC, id DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ProfileRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

// UpdateFields applies an allowlisted field map and stamps updated_at.
func (r *ProfileRepositoryImpl) UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now().UTC()
	result := db.Model(&models.Profile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProfileNotFound
		}
	}
	return nil
}

func (r *ProfileRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) AllSkills(db *gorm.DB) ([]string, error) {
	var values []string
	err := db.Model(&models.Profile{}).
		Where("skills IS NOT NULL AND skills <> ''").
		Pluck("skills", &values).Error
	return values, err
}

func (r *ProfileRepositoryImpl) AllLanguages(db *gorm.DB) ([]string, error) {
	var values []string
	err := db.Model(&models.Profile{}).
		Where("languages IS NOT NULL AND languages <> ''").
		Pluck("languages", &values).Error
	return values, err
}

func (r *ProfileRepositoryImpl) DistinctDiplomas(db *gorm.DB) ([]string, error) {
	var values []string
	err := db.Model(&models.Profile{}).
		Distinct().
		Where("diplomas IS NOT NULL AND diplomas <> ''").
		Pluck("diplomas", &values).Error
	return values, err
}

func (r *ProfileRepositoryImpl) DistinctExperienceYears(db *gorm.DB) ([]int, error) {
	var values []int
	err := db.Model(&models.Profile{}).
		Distinct().
		Where("experience_years IS NOT NULL").
		Order("experience_years").
		Pluck("experience_years", &values).Error
	return values, err
}
