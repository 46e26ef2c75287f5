package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var ErrCompanyNotFound = errors.New("company not found")

// CompanyFilter holds list predicates. Text filters are substring matches
// and combine with AND.
type CompanyFilter struct {
	Q        string // matches name
	HQCity   string
	Sector   string
	Page     int
	PageSize int
}

type CompanyRepository interface {
	List(db *gorm.DB, f CompanyFilter) ([]models.Company, int64, error)
	FindByID(db *gorm.DB, id uint) (*models.Company, error)
	Exists(db *gorm.DB, id uint) (bool, error)
	Create(db *gorm.DB, company *models.Company) error
	UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uint) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

// List returns one page plus the exact total over the same predicate, both
// computed on the caller's transaction.
func (r *CompanyRepositoryImpl) List(db *gorm.DB, f CompanyFilter) ([]models.Company, int64, error) {
	applyFilter := func(q *gorm.DB) *gorm.DB {
		if f.Q != "" {
			q = q.Where("name LIKE ?", "%"+f.Q+"%")
		}
		if f.HQCity != "" {
			q = q.Where("hq_city LIKE ?", "%"+f.HQCity+"%")
		}
		if f.Sector != "" {
			q = q.Where("sector LIKE ?", "%"+f.Sector+"%")
		}
		return q
	}

	var total int64
	if err := applyFilter(db.Model(&models.Company{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Company
	err := applyFilter(db.Model(&models.Company{})).
		Order("created_at DESC, id DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	return db.Create(company).Error
}

// UpdateFields applies an already-allowlisted field map. A target that does
// not exist reports ErrCompanyNotFound; a no-op update (identical values)
// succeeds.
func (r *CompanyRepositoryImpl) UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) error {
	result := db.Model(&models.Company{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		exists, err := r.Exists(db, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCompanyNotFound
		}
	}
	return nil
}

func (r *CompanyRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		if isRowReferenced(result.Error) {
			return ErrRowReferenced
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
