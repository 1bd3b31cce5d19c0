package repositories

import (
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/models"
)

type SectionRepo interface {
	Create(section *models.Section) error
	FindByID(id string) (*models.Section, error)
	FindWithFields(id string) (*models.Section, error)
	ListByForm(formID string) ([]models.Section, error)
	CountByForm(formID string) (int64, error)
	MaxOrder(formID string) (int, error)
	Update(section *models.Section) error
	Delete(id string) error
	Reorder(updates []OrderUpdate) error
}

type DBSectionRepo struct{}

func (r *DBSectionRepo) Create(section *models.Section) error {
	return db.DB.Create(section).Error
}

func (r *DBSectionRepo) FindByID(id string) (*models.Section, error) {
	var section models.Section
	err := db.DB.First(&section, "id = ?", id).Error
	return &section, err
}

func (r *DBSectionRepo) FindWithFields(id string) (*models.Section, error) {
	var section models.Section
	err := db.DB.Preload("Fields", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("display_order asc")
	}).First(&section, "id = ?", id).Error
	return &section, err
}

func (r *DBSectionRepo) ListByForm(formID string) ([]models.Section, error) {
	var sections []models.Section
	err := db.DB.Where("form_id = ?", formID).Order("display_order asc").Find(&sections).Error
	return sections, err
}

// CountByForm counts live rows; the last-section invariant must never trust a
// cached count.
func (r *DBSectionRepo) CountByForm(formID string) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Section{}).Where("form_id = ?", formID).Count(&count).Error
	return count, err
}

// MaxOrder returns -1 for an empty scope so append lands at 0.
func (r *DBSectionRepo) MaxOrder(formID string) (int, error) {
	var max int
	err := db.DB.Model(&models.Section{}).
		Where("form_id = ?", formID).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&max).Error
	return max, err
}

func (r *DBSectionRepo) Update(section *models.Section) error {
	return db.DB.Save(section).Error
}

func (r *DBSectionRepo) Delete(id string) error {
	return db.DB.Delete(&models.Section{}, "id = ?", id).Error
}

// Reorder applies every order update in one transaction; a failing row rolls
// back all of them.
func (r *DBSectionRepo) Reorder(updates []OrderUpdate) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&models.Section{}).
				Where("id = ?", u.ID).
				Update("display_order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
