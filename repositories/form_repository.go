package repositories

import (
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/models"
)

type FormRepo interface {
	Create(form *models.Form) error
	FindAll() ([]models.Form, error)
	FindByID(id string) (*models.Form, error)
	FindTree(id string) (*models.Form, error)
	Update(form *models.Form) error
	SetActive(id string, active bool) error
	Delete(id string) error
}

type DBFormRepo struct{}

// Create persists the form and any nested sections/fields in one transaction.
func (r *DBFormRepo) Create(form *models.Form) error {
	return db.DB.Create(form).Error
}

func (r *DBFormRepo) FindAll() ([]models.Form, error) {
	var forms []models.Form
	err := db.DB.Preload("Creator").Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindByID(id string) (*models.Form, error) {
	var form models.Form
	err := db.DB.Preload("Creator").First(&form, "id = ?", id).Error
	return &form, err
}

// FindTree loads the form with sections and fields sorted by display order.
func (r *DBFormRepo) FindTree(id string) (*models.Form, error) {
	var form models.Form
	err := db.DB.
		Preload("Creator").
		Preload("Sections", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("display_order asc")
		}).
		Preload("Sections.Fields", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("display_order asc")
		}).
		First(&form, "id = ?", id).Error
	return &form, err
}

func (r *DBFormRepo) Update(form *models.Form) error {
	return db.DB.Save(form).Error
}

func (r *DBFormRepo) SetActive(id string, active bool) error {
	return db.DB.Model(&models.Form{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *DBFormRepo) Delete(id string) error {
	return db.DB.Delete(&models.Form{}, "id = ?", id).Error
}
