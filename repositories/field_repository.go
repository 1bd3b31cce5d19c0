package repositories

import (
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/models"
)

type FieldRepo interface {
	Create(field *models.Field) error
	FindByID(id string) (*models.Field, error)
	ListBySection(sectionID string) ([]models.Field, error)
	MaxOrder(sectionID string) (int, error)
	Update(field *models.Field) error
	Delete(id string) error
	Reorder(updates []OrderUpdate) error
	Move(fieldID, newSectionID string, newOrder int) error
}

type DBFieldRepo struct{}

func (r *DBFieldRepo) Create(field *models.Field) error {
	return db.DB.Create(field).Error
}

func (r *DBFieldRepo) FindByID(id string) (*models.Field, error) {
	var field models.Field
	err := db.DB.First(&field, "id = ?", id).Error
	return &field, err
}

func (r *DBFieldRepo) ListBySection(sectionID string) ([]models.Field, error) {
	var fields []models.Field
	err := db.DB.Where("section_id = ?", sectionID).Order("display_order asc").Find(&fields).Error
	return fields, err
}

func (r *DBFieldRepo) MaxOrder(sectionID string) (int, error) {
	var max int
	err := db.DB.Model(&models.Field{}).
		Where("section_id = ?", sectionID).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&max).Error
	return max, err
}

func (r *DBFieldRepo) Update(field *models.Field) error {
	return db.DB.Save(field).Error
}

func (r *DBFieldRepo) Delete(id string) error {
	return db.DB.Delete(&models.Field{}, "id = ?", id).Error
}

func (r *DBFieldRepo) Reorder(updates []OrderUpdate) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&models.Field{}).
				Where("id = ?", u.ID).
				Update("display_order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBFieldRepo) Move(fieldID, newSectionID string, newOrder int) error {
	return db.DB.Model(&models.Field{}).
		Where("id = ?", fieldID).
		Updates(map[string]any{"section_id": newSectionID, "display_order": newOrder}).Error
}
