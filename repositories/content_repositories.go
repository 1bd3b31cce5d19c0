package repositories

import (
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/models"
)

type TeamRepo interface {
	Create(member *models.TeamMember) error
	FindByID(id string) (*models.TeamMember, error)
	List(activeOnly bool) ([]models.TeamMember, error)
	MaxOrder() (int, error)
	Update(member *models.TeamMember) error
	Delete(id string) error
	Reorder(updates []OrderUpdate) error
}

type DBTeamRepo struct{}

func (r *DBTeamRepo) Create(member *models.TeamMember) error {
	return db.DB.Create(member).Error
}

func (r *DBTeamRepo) FindByID(id string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := db.DB.First(&member, "id = ?", id).Error
	return &member, err
}

func (r *DBTeamRepo) List(activeOnly bool) ([]models.TeamMember, error) {
	var members []models.TeamMember
	q := db.DB.Order("display_order asc")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&members).Error
	return members, err
}

func (r *DBTeamRepo) MaxOrder() (int, error) {
	var max int
	err := db.DB.Model(&models.TeamMember{}).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&max).Error
	return max, err
}

func (r *DBTeamRepo) Update(member *models.TeamMember) error {
	return db.DB.Save(member).Error
}

func (r *DBTeamRepo) Delete(id string) error {
	return db.DB.Delete(&models.TeamMember{}, "id = ?", id).Error
}

func (r *DBTeamRepo) Reorder(updates []OrderUpdate) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&models.TeamMember{}).
				Where("id = ?", u.ID).
				Update("display_order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type EventRepo interface {
	Create(event *models.Event) error
	FindByID(id string) (*models.Event, error)
	List(publishedOnly bool) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id string) error
}

type DBEventRepo struct{}

func (r *DBEventRepo) Create(event *models.Event) error {
	return db.DB.Create(event).Error
}

func (r *DBEventRepo) FindByID(id string) (*models.Event, error) {
	var event models.Event
	err := db.DB.First(&event, "id = ?", id).Error
	return &event, err
}

func (r *DBEventRepo) List(publishedOnly bool) ([]models.Event, error) {
	var events []models.Event
	q := db.DB.Order("starts_at asc")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	err := q.Find(&events).Error
	return events, err
}

func (r *DBEventRepo) Update(event *models.Event) error {
	return db.DB.Save(event).Error
}

func (r *DBEventRepo) Delete(id string) error {
	return db.DB.Delete(&models.Event{}, "id = ?", id).Error
}

type GalleryRepo interface {
	Create(image *models.GalleryImage) error
	FindByID(id string) (*models.GalleryImage, error)
	List() ([]models.GalleryImage, error)
	MaxOrder() (int, error)
	Update(image *models.GalleryImage) error
	Delete(id string) error
	Reorder(updates []OrderUpdate) error
}

type DBGalleryRepo struct{}

func (r *DBGalleryRepo) Create(image *models.GalleryImage) error {
	return db.DB.Create(image).Error
}

func (r *DBGalleryRepo) FindByID(id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := db.DB.First(&image, "id = ?", id).Error
	return &image, err
}

func (r *DBGalleryRepo) List() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := db.DB.Order("display_order asc").Find(&images).Error
	return images, err
}

func (r *DBGalleryRepo) MaxOrder() (int, error) {
	var max int
	err := db.DB.Model(&models.GalleryImage{}).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&max).Error
	return max, err
}

func (r *DBGalleryRepo) Update(image *models.GalleryImage) error {
	return db.DB.Save(image).Error
}

func (r *DBGalleryRepo) Delete(id string) error {
	return db.DB.Delete(&models.GalleryImage{}, "id = ?", id).Error
}

func (r *DBGalleryRepo) Reorder(updates []OrderUpdate) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&models.GalleryImage{}).
				Where("id = ?", u.ID).
				Update("display_order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type ContactRepo interface {
	Create(message *models.ContactMessage) error
	FindByID(id string) (*models.ContactMessage, error)
	List(unresolvedOnly bool) ([]models.ContactMessage, error)
	Update(message *models.ContactMessage) error
	Delete(id string) error
}

type DBContactRepo struct{}

func (r *DBContactRepo) Create(message *models.ContactMessage) error {
	return db.DB.Create(message).Error
}

func (r *DBContactRepo) FindByID(id string) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := db.DB.First(&message, "id = ?", id).Error
	return &message, err
}

func (r *DBContactRepo) List(unresolvedOnly bool) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	q := db.DB.Order("created_at desc")
	if unresolvedOnly {
		q = q.Where("resolved = ?", false)
	}
	err := q.Find(&messages).Error
	return messages, err
}

func (r *DBContactRepo) Update(message *models.ContactMessage) error {
	return db.DB.Save(message).Error
}

func (r *DBContactRepo) Delete(id string) error {
	return db.DB.Delete(&models.ContactMessage{}, "id = ?", id).Error
}
