package repositories

import (
	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/models"
)

type SubmissionRepo interface {
	Create(submission *models.FormSubmission) error
	CreateBatch(submissions []models.FormSubmission) error
	FindByID(id string) (*models.FormSubmission, error)
	ListByForm(formID string) ([]models.FormSubmission, error)
	CountByForm(formID string) (int64, error)
	Delete(id string) error
	DeleteByForm(formID string) error
}

type DBSubmissionRepo struct{}

// Create persists the submission and its responses in one transaction.
func (r *DBSubmissionRepo) Create(submission *models.FormSubmission) error {
	return db.DB.Create(submission).Error
}

func (r *DBSubmissionRepo) CreateBatch(submissions []models.FormSubmission) error {
	if len(submissions) == 0 {
		return nil
	}
	return db.DB.Create(&submissions).Error
}

func (r *DBSubmissionRepo) FindByID(id string) (*models.FormSubmission, error) {
	var submission models.FormSubmission
	err := db.DB.Preload("Responses").First(&submission, "id = ?", id).Error
	return &submission, err
}

func (r *DBSubmissionRepo) ListByForm(formID string) ([]models.FormSubmission, error) {
	var submissions []models.FormSubmission
	err := db.DB.Where("form_id = ?", formID).
		Preload("Responses").
		Order("submitted_at desc").
		Find(&submissions).Error
	return submissions, err
}

func (r *DBSubmissionRepo) CountByForm(formID string) (int64, error) {
	var count int64
	err := db.DB.Model(&models.FormSubmission{}).Where("form_id = ?", formID).Count(&count).Error
	return count, err
}

func (r *DBSubmissionRepo) Delete(id string) error {
	return db.DB.Delete(&models.FormSubmission{}, "id = ?", id).Error
}

// DeleteByForm removes every submission of a form; responses go with them via
// the cascade constraint.
func (r *DBSubmissionRepo) DeleteByForm(formID string) error {
	return db.DB.Delete(&models.FormSubmission{}, "form_id = ?", formID).Error
}
