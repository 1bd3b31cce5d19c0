package repositories

import (
	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/models"
)

type UserRepo interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindAll() ([]models.User, error)
	Update(user *models.User) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	err := db.DB.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *DBUserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := db.DB.First(&user, "username = ?", username).Error
	return &user, err
}

func (r *DBUserRepo) FindAll() ([]models.User, error) {
	var users []models.User
	err := db.DB.Order("created_at asc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Update(user *models.User) error {
	return db.DB.Save(user).Error
}
