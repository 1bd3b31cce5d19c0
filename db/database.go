package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/config"
	"github.com/GDG-Vishnu/community-platform/logx"
	"github.com/GDG-Vishnu/community-platform/models"
)

var DB *gorm.DB

// EnsureEnums creates the postgres enum types AutoMigrate depends on.
func EnsureEnums(gormDB *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'organizer', 'coordinator', 'member'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE field_type AS ENUM ('text', 'textarea', 'email', 'phone', 'number', 'select', 'multiselect', 'radio', 'checkbox', 'date', 'time', 'file', 'signature', 'slider', 'rating'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := gormDB.Exec(enum).Error; err != nil {
			logx.Errorf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logx.Fatal("Failed to connect to DB:", err)
	}

	EnsureEnums(DB)

	if err := Migrate(DB); err != nil {
		logx.Fatal("Failed to auto migrate:", err)
	}

	logx.Info("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Form{},
		&models.Section{},
		&models.Field{},
		&models.FormSubmission{},
		&models.FieldResponse{},
		&models.TeamMember{},
		&models.Event{},
		&models.GalleryImage{},
		&models.ContactMessage{},
	)
}

// InitWithGormDB swaps in an already-open connection, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
