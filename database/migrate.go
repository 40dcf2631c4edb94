package database

import (
	"fmt"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"

	"gorm.io/gorm"
)

// Models - все таблицы приложения
func Models() []interface{} {
	return []interface{}{
		&models.Skill{},
		&models.SocialLink{},
		&models.Experience{},
		&models.Education{},
		&models.Certification{},
		&models.Project{},
		&models.PersonalInfo{},
		&models.Upload{},
	}
}

// AutoMigrate создает/обновляет таблицы и гарантирует наличие строки personal info
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if _, err := repositories.NewPersonalInfoRepository().Ensure(db); err != nil {
		return fmt.Errorf("seed personal info: %w", err)
	}

	logger.Info("AutoMigrate completed", "tables", len(Models()))
	return nil
}
