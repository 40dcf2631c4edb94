package repositories

import (
	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	ListByKind(db *gorm.DB, kind string, limit int) ([]models.Upload, error)
}

type UploadRepositoryImpl struct{}

func NewUploadRepository() UploadRepository {
	return &UploadRepositoryImpl{}
}

func (r *UploadRepositoryImpl) Create(db *gorm.DB, upload *models.Upload) error {
	return db.Create(upload).Error
}

func (r *UploadRepositoryImpl) ListByKind(db *gorm.DB, kind string, limit int) ([]models.Upload, error) {
	var uploads []models.Upload
	err := db.Where("kind = ?", kind).
		Order("created_at DESC").
		Limit(limit).
		Find(&uploads).Error
	return uploads, err
}
