package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PersonalInfoRepository interface {
	// Ensure возвращает единственную строку portfolio_config, создавая её при первом обращении.
	// Конкурентные вызовы не создают дубликатов (уникальный slot + ON CONFLICT DO NOTHING).
	Ensure(db *gorm.DB) (*models.PersonalInfo, error)
	Update(db *gorm.DB, info *models.PersonalInfo, columns []string) (*models.PersonalInfo, error)
}

type PersonalInfoRepositoryImpl struct{}

func NewPersonalInfoRepository() PersonalInfoRepository {
	return &PersonalInfoRepositoryImpl{}
}

func (r *PersonalInfoRepositoryImpl) Ensure(db *gorm.DB) (*models.PersonalInfo, error) {
	info, err := r.find(db)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}

	seed := &models.PersonalInfo{Slot: models.PersonalInfoSlot}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoNothing: true,
	}).Create(seed).Error
	if err != nil {
		return nil, err
	}

	return r.find(db)
}

func (r *PersonalInfoRepositoryImpl) Update(db *gorm.DB, info *models.PersonalInfo, columns []string) (*models.PersonalInfo, error) {
	result := db.Model(&models.PersonalInfo{}).
		Where("slot = ?", models.PersonalInfoSlot).
		Select(columns).
		Updates(info)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.find(db)
}

func (r *PersonalInfoRepositoryImpl) find(db *gorm.DB) (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	if err := db.Where("slot = ?", models.PersonalInfoSlot).Take(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &info, nil
}
