package services

import (
	"context"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/resource"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PersonalInfoService - единственная запись с приветствием, должностью и "обо мне"
type PersonalInfoService interface {
	Get(ctx context.Context, db *gorm.DB) (resource.Payload, error)
	Update(ctx context.Context, db *gorm.DB, payload resource.Payload) (resource.Payload, error)
}

type personalInfoService struct {
	repo      repositories.PersonalInfoRepository
	validator *validator.Validator
}

func NewPersonalInfoService(repo repositories.PersonalInfoRepository, v *validator.Validator) PersonalInfoService {
	return &personalInfoService{repo: repo, validator: v}
}

func (s *personalInfoService) Get(ctx context.Context, db *gorm.DB) (resource.Payload, error) {
	info, err := s.repo.Ensure(db.WithContext(ctx))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPayloadOrInternal(resource.PersonalInfo, info)
}

func (s *personalInfoService) Update(ctx context.Context, db *gorm.DB, payload resource.Payload) (resource.Payload, error) {
	row, err := prepareRow(s.validator, resource.PersonalInfo, payload)
	if err != nil {
		return nil, err
	}

	info, err := decodeRow[models.PersonalInfo](resource.PersonalInfo, row)
	if err != nil {
		return nil, err
	}

	db = db.WithContext(ctx)
	if _, err := s.repo.Ensure(db); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.repo.Update(db, info, resource.PersonalInfo.WritableColumns())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Personal info updated")
	return toPayloadOrInternal(resource.PersonalInfo, updated)
}
