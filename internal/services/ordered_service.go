package services

import (
	"context"
	"errors"
	"fmt"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/resource"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// OrderedService - CRUD одной упорядоченной коллекции (skills, experience, ...).
// Одна реализация на все коллекции, различия задает resource.Descriptor.
type OrderedService interface {
	Descriptor() *resource.Descriptor
	List(ctx context.Context, db *gorm.DB) ([]resource.Payload, error)
	Create(ctx context.Context, db *gorm.DB, payload resource.Payload) (resource.Payload, error)
	// Update - полная перезапись: пропущенные необязательные поля обнуляются
	Update(ctx context.Context, db *gorm.DB, id string, payload resource.Payload) (resource.Payload, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type orderedService[T any] struct {
	desc      *resource.Descriptor
	repo      repositories.OrderedRepository[T]
	validator *validator.Validator
}

func NewOrderedService[T any](desc *resource.Descriptor, repo repositories.OrderedRepository[T], v *validator.Validator) OrderedService {
	return &orderedService[T]{
		desc:      desc,
		repo:      repo,
		validator: v,
	}
}

func (s *orderedService[T]) Descriptor() *resource.Descriptor {
	return s.desc
}

func (s *orderedService[T]) List(ctx context.Context, db *gorm.DB) ([]resource.Payload, error) {
	items, err := s.repo.List(db.WithContext(ctx), s.desc.Sorts)
	if err != nil {
		return nil, s.storeError("list", err)
	}

	out := make([]resource.Payload, 0, len(items))
	for i := range items {
		p, err := toPayload(s.desc, &items[i])
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *orderedService[T]) Create(ctx context.Context, db *gorm.DB, payload resource.Payload) (resource.Payload, error) {
	row, err := s.prepare(payload)
	if err != nil {
		return nil, err
	}

	item, err := decodeRow[T](s.desc, row)
	if err != nil {
		return nil, err
	}

	db = db.WithContext(ctx)
	if _, explicit := resource.ExplicitOrder(row); explicit || !s.desc.Ordered {
		if err := s.repo.Insert(db, item); err != nil {
			return nil, s.storeError("create", err)
		}
	} else {
		item, err = s.repo.InsertNext(db, s.desc.OrderBase, func(order int) (*T, error) {
			row[resource.OrderColumn] = order
			return decodeRow[T](s.desc, row)
		})
		if errors.Is(err, resource.ErrOrderExhausted) {
			return nil, apperrors.NewConflictError(s.desc.Name, "No order position left, supply an explicit order")
		}
		if err != nil {
			return nil, s.storeError("create", err)
		}
	}

	created, err := toPayload(s.desc, item)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "Portfolio item created", "resource", s.desc.Name, "id", created["id"], "order", created["order"])
	return created, nil
}

func (s *orderedService[T]) Update(ctx context.Context, db *gorm.DB, id string, payload resource.Payload) (resource.Payload, error) {
	row, err := s.prepare(payload)
	if err != nil {
		return nil, err
	}

	item, err := decodeRow[T](s.desc, row)
	if err != nil {
		return nil, err
	}

	// order пишется только если передан явно, иначе позиция сохраняется
	columns := s.desc.WritableColumns()
	if _, explicit := resource.ExplicitOrder(row); explicit && s.desc.Ordered {
		columns = append(columns, resource.OrderColumn)
	}

	updated, err := s.repo.Update(db.WithContext(ctx), id, item, columns)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, s.notFound()
		}
		return nil, s.storeError("update", err)
	}

	return toPayloadOrInternal(s.desc, updated)
}

func (s *orderedService[T]) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.repo.Delete(db.WithContext(ctx), id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return s.notFound()
		}
		return s.storeError("delete", err)
	}
	logger.CtxInfo(ctx, "Portfolio item deleted", "resource", s.desc.Name, "id", id)
	return nil
}

// prepare - проверка обязательных полей, затем приведение типов и маппинг в колонки
func (s *orderedService[T]) prepare(payload resource.Payload) (resource.Row, error) {
	return prepareRow(s.validator, s.desc, payload)
}

func (s *orderedService[T]) notFound() error {
	return apperrors.NewNotFoundError(s.desc.Name, s.desc.Label+" not found")
}

func (s *orderedService[T]) storeError(op string, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.InternalError(fmt.Errorf("%s %s: %w", op, s.desc.Name, err))
}

func prepareRow(v *validator.Validator, desc *resource.Descriptor, payload resource.Payload) (resource.Row, error) {
	if payload == nil {
		payload = resource.Payload{}
	}
	if err := v.RequireFields(payload, desc.Required); err != nil {
		var missing *validator.MissingFieldsError
		if errors.As(err, &missing) {
			return nil, apperrors.MissingFieldsError(missing.Fields)
		}
		return nil, apperrors.InternalError(err)
	}

	row, errs := desc.Prepare(payload)
	if len(errs) > 0 {
		return nil, fieldErrors(errs)
	}
	return row, nil
}

func toPayloadOrInternal(desc *resource.Descriptor, model any) (resource.Payload, error) {
	p, err := toPayload(desc, model)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}
