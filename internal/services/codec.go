package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio_backend/internal/resource"
	"portfolio_backend/pkg/apperrors"
)

// rowOf сериализует модель в строку хранилища (json-теги моделей = колонки)
func rowOf(model any) (resource.Row, error) {
	raw, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var row resource.Row
	if err := dec.Decode(&row); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	return row, nil
}

// decodeRow собирает модель из подготовленной строки.
// Несовпадение типа колонки превращается в ошибку валидации по имени поля API.
func decodeRow[T any](desc *resource.Descriptor, row resource.Row) (*T, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encode %s row: %w", desc.Name, err)
	}

	item := new(T)
	if err := json.Unmarshal(raw, item); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperrors.ValidationError(map[string]string{
				desc.APIName(typeErr.Field): "Invalid value type",
			})
		}
		return nil, fmt.Errorf("decode %s row: %w", desc.Name, err)
	}
	return item, nil
}

func toPayload(desc *resource.Descriptor, model any) (resource.Payload, error) {
	row, err := rowOf(model)
	if err != nil {
		return nil, err
	}
	return desc.ToAPI(row), nil
}

func fieldErrors(errs resource.FieldErrors) *apperrors.AppError {
	return apperrors.ValidationError(map[string]string(errs))
}
