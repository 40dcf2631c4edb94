package storage

//go:generate mockgen -source=./storage.go -destination=./mocks/storage.mock.go -package=storagemocks Storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"portfolio_backend/internal/config"
)

const (
	TypeLocal        = "local"
	TypeS3           = "s3"
	TypeCloudflareR2 = "cloudflare_r2"
)

var ErrInvalidKey = errors.New("invalid object key")

// Storage - хранилище загруженных файлов (логотипы, фото профиля)
type Storage interface {
	// Save пишет объект по ключу вида "<prefix>/<name>"
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL - публичный адрес объекта
	URL(key string) string
	// Provider - имя бэкенда, сохраняется в записи о загрузке
	Provider() string
}

// NewStorage выбирает реализацию по storage.type
func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", TypeLocal:
		return NewLocalStorage(cfg)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeCloudflareR2:
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// cleanKey запрещает абсолютные пути и выход за пределы корня
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

func joinURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + key
}
