package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"
	"portfolio_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lithammer/shortuuid/v4"
	"gorm.io/gorm"
)

const (
	UploadKindProfilePicture = "profile-picture"
	UploadKindCompanyLogo    = "company-logo"

	mib = 1 << 20
)

// UploadKind - вид загружаемого файла: каталог в хранилище и допустимые типы
type UploadKind struct {
	Name         string
	Prefix       string
	AllowedTypes []string
}

var rasterImages = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// DefaultUploadKinds - фото профиля и логотипы компаний (логотипу разрешен svg)
func DefaultUploadKinds() map[string]UploadKind {
	return map[string]UploadKind{
		UploadKindProfilePicture: {
			Name:         UploadKindProfilePicture,
			Prefix:       "profile-pictures",
			AllowedTypes: rasterImages,
		},
		UploadKindCompanyLogo: {
			Name:         UploadKindCompanyLogo,
			Prefix:       "company-logos",
			AllowedTypes: append(append([]string{}, rasterImages...), "image/svg+xml"),
		},
	}
}

type UploadConfig struct {
	MaxFileSize int64
	Kinds       map[string]UploadKind
}

type UploadService interface {
	Upload(ctx context.Context, db *gorm.DB, req *dto.UploadRequest) (*dto.UploadResponse, error)
	ListRecent(ctx context.Context, db *gorm.DB, kind string, limit int) ([]dto.UploadRecord, error)
}

type uploadService struct {
	uploadRepo repositories.UploadRepository
	storage    storage.Storage
	config     UploadConfig
}

func NewUploadService(uploadRepo repositories.UploadRepository, store storage.Storage, cfg UploadConfig) UploadService {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 5 * mib
	}
	if cfg.Kinds == nil {
		cfg.Kinds = DefaultUploadKinds()
	}
	return &uploadService{
		uploadRepo: uploadRepo,
		storage:    store,
		config:     cfg,
	}
}

func (s *uploadService) Upload(ctx context.Context, db *gorm.DB, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	kind, ok := s.config.Kinds[req.Kind]
	if !ok {
		return nil, apperrors.ErrUnknownUploadKind
	}
	if req.File == nil || req.Size <= 0 {
		return nil, apperrors.ErrNoFileProvided
	}

	mimeType, ext, err := s.validateFile(req, kind)
	if err != nil {
		return nil, err
	}

	key := path.Join(kind.Prefix, fmt.Sprintf("%s-%s%s", kind.Name, shortuuid.New(), ext))
	if err := s.storage.Save(ctx, key, req.File, req.Size, mimeType); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("save upload: %w", err))
	}

	url := s.storage.URL(key)
	record := &models.Upload{
		Kind:            kind.Name,
		Path:            key,
		URL:             url,
		MimeType:        mimeType,
		Size:            req.Size,
		OriginalName:    req.Filename,
		StorageProvider: s.storage.Provider(),
		UploadedBy:      req.UserID,
	}
	if err := s.uploadRepo.Create(db.WithContext(ctx), record); err != nil {
		s.removeOrphan(ctx, key)
		return nil, apperrors.InternalError(fmt.Errorf("record upload: %w", err))
	}

	logger.CtxInfo(ctx, "File uploaded", "kind", kind.Name, "path", key, "size", req.Size, "mime_type", mimeType)
	return &dto.UploadResponse{URL: url}, nil
}

// removeOrphan удаляет сохраненный объект, для которого не удалось записать строку uploads
func (s *uploadService) removeOrphan(ctx context.Context, key string) {
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to check orphaned upload", err, "path", key)
	} else if !exists {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.CtxWithError(ctx, "Failed to remove orphaned upload", err, "path", key)
		return
	}
	logger.CtxWarn(ctx, "Orphaned upload removed", "path", key)
}

// validateFile - размер не больше лимита (включительно), тип определяется по содержимому
func (s *uploadService) validateFile(req *dto.UploadRequest, kind UploadKind) (string, string, error) {
	if req.Size > s.config.MaxFileSize {
		return "", "", apperrors.ErrFileTooLarge(s.config.MaxFileSize / mib)
	}

	mtype, err := mimetype.DetectReader(req.File)
	if err != nil {
		return "", "", apperrors.InternalError(fmt.Errorf("detect mime type: %w", err))
	}
	if _, err := req.File.Seek(0, io.SeekStart); err != nil {
		return "", "", apperrors.InternalError(fmt.Errorf("rewind upload: %w", err))
	}

	for _, allowed := range kind.AllowedTypes {
		if mtype.Is(allowed) {
			return allowed, mtype.Extension(), nil
		}
	}
	return "", "", apperrors.ErrInvalidFileType
}

func (s *uploadService) ListRecent(ctx context.Context, db *gorm.DB, kind string, limit int) ([]dto.UploadRecord, error) {
	if _, ok := s.config.Kinds[kind]; !ok {
		return nil, apperrors.ErrUnknownUploadKind
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uploads, err := s.uploadRepo.ListByKind(db.WithContext(ctx), kind, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUploadRecords(uploads), nil
}

