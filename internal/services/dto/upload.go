package dto

import (
	"io"
	"time"

	"portfolio_backend/internal/models"

	"github.com/ecodeclub/ekit/slice"
)

// UploadRequest - файл из multipart формы
type UploadRequest struct {
	Kind     string
	Filename string
	Size     int64
	File     io.ReadSeeker
	UserID   string
}

// UploadResponse - публичный адрес сохраненного файла
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadRecord - запись журнала загрузок
type UploadRecord struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	URL          string    `json:"url"`
	Path         string    `json:"path"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	OriginalName string    `json:"originalName,omitempty"`
	UploadedBy   string    `json:"uploadedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewUploadRecords(uploads []models.Upload) []UploadRecord {
	return slice.Map(uploads, func(_ int, u models.Upload) UploadRecord {
		return UploadRecord{
			ID:           u.ID,
			Kind:         u.Kind,
			URL:          u.URL,
			Path:         u.Path,
			MimeType:     u.MimeType,
			Size:         u.Size,
			OriginalName: u.OriginalName,
			UploadedBy:   u.UploadedBy,
			CreatedAt:    u.CreatedAt,
		}
	})
}
