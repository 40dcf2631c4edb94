package models

// Upload - запись о загруженном в хранилище файле
type Upload struct {
	BaseModel
	Kind            string `gorm:"size:32;not null;index"` // profile-picture, company-logo
	Path            string `gorm:"not null"`
	URL             string `gorm:"column:url;not null"`
	MimeType        string `gorm:"not null"`
	Size            int64  `gorm:"not null"`
	OriginalName    string `gorm:"column:original_name"`
	StorageProvider string `gorm:"column:storage_provider"`
	UploadedBy      string `gorm:"column:uploaded_by;index"`
}
