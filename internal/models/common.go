package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - общие поля всех таблиц. json-теги в snake_case совпадают
// с именами колонок: сериализованная модель и есть строка хранилища.
type BaseModel struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate выдает UUID, если он не задан
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// OrderedModel - элемент упорядоченной коллекции
type OrderedModel struct {
	BaseModel
	Order int `gorm:"column:order;not null;index" json:"order"`
}
