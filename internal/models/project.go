package models

import "gorm.io/datatypes"

type Project struct {
	OrderedModel
	Name            string                      `gorm:"not null" json:"name"`
	Description     string                      `gorm:"type:text;not null" json:"description"`
	LongDescription *string                     `gorm:"type:text" json:"long_description"`
	Thumbnail       string                      `gorm:"not null" json:"thumbnail"`
	Images          datatypes.JSONSlice[string] `json:"images"`
	Technologies    datatypes.JSONSlice[string] `json:"technologies"`
	GithubURL       *string                     `gorm:"column:github_url" json:"github_url"`
	LiveURL         *string                     `gorm:"column:live_url" json:"live_url"`
	Features        datatypes.JSONSlice[string] `json:"features"`
	Status          *string                     `json:"status"`
	StartDate       *string                     `json:"start_date"`
	EndDate         *string                     `json:"end_date"`
	IsFeatured      bool                        `gorm:"not null;index" json:"is_featured"`
}
