package models

import "gorm.io/datatypes"

type Experience struct {
	OrderedModel
	Position         string                      `gorm:"not null" json:"position"`
	Company          string                      `gorm:"not null" json:"company"`
	EmploymentType   *string                     `json:"employment_type"`
	Location         *string                     `json:"location"`
	StartDate        string                      `gorm:"not null" json:"start_date"`
	EndDate          *string                     `json:"end_date"`
	IsCurrentRole    bool                        `gorm:"not null" json:"is_current_role"`
	Logo             *string                     `json:"logo"`
	Description      *string                     `gorm:"type:text" json:"description"`
	Responsibilities datatypes.JSONSlice[string] `json:"responsibilities"`
	Achievements     datatypes.JSONSlice[string] `json:"achievements"`
	Skills           datatypes.JSONSlice[string] `json:"skills"`
}
