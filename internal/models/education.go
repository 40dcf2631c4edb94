package models

import "gorm.io/datatypes"

type Education struct {
	OrderedModel
	School              string                      `gorm:"not null" json:"school"`
	Degree              string                      `gorm:"not null" json:"degree"`
	Field               string                      `gorm:"not null" json:"field"`
	StartDate           string                      `gorm:"not null" json:"start_date"`
	EndDate             *string                     `json:"end_date"`
	IsCurrentlyEnrolled bool                        `gorm:"not null" json:"is_currently_enrolled"`
	Logo                *string                     `json:"logo"`
	Description         *string                     `gorm:"type:text" json:"description"`
	Courses             datatypes.JSONSlice[string] `json:"courses"`
	Achievements        datatypes.JSONSlice[string] `json:"achievements"`
	GPA                 *string                     `gorm:"column:gpa" json:"gpa"`
}
