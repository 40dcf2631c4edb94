package models

type Skill struct {
	OrderedModel
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"not null;index" json:"category"`
	Proficiency *string `json:"proficiency"`
	Icon        *string `json:"icon"`
}
