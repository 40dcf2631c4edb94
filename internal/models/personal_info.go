package models

// PersonalInfoSlot - ключ единственной строки portfolio_config
const PersonalInfoSlot = "primary"

type PersonalInfo struct {
	BaseModel
	Slot           string  `gorm:"size:32;not null;uniqueIndex" json:"-"`
	ProfilePicture *string `json:"profile_picture"`
	Greeting       string  `gorm:"not null" json:"greeting"`
	Position       string  `gorm:"not null" json:"position"`
	AboutMe        string  `gorm:"type:text;not null" json:"about_me"`
}

func (PersonalInfo) TableName() string {
	return "portfolio_config"
}
