package models

type SocialLink struct {
	OrderedModel
	Name string `gorm:"not null" json:"name"`
	Icon string `gorm:"not null" json:"icon"`
	URL  string `gorm:"column:url;not null" json:"url"`
}
