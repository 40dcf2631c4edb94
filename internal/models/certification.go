package models

import "gorm.io/datatypes"

type Certification struct {
	OrderedModel
	Name              string                      `gorm:"not null" json:"name"`
	Issuer            string                      `gorm:"not null" json:"issuer"`
	IssueDate         string                      `gorm:"not null" json:"issue_date"`
	ExpiryDate        *string                     `json:"expiry_date"`
	CredentialID      *string                     `gorm:"column:credential_id" json:"credential_id"`
	CredentialURL     *string                     `gorm:"column:credential_url" json:"credential_url"`
	Logo              *string                     `json:"logo"`
	Description       string                      `gorm:"type:text;not null" json:"description"`
	Skills            datatypes.JSONSlice[string] `json:"skills"`
	ValidationDetails *string                     `gorm:"type:text" json:"validation_details"`
}
