package dto

import "portfolio_backend/internal/resource"

// PortfolioView - все разделы портфолио одним ответом
type PortfolioView struct {
	PersonalInfo   resource.Payload   `json:"personalInfo"`
	SocialLinks    []resource.Payload `json:"socialLinks"`
	Skills         []resource.Payload `json:"skills"`
	Projects       []resource.Payload `json:"projects"`
	Experiences    []resource.Payload `json:"experiences"`
	Educations     []resource.Payload `json:"educations"`
	Certifications []resource.Payload `json:"certifications"`
}

// MessageResponse - подтверждение операции без тела
type MessageResponse struct {
	Message string `json:"message"`
}
