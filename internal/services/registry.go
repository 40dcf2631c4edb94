package services

import (
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/resource"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/validator"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	Skills         OrderedService
	SocialLinks    OrderedService
	Experiences    OrderedService
	Educations     OrderedService
	Certifications OrderedService
	Projects       OrderedService

	PersonalInfoService PersonalInfoService
	PortfolioService    PortfolioService
	UploadService       UploadService
	AuthService         AuthService
}

// NewServiceContainer собирает сервисы поверх репозиториев
func NewServiceContainer(cfg *config.Config, store storage.Storage, tokens *auth.TokenManager, v *validator.Validator) *ServiceContainer {
	c := &ServiceContainer{
		Skills:         NewOrderedService(resource.Skills, repositories.NewOrderedRepository[models.Skill](), v),
		SocialLinks:    NewOrderedService(resource.SocialLinks, repositories.NewOrderedRepository[models.SocialLink](), v),
		Experiences:    NewOrderedService(resource.Experiences, repositories.NewOrderedRepository[models.Experience](), v),
		Educations:     NewOrderedService(resource.Educations, repositories.NewOrderedRepository[models.Education](), v),
		Certifications: NewOrderedService(resource.Certifications, repositories.NewOrderedRepository[models.Certification](), v),
		Projects:       NewOrderedService(resource.Projects, repositories.NewOrderedRepository[models.Project](), v),

		PersonalInfoService: NewPersonalInfoService(repositories.NewPersonalInfoRepository(), v),
		AuthService:         NewAuthService(cfg.Admin, tokens),
	}

	c.PortfolioService = NewPortfolioService(c.PersonalInfoService, PortfolioSections{
		Skills:         c.Skills,
		SocialLinks:    c.SocialLinks,
		Experiences:    c.Experiences,
		Educations:     c.Educations,
		Certifications: c.Certifications,
		Projects:       c.Projects,
	})

	c.UploadService = NewUploadService(repositories.NewUploadRepository(), store, UploadConfig{
		MaxFileSize: cfg.Upload.MaxSize,
	})

	return c
}

// Collections - упорядоченные коллекции в порядке регистрации маршрутов
func (c *ServiceContainer) Collections() []OrderedService {
	return []OrderedService{c.Skills, c.SocialLinks, c.Experiences, c.Educations, c.Certifications, c.Projects}
}
