package services

import (
	"context"

	"portfolio_backend/internal/resource"
	"portfolio_backend/internal/services/dto"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PortfolioSections - коллекции, из которых собирается общий ответ
type PortfolioSections struct {
	Skills         OrderedService
	SocialLinks    OrderedService
	Experiences    OrderedService
	Educations     OrderedService
	Certifications OrderedService
	Projects       OrderedService
}

// PortfolioService собирает все разделы для публичной страницы
type PortfolioService interface {
	Get(ctx context.Context, db *gorm.DB) (*dto.PortfolioView, error)
}

type portfolioService struct {
	personalInfo PersonalInfoService
	sections     PortfolioSections
}

func NewPortfolioService(personalInfo PersonalInfoService, sections PortfolioSections) PortfolioService {
	return &portfolioService{personalInfo: personalInfo, sections: sections}
}

// Get читает разделы параллельно; ошибка любого чтения отменяет остальные
func (s *portfolioService) Get(ctx context.Context, db *gorm.DB) (*dto.PortfolioView, error) {
	var view dto.PortfolioView
	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		info, err := s.personalInfo.Get(gctx, db)
		view.PersonalInfo = info
		return err
	})

	list := func(svc OrderedService, dst *[]resource.Payload) {
		eg.Go(func() error {
			items, err := svc.List(gctx, db)
			*dst = items
			return err
		})
	}
	list(s.sections.SocialLinks, &view.SocialLinks)
	list(s.sections.Skills, &view.Skills)
	list(s.sections.Projects, &view.Projects)
	list(s.sections.Experiences, &view.Experiences)
	list(s.sections.Educations, &view.Educations)
	list(s.sections.Certifications, &view.Certifications)

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}
