package handlers

import (
	"portfolio_backend/internal/idempotency"
	"portfolio_backend/internal/services"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	PortfolioHandler    *PortfolioHandler
	PersonalInfoHandler *PersonalInfoHandler
	CollectionHandlers  []*OrderedHandler
	UploadHandler       *UploadHandler
}

func NewAppHandlers(base *BaseHandler, svc *services.ServiceContainer, guard *idempotency.Guard, maxUploadSize int64) *AppHandlers {
	collections := make([]*OrderedHandler, 0, len(svc.Collections()))
	for _, s := range svc.Collections() {
		collections = append(collections, NewOrderedHandler(base, s, guard))
	}

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.AuthService),
		PortfolioHandler:    NewPortfolioHandler(base, svc.PortfolioService),
		PersonalInfoHandler: NewPersonalInfoHandler(base, svc.PersonalInfoService),
		CollectionHandlers:  collections,
		UploadHandler:       NewUploadHandler(base, svc.UploadService, maxUploadSize),
	}
}
