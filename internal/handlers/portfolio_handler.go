package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{BaseHandler: base, portfolioService: portfolioService}
}

func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.GetPortfolio)
}

// GetPortfolio godoc
// @Summary  Whole portfolio in one response
// @Tags     portfolio
// @Produce  json
// @Success  200  {object}  dto.PortfolioView
// @Failure  500  {object}  apperrors.ErrorResponse
// @Router   /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	view, err := h.portfolioService.Get(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
