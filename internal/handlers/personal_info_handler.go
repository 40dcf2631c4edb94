package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PersonalInfoHandler struct {
	*BaseHandler
	service services.PersonalInfoService
}

func NewPersonalInfoHandler(base *BaseHandler, service services.PersonalInfoService) *PersonalInfoHandler {
	return &PersonalInfoHandler{BaseHandler: base, service: service}
}

func (h *PersonalInfoHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/personal-info", h.Get)
	r.PUT("/personal-info", h.RequireAuth(), h.Update)
}

// Get godoc
// @Summary  Personal info
// @Tags     portfolio
// @Produce  json
// @Success  200  {object}  object
// @Router   /portfolio/personal-info [get]
func (h *PersonalInfoHandler) Get(c *gin.Context) {
	info, err := h.service.Get(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Update godoc
// @Summary   Replace personal info
// @Tags      portfolio
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  object
// @Failure   400  {object}  apperrors.ErrorResponse
// @Failure   401  {object}  apperrors.ErrorResponse
// @Router    /portfolio/personal-info [put]
func (h *PersonalInfoHandler) Update(c *gin.Context) {
	payload, ok := h.DecodePayload(c)
	if !ok {
		return
	}
	info, err := h.service.Update(c.Request.Context(), h.GetDB(c), payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
