package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio_backend/internal/idempotency"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// OrderedHandler - HTTP поверхность одной упорядоченной коллекции
type OrderedHandler struct {
	*BaseHandler
	service services.OrderedService
	guard   *idempotency.Guard
}

func NewOrderedHandler(base *BaseHandler, service services.OrderedService, guard *idempotency.Guard) *OrderedHandler {
	return &OrderedHandler{
		BaseHandler: base,
		service:     service,
		guard:       guard,
	}
}

// RegisterRoutes - чтение публичное, изменения только после проверки вызывающего
func (h *OrderedHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/" + h.service.Descriptor().Name)
	{
		group.GET("", h.List)

		protected := group.Group("")
		protected.Use(h.RequireAuth())
		{
			protected.POST("", h.Create)
			protected.PUT("/:id", h.Update)
			protected.DELETE("/:id", h.Delete)
		}
	}
}

// List godoc
// @Summary      List collection items
// @Description  Items sorted by order, then by the collection's secondary key, then by id.
// @Tags         portfolio
// @Produce      json
// @Param        collection  path  string  true  "skills, social-links, experience, education, certification, projects"
// @Success      200  {array}   object
// @Failure      500  {object}  apperrors.ErrorResponse
// @Router       /portfolio/{collection} [get]
func (h *OrderedHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary      Create collection item
// @Description  Without an explicit order the item is appended after the current maximum.
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        collection       path    string  true   "collection name"
// @Param        Idempotency-Key  header  string  false  "replay protection key"
// @Success      201  {object}  object
// @Failure      400  {object}  apperrors.ErrorResponse
// @Failure      401  {object}  apperrors.ErrorResponse
// @Failure      409  {object}  apperrors.ErrorResponse
// @Router       /portfolio/{collection} [post]
func (h *OrderedHandler) Create(c *gin.Context) {
	payload, ok := h.DecodePayload(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	scope := h.service.Descriptor().Name + ":" + middleware.GetUserID(c)

	resp, replayed, err := h.guard.Do(ctx, scope, c.GetHeader(idempotency.HeaderKey), func() (idempotency.Response, error) {
		created, err := h.service.Create(ctx, h.GetDB(c), payload)
		if err != nil {
			return idempotency.Response{}, err
		}
		body, err := json.Marshal(created)
		if err != nil {
			return idempotency.Response{}, apperrors.InternalError(err)
		}
		return idempotency.Response{Status: http.StatusCreated, Body: body}, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, idempotency.ErrInProgress):
			h.HandleServiceError(c, apperrors.ErrRequestInProgress)
		case errors.Is(err, idempotency.ErrInvalidKey):
			h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid Idempotency-Key header"))
		default:
			h.HandleServiceError(c, err)
		}
		return
	}

	if replayed {
		c.Header(idempotency.HeaderReplayed, "true")
	}
	c.Data(resp.Status, "application/json; charset=utf-8", resp.Body)
}

// Update godoc
// @Summary      Replace collection item
// @Description  Full overwrite: omitted optional fields are cleared, order is kept unless supplied.
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "collection name"
// @Param        id          path  string  true  "item id"
// @Success      200  {object}  object
// @Failure      400  {object}  apperrors.ErrorResponse
// @Failure      401  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /portfolio/{collection}/{id} [put]
func (h *OrderedHandler) Update(c *gin.Context) {
	payload, ok := h.DecodePayload(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete collection item
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "collection name"
// @Param        id          path  string  true  "item id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /portfolio/{collection}/{id} [delete]
func (h *OrderedHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: h.service.Descriptor().Label + " deleted successfully",
	})
}
