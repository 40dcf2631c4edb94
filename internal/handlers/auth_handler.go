package handlers

import (
	"net/http"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/auth")
	{
		group.POST("/login", h.Login)
		group.GET("/me", h.RequireAuth(), h.Me)
	}
}

// Login godoc
// @Summary  Admin login
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request  body  dto.LoginRequest  true  "credentials"
// @Success  200  {object}  dto.LoginResponse
// @Failure  400  {object}  apperrors.ErrorResponse
// @Failure  401  {object}  apperrors.ErrorResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary   Current caller
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  auth.Identity
// @Failure   401  {object}  apperrors.ErrorResponse
// @Router    /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, auth.Identity{
		UserID: middleware.GetUserID(c),
		Email:  c.GetString(middleware.ContextEmail),
		Role:   c.GetString(middleware.ContextRole),
	})
}
