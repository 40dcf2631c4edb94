package handlers

import (
	"errors"
	"net/http"

	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartOverhead - запас на границы и заголовки формы сверх лимита файла
const multipartOverhead = 64 << 10

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
	maxFileSize   int64
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
		maxFileSize:   maxFileSize,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/upload")
	uploads.Use(h.RequireAuth())
	{
		uploads.POST("/:kind", h.UploadFile)
		uploads.GET("/:kind", h.ListUploads)
	}
}

// UploadFile godoc
// @Summary      Upload an image
// @Description  Multipart field "file". profile-picture: jpeg/png/gif/webp, company-logo: also svg. Max 5 MiB.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "profile-picture or company-logo"
// @Param        file  formData  file    true  "image"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  apperrors.ErrorResponse
// @Failure      401  {object}  apperrors.ErrorResponse
// @Router       /upload/{kind} [post]
func (h *UploadHandler) UploadFile(c *gin.Context) {
	if h.maxFileSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.HandleServiceError(c, apperrors.ErrFileTooLarge(h.maxFileSize>>20))
			return
		}
		h.HandleServiceError(c, apperrors.ErrNoFileProvided)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resp, err := h.uploadService.Upload(c.Request.Context(), h.GetDB(c), &dto.UploadRequest{
		Kind:     c.Param("kind"),
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		File:     file,
		UserID:   middleware.GetUserID(c),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListUploads godoc
// @Summary   Recent uploads of a kind
// @Tags      upload
// @Produce   json
// @Security  BearerAuth
// @Param     kind   path   string  true   "profile-picture or company-logo"
// @Param     limit  query  int     false  "max records (default 20)"
// @Success   200  {array}  dto.UploadRecord
// @Router    /upload/{kind} [get]
func (h *UploadHandler) ListUploads(c *gin.Context) {
	records, err := h.uploadService.ListRecent(c.Request.Context(), h.GetDB(c), c.Param("kind"), ParseQueryInt(c, "limit", 20))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
