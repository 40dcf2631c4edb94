package routes

import (
	"net/http"

	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options - служебные маршруты, зависящие от конфигурации
type Options struct {
	// FilesRoot - каталог локального хранилища, раздается по FilesPath
	FilesRoot string
	FilesPath string
	Swagger   bool
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, opts Options) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if opts.Swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if opts.FilesRoot != "" && opts.FilesPath != "" {
		ginRouter.Static(opts.FilesPath, opts.FilesRoot)
		logger.Info("Serving local uploads", "path", opts.FilesPath, "root", opts.FilesRoot)
	}

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)

		portfolio := api.Group("/portfolio")
		appHandlers.PortfolioHandler.RegisterRoutes(portfolio)
		appHandlers.PersonalInfoHandler.RegisterRoutes(portfolio)
		for _, h := range appHandlers.CollectionHandlers {
			h.RegisterRoutes(portfolio)
		}
	}
}
