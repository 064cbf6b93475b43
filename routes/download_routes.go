package routes

import (
	"docuvault/controllers"
	"docuvault/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDownloadRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	downloadController := controllers.NewDownloadController(container.DownloadService)

	downloads := rg.Group("/download")
	downloads.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		downloads.GET("/folder/:id", downloadController.DownloadFolder)          // GET /download/folder/:id
		downloads.GET("/category/:id/:name", downloadController.DownloadCategory)
		downloads.GET("/file/:id", downloadController.DownloadFile)              // GET /download/file/:id
	}
}
