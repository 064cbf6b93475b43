package routes

import (
	"docuvault/controllers"
	"docuvault/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFileRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	fileController := controllers.NewFileController(container.FileService, container.ArchiveService, container.ClassifyService)

	files := rg.Group("/files")
	files.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		files.GET("/folder/:id", fileController.ListFolderFiles)            // GET /files/folder/:id
		files.POST("/upload/:folderId", fileController.UploadFiles)         // POST /files/upload/:folderId
		files.POST("/unzip/:folderId/:fileId", fileController.Unzip)        // POST /files/unzip/:folderId/:fileId
		files.POST("/classify/:folderId", fileController.ClassifyFolder)    // POST /files/classify/:folderId
		files.DELETE("/:id", fileController.DeleteFile)                     // DELETE /files/:id
	}
}
