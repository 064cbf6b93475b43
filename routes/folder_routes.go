package routes

import (
	"docuvault/controllers"
	"docuvault/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFolderRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	folderController := controllers.NewFolderController(container.FolderService, container.ProgressService)
	categoryController := controllers.NewCategoryController(container.CategoryService)

	folders := rg.Group("/folders")
	folders.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		folders.GET("", folderController.ListFolders)                // GET /folders
		folders.POST("", folderController.CreateFolder)              // POST /folders
		folders.GET("/:id/info", folderController.GetFolderInfo)     // GET /folders/:id/info
		folders.PATCH("/:id/rename", folderController.RenameFolder)  // PATCH /folders/:id/rename
		folders.DELETE("/:id", folderController.DeleteFolder)        // DELETE /folders/:id
		folders.GET("/:id/progress", folderController.GetFolderProgress)

		// Per-folder categories
		folders.GET("/:id/categories", categoryController.ListCategories)
		folders.POST("/:id/categories", categoryController.CreateCategory)
		folders.PUT("/:id/categories/:name", categoryController.RenameCategory)
		folders.DELETE("/:id/categories/:name", categoryController.DeleteCategory)
	}
}
