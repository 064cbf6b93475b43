// routes/routes.go
package routes

import (
	"docuvault/config"
	"docuvault/services"
	"docuvault/store"
	"docuvault/utils"

	"github.com/gin-gonic/gin"
)

// ServiceContainer holds all services and shared dependencies.
type ServiceContainer struct {
	JWTSecret       string
	AuthService     *services.AuthService
	FolderService   *services.FolderService
	FileService     *services.FileService
	ArchiveService  *services.ArchiveService
	ClassifyService *services.ClassifyService
	CategoryService *services.CategoryService
	ProgressService *services.ProgressService
	DownloadService *services.DownloadService
	NotifyService   *services.NotifyService
}

// NewServiceContainer wires every service against the given store.
// The notify service owns background workers; callers must Close it
// on shutdown.
func NewServiceContainer(st *store.Store, cfg *config.Config) *ServiceContainer {
	folderLocks := utils.NewKeyedMutex()

	notifyService := services.NewNotifyService(cfg.ExtractorURL, cfg.ClassifierURL, cfg.NotifyTimeout, cfg.NotifyWorkers)
	folderService := services.NewFolderService(st, cfg.StorageDir, folderLocks)
	fileService := services.NewFileService(st, folderService, notifyService, cfg.StorageDir, cfg.MaxFileSize, folderLocks)

	return &ServiceContainer{
		JWTSecret:       cfg.JWTSecret,
		AuthService:     services.NewAuthService(st, folderService, cfg.JWTSecret, cfg.JWTExpiration, cfg.StorageDir),
		FolderService:   folderService,
		FileService:     fileService,
		ArchiveService:  services.NewArchiveService(st, fileService, folderService, folderLocks),
		ClassifyService: services.NewClassifyService(st, folderService, notifyService),
		CategoryService: services.NewCategoryService(st, folderService),
		ProgressService: services.NewProgressService(st, folderService),
		DownloadService: services.NewDownloadService(st, folderService),
		NotifyService:   notifyService,
	}
}

// SetupRoutes registers all route groups under the given API group.
// Middleware on the parent group is expected to be set up by main.go.
func SetupRoutes(api *gin.RouterGroup, container *ServiceContainer) {
	RegisterAuthRoutes(api, container)
	RegisterFolderRoutes(api, container)
	RegisterFileRoutes(api, container)
	RegisterDownloadRoutes(api, container)
}
