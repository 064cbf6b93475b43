package controllers

import (
	"bytes"
	"net/url"

	"docuvault/middleware"
	"docuvault/services"
	"docuvault/utils"

	"github.com/gin-gonic/gin"
)

type DownloadController struct {
	downloadService *services.DownloadService
}

func NewDownloadController(downloadService *services.DownloadService) *DownloadController {
	return &DownloadController{downloadService: downloadService}
}

func (dc *DownloadController) DownloadFolder(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	name, data, err := dc.downloadService.FolderArchive(c.Request.Context(), userID, folderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	writeArchive(c, name, data)
}

func (dc *DownloadController) DownloadCategory(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	category := c.Param("name")

	name, data, err := dc.downloadService.CategoryArchive(c.Request.Context(), userID, folderID, category)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	writeArchive(c, name, data)
}

func (dc *DownloadController) DownloadFile(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	fileID, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, err := dc.downloadService.FileForDownload(c.Request.Context(), userID, fileID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", contentDisposition(file.Name))
	c.File(*file.StoragePath)
}

// writeArchive streams a built ZIP with UTF-8 safe attachment naming.
func writeArchive(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition", contentDisposition(name))
	c.DataFromReader(200, int64(len(data)), "application/zip", bytes.NewReader(data), nil)
}

func contentDisposition(name string) string {
	return "attachment; filename*=UTF-8''" + url.PathEscape(name)
}
