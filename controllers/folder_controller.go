package controllers

import (
	"strconv"

	"docuvault/middleware"
	"docuvault/services"
	"docuvault/utils"

	"github.com/gin-gonic/gin"
)

type FolderController struct {
	folderService   *services.FolderService
	progressService *services.ProgressService
}

func NewFolderController(folderService *services.FolderService, progressService *services.ProgressService) *FolderController {
	return &FolderController{
		folderService:   folderService,
		progressService: progressService,
	}
}

func (fc *FolderController) ListFolders(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	folders, err := fc.folderService.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Folders retrieved", gin.H{"folders": folders})
}

func (fc *FolderController) CreateFolder(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	var req struct {
		FolderName string `json:"folder_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	folder, err := fc.folderService.Create(c.Request.Context(), userID, req.FolderName)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.CreatedResponse(c, "Folder created", folder)
}

func (fc *FolderController) GetFolderInfo(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	folder, err := fc.folderService.Find(c.Request.Context(), userID, folderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Folder retrieved", folder)
}

func (fc *FolderController) RenameFolder(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		NewName string `json:"new_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	folder, err := fc.folderService.Rename(c.Request.Context(), userID, folderID, req.NewName)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Folder renamed", folder)
}

func (fc *FolderController) DeleteFolder(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := fc.folderService.Delete(c.Request.Context(), userID, folderID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Folder deleted", gin.H{"folder_id": folderID})
}

func (fc *FolderController) GetFolderProgress(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	report, err := fc.progressService.Progress(c.Request.Context(), userID, folderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Progress retrieved", report)
}

// pathID parses an int64 path parameter, writing the 400 itself when
// the value is not numeric.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
