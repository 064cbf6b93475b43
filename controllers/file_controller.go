package controllers

import (
	"io"

	"docuvault/middleware"
	"docuvault/services"
	"docuvault/utils"

	"github.com/gin-gonic/gin"
)

type FileController struct {
	fileService     *services.FileService
	archiveService  *services.ArchiveService
	classifyService *services.ClassifyService
}

func NewFileController(fileService *services.FileService, archiveService *services.ArchiveService, classifyService *services.ClassifyService) *FileController {
	return &FileController{
		fileService:     fileService,
		archiveService:  archiveService,
		classifyService: classifyService,
	}
}

func (fc *FileController) UploadFiles(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "folderId")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form")
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		utils.BadRequestResponse(c, "No files provided")
		return
	}

	var uploads []services.FileUpload
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			utils.BadRequestResponse(c, "Failed to open uploaded file "+header.Filename)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			utils.BadRequestResponse(c, "Failed to read uploaded file "+header.Filename)
			return
		}
		uploads = append(uploads, services.FileUpload{Name: header.Filename, Data: data})
	}

	result, err := fc.fileService.UploadFiles(c.Request.Context(), userID, folderID, uploads)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Files processed", result)
}

func (fc *FileController) ListFolderFiles(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	files, err := fc.fileService.ListFolderFiles(c.Request.Context(), userID, folderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Files retrieved", gin.H{"files": files})
}

func (fc *FileController) Unzip(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "folderId")
	if !ok {
		return
	}
	zipFileID, ok := pathID(c, "fileId")
	if !ok {
		return
	}

	result, err := fc.archiveService.Expand(c.Request.Context(), userID, folderID, zipFileID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Archive expanded", result)
}

func (fc *FileController) ClassifyFolder(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "folderId")
	if !ok {
		return
	}

	result, err := fc.classifyService.SubmitFolder(c.Request.Context(), userID, folderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Classification submitted", result)
}

func (fc *FileController) DeleteFile(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	fileID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := fc.fileService.DeleteFile(c.Request.Context(), userID, fileID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "File deleted", gin.H{"file_id": fileID})
}
