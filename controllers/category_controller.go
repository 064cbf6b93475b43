package controllers

import (
	"docuvault/middleware"
	"docuvault/services"
	"docuvault/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService *services.CategoryService
}

func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	categories, err := cc.categoryService.List(c.Request.Context(), userID, folderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	utils.SuccessResponse(c, "Categories retrieved", gin.H{"categories": names})
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		CategoryName string `json:"category_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	category, err := cc.categoryService.Create(c.Request.Context(), userID, folderID, req.CategoryName)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.CreatedResponse(c, "Category created", category)
}

func (cc *CategoryController) RenameCategory(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	oldName := c.Param("name")

	var req struct {
		NewName string `json:"new_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if err := cc.categoryService.Rename(c.Request.Context(), userID, folderID, oldName, req.NewName); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Category renamed", gin.H{"category_name": req.NewName})
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	name := c.Param("name")

	if err := cc.categoryService.Delete(c.Request.Context(), userID, folderID, name); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Category deleted", gin.H{"category_name": name})
}
