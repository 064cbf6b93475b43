package controllers

import (
	"docuvault/middleware"
	"docuvault/services"
	"docuvault/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := ac.authService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.CreatedResponse(c, "Registration successful", result)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		LoginID  string `json:"login_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := ac.authService.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Login successful", result)
}

func (ac *AuthController) DeleteAccount(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	if err := ac.authService.DeleteAccount(c.Request.Context(), userID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, "Account deleted", nil)
}
