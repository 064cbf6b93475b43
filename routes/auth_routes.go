package routes

import (
	"docuvault/controllers"
	"docuvault/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	authController := controllers.NewAuthController(container.AuthService)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authController.Register) // POST /auth/register
		auth.POST("/login", authController.Login)       // POST /auth/login

		// Account deletion requires a valid token
		auth.DELETE("/me", middleware.AuthMiddleware(container.JWTSecret), authController.DeleteAccount)
	}
}
