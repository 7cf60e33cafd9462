package auth

import (
	"github.com/gin-gonic/gin"

	"crm-master-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, authService AuthServicePort, logService LogServicePort) {
	authController := &AuthController{AuthService: authService, LS: logService}

	group := r.Group("/auth")
	{
		group.POST("/login", authController.Login)
		group.POST("/signup", authController.SignUp)
		group.GET("/me", middlewares.AuthMiddleware(), authController.Me)
		group.GET("/users", middlewares.AuthMiddleware(), authController.GetUsers)
	}
}
