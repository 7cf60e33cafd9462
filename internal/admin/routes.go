package admin

import (
	"github.com/gin-gonic/gin"

	"crm-master-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, adminService AdminServicePort) {
	adminController := &AdminController{AdminService: adminService}

	adminGroup := r.Group("/admin")
	adminGroup.Use(middlewares.AuthMiddleware())
	{
		adminGroup.GET("/export", adminController.Export)
	}
}
