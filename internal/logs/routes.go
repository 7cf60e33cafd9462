package logs

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, logService *LogService, middleware ...gin.HandlerFunc) {
	logController := &LogController{LogService: logService}

	group := r.Group("/logs", middleware...)
	{
		group.POST("/query", logController.GetLogs)
	}
}
