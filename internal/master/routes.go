package master

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, service MasterServiceAPI, middleware ...gin.HandlerFunc) {
	masterController := &MasterController{Service: service}

	group := r.Group("/", middleware...)
	{
		group.GET("/:resource", masterController.List)
		group.GET("/:resource/:id", masterController.Get)
		group.POST("/:resource", masterController.Create)
		group.PUT("/:resource/:id", masterController.Update)
		group.PATCH("/:resource/:id", masterController.Patch)
		group.DELETE("/:resource/:id", masterController.Delete)
	}
}
