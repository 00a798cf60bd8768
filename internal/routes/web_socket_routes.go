package routes

import (
	"github.com/gin-gonic/gin"

	"rail_tracker/internal/controllers"
)

func WebSocketRoutes(r *gin.Engine) {
	wsRoutes := r.Group("/ws")
	{
		wsRoutes.GET("/trains", controllers.HandleTrainStream)
		wsRoutes.GET("/alerts", controllers.HandleAlertStream)
	}
}
