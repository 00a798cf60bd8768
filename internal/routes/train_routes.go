package routes

import (
	"github.com/gin-gonic/gin"

	"rail_tracker/internal/config"
	"rail_tracker/internal/controllers"
)

func TrainRoutes(r *gin.Engine) {
	tc := controllers.NewTrainController(controllers.NewGormTrainStore(config.DB))

	trains := r.Group("/trains")
	{
		trains.GET("", tc.List)
		trains.GET("/search", tc.Search)
		trains.GET("/:number", tc.Get)
	}
}
