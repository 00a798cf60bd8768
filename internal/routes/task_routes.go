package routes

import (
	"github.com/gin-gonic/gin"

	"rail_tracker/internal/controllers"
	"rail_tracker/internal/middleware"
)

// TaskRoutes exposes the run-once entry points the hosted platform used to
// provide as scheduled functions. Both are safe to re-invoke, but only
// admins may trigger them.
func TaskRoutes(r *gin.Engine) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuthWithRole("admin"))
	{
		tasks.POST("/update-locations", controllers.RunLocationUpdate)
		tasks.POST("/init-data", controllers.InitTrainData)
	}
}
