package routes

import (
	"github.com/gin-gonic/gin"

	"rail_tracker/internal/config"
	"rail_tracker/internal/controllers"
	"rail_tracker/internal/middleware"
)

func SavedTrainRoutes(r *gin.Engine) {
	sc := controllers.NewSavedTrainController(controllers.NewGormSavedTrainStore(config.DB))

	// Bookmarking lives next to the train it targets.
	r.POST("/trains/:number/save", middleware.RequireAuth(), sc.Save)

	saved := r.Group("/saved")
	saved.Use(middleware.RequireAuth())
	{
		saved.GET("", sc.List)
		saved.DELETE("/:id", sc.Unsave)
		saved.PATCH("/:id/notifications", sc.ToggleNotifications)
	}
}
