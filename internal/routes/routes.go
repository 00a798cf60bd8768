package routes

import (
	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		AllowWebSockets: true,
	}))

	AuthRoutes(r)
	TrainRoutes(r)
	SavedTrainRoutes(r)
	TaskRoutes(r)
	WebSocketRoutes(r)

	return r
}
