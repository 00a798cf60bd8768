package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"rail_tracker/internal/config"
	"rail_tracker/internal/controllers"
	"rail_tracker/internal/feed"
	"rail_tracker/internal/logger"
	"rail_tracker/internal/routes"
	"rail_tracker/internal/simulator"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Change feed shared by the simulator and the websocket handlers
	updateFeed := feed.New()
	controllers.UseFeed(updateFeed)

	// Background location simulator, cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := simulator.NewScheduler(config.DB, updateFeed, config.SimulatorInterval())
	go scheduler.Run(ctx)

	// Setup Gin router
	r := routes.SetupRouter()

	addr := config.ServerAddr()
	log.Printf("🚂 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
