package controllers

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rail_tracker/internal/config"
	"rail_tracker/internal/seed"
	"rail_tracker/internal/simulator"
)

// taskRng feeds manual simulator invocations. rand.Rand is not safe for
// concurrent use, so triggers serialize on taskRngMu.
var (
	taskRng   = rand.New(rand.NewSource(time.Now().UnixNano()))
	taskRngMu sync.Mutex
)

// RunLocationUpdate triggers a single simulator pass, the same work the
// in-process scheduler performs on its period.
func RunLocationUpdate(c *gin.Context) {
	taskRngMu.Lock()
	defer taskRngMu.Unlock()

	n, err := simulator.RunOnce(config.DB, updateFeed, taskRng)
	if err != nil {
		logrus.WithError(err).Error("Manual simulator invocation failed.")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Train locations updated successfully",
		"updated_count": n,
	})
}

// InitTrainData runs the idempotent sample-data loader.
func InitTrainData(c *gin.Context) {
	if err := seed.Run(config.DB); err != nil {
		logrus.WithError(err).Error("Seed loader failed.")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Train data initialized successfully"})
}
