package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rail_tracker/internal/config"
	"rail_tracker/internal/feed"
	"rail_tracker/internal/middleware"
	"rail_tracker/internal/models"
	"rail_tracker/internal/notify"
)

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all for development (restrict in production!)
	},
}

var updateFeed *feed.Feed

// UseFeed wires the shared change feed into the websocket handlers. Called
// once at startup before the router starts serving.
func UseFeed(f *feed.Feed) {
	updateFeed = f
}

// watchClose drains a connection until the peer goes away, signalling the
// writer loop through the returned channel.
func watchClose(conn *websocket.Conn) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return done
}

// HandleTrainStream streams new train rows to the caller as the simulator
// publishes them, optionally filtered to a single train number via the
// "number" query parameter. The detail view uses the filtered form, the live
// map the unfiltered one. No authentication: train positions are public.
func HandleTrainStream(c *gin.Context) {
	number := c.Query("number")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection.")
		return
	}
	defer conn.Close()

	ch, unsubscribe := updateFeed.Subscribe()
	defer unsubscribe()

	logrus.WithFields(logrus.Fields{
		"train_number": number,
		"conn_ptr":     fmt.Sprintf("%p", conn),
	}).Info("Train stream connection established.")

	done := watchClose(conn)
	for {
		select {
		case <-done:
			logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("Train stream connection closed.")
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if number != "" && ev.New.TrainNumber != number {
				continue
			}
			if err := conn.WriteJSON(ev.New); err != nil {
				logrus.WithError(err).Warn("Failed to write train update, dropping connection.")
				return
			}
		}
	}
}

// HandleAlertStream delivers per-user alerts. The token travels as a query
// parameter because browsers cannot set headers on websocket upgrades. For
// every feed event the handler checks whether this user has the train saved
// with notifications enabled; only then are alerts evaluated and written.
// Delivery is at-most-once per event per connection, nothing is queued for
// disconnected users.
func HandleAlertStream(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		logrus.Warn("Alert stream connection attempt: missing token query parameter.")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication token"})
		return
	}

	claims, err := middleware.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection.")
		return
	}
	defer conn.Close()

	ch, unsubscribe := updateFeed.Subscribe()
	defer unsubscribe()

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"conn_ptr": fmt.Sprintf("%p", conn),
	}).Info("Alert stream connection established.")

	done := watchClose(conn)
	for {
		select {
		case <-done:
			logrus.WithFields(logrus.Fields{
				"user_id":  userID,
				"conn_ptr": fmt.Sprintf("%p", conn),
			}).Info("Alert stream connection closed.")
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if !wantsAlertsFor(userID, ev.New.ID) {
				continue
			}
			for _, alert := range notify.Evaluate(ev.Old, ev.New) {
				if err := conn.WriteJSON(alert); err != nil {
					logrus.WithError(err).WithField("user_id", userID).
						Warn("Failed to write alert, dropping connection.")
					return
				}
			}
		}
	}
}

// wantsAlertsFor reports whether the user has this train saved with
// notifications enabled. Store errors are logged and treated as "no": a
// missed alert is acceptable, a torn-down connection is not.
func wantsAlertsFor(userID, trainID uint) bool {
	var saved models.SavedTrain
	err := config.DB.
		Where("user_id = ? AND train_id = ? AND notification_enabled = ?", userID, trainID, true).
		First(&saved).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id":  userID,
				"train_id": trainID,
			}).Error("Database error checking saved train for alert.")
		}
		return false
	}
	return true
}
