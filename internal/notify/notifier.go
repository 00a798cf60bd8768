package notify

import (
	"fmt"

	"github.com/google/uuid"

	"rail_tracker/internal/models"
)

// Alert kinds, mirroring the toast severities the dashboard renders.
const (
	KindError = "error"
	KindInfo  = "info"
)

// Display durations in milliseconds. Delay alerts stay on screen longer than
// informational ones.
const (
	DelayAlertDurationMs   = 10000
	StationAlertDurationMs = 5000
)

// Alert is one user-facing notification, delivered fire-and-forget over the
// alert websocket.
type Alert struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	TrainID    uint   `json:"train_id"`
	DurationMs int    `json:"duration_ms"`
}

// Evaluate turns one train update into zero, one or two alerts:
//   - a delay alert when the delay grew and the resulting delay is positive
//   - a station alert when the current station changed
//
// The two checks are independent. Evaluate is pure; the caller has already
// decided the receiving user cares about this train.
func Evaluate(prev, next models.Train) []Alert {
	var alerts []Alert

	if next.DelayMinutes > prev.DelayMinutes && next.DelayMinutes > 0 {
		alerts = append(alerts, Alert{
			ID:         uuid.NewString(),
			Kind:       KindError,
			Message:    fmt.Sprintf("%s is delayed by %d minutes", next.TrainName, next.DelayMinutes),
			TrainID:    next.ID,
			DurationMs: DelayAlertDurationMs,
		})
	}

	if next.CurrentStation != prev.CurrentStation {
		alerts = append(alerts, Alert{
			ID:         uuid.NewString(),
			Kind:       KindInfo,
			Message:    fmt.Sprintf("%s has reached %s", next.TrainName, next.CurrentStation),
			TrainID:    next.ID,
			DurationMs: StationAlertDurationMs,
		})
	}

	return alerts
}
