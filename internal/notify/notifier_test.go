package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rail_tracker/internal/models"
	"rail_tracker/internal/notify"
)

func train(station string, delay int) models.Train {
	return models.Train{
		TrainName:      "Kolkata Mail",
		CurrentStation: station,
		DelayMinutes:   delay,
		Status:         models.DeriveStatus(delay),
	}
}

func TestEvaluate_DelayIncrease(t *testing.T) {
	alerts := notify.Evaluate(train("Kanpur Central", 0), train("Kanpur Central", 15))

	require.Len(t, alerts, 1)
	assert.Equal(t, notify.KindError, alerts[0].Kind)
	assert.Equal(t, "Kolkata Mail is delayed by 15 minutes", alerts[0].Message)
	assert.Equal(t, notify.DelayAlertDurationMs, alerts[0].DurationMs)
	assert.NotEmpty(t, alerts[0].ID)
}

func TestEvaluate_StationChange(t *testing.T) {
	alerts := notify.Evaluate(train("Kanpur Central", 0), train("Aligarh Junction", 0))

	require.Len(t, alerts, 1)
	assert.Equal(t, notify.KindInfo, alerts[0].Kind)
	assert.Equal(t, "Kolkata Mail has reached Aligarh Junction", alerts[0].Message)
	assert.Equal(t, notify.StationAlertDurationMs, alerts[0].DurationMs)
}

func TestEvaluate_BothChecksIndependent(t *testing.T) {
	alerts := notify.Evaluate(train("Kanpur Central", 5), train("Aligarh Junction", 8))

	require.Len(t, alerts, 2)
	assert.Equal(t, notify.KindError, alerts[0].Kind)
	assert.Equal(t, notify.KindInfo, alerts[1].Kind)
}

func TestEvaluate_NoAlerts(t *testing.T) {
	cases := []struct {
		name string
		prev models.Train
		next models.Train
	}{
		{"nothing changed", train("Kanpur Central", 5), train("Kanpur Central", 5)},
		{"delay decreased", train("Kanpur Central", 5), train("Kanpur Central", 3)},
		{"delay recovered to zero", train("Kanpur Central", 5), train("Kanpur Central", 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, notify.Evaluate(tc.prev, tc.next))
		})
	}
}
