package simulator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rail_tracker/internal/models"
	"rail_tracker/internal/simulator"
)

func sampleTrain() models.Train {
	return models.Train{
		TrainNumber:    "12321",
		TrainName:      "Kolkata Mail",
		CurrentStation: "Kanpur Central",
		CurrentLat:     26.4499,
		CurrentLng:     80.3319,
		DelayMinutes:   0,
		Status:         models.StatusOnTime,
	}
}

func TestStep_JitterBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	train := sampleTrain()

	for i := 0; i < 2000; i++ {
		next := simulator.Step(train, rng)
		assert.LessOrEqual(t, math.Abs(next.CurrentLat-train.CurrentLat), 0.005,
			"lat moved more than the jitter bound on step %d", i)
		assert.LessOrEqual(t, math.Abs(next.CurrentLng-train.CurrentLng), 0.005,
			"lng moved more than the jitter bound on step %d", i)
		train = next
	}
}

func TestStep_DelayNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	train := sampleTrain()

	for i := 0; i < 2000; i++ {
		train = simulator.Step(train, rng)
		require.GreaterOrEqual(t, train.DelayMinutes, 0)
	}
}

func TestStep_DelayChangesByAtMostOne(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	train := sampleTrain()
	train.DelayMinutes = 10

	for i := 0; i < 2000; i++ {
		next := simulator.Step(train, rng)
		diff := next.DelayMinutes - train.DelayMinutes
		assert.LessOrEqual(t, diff, 1)
		assert.GreaterOrEqual(t, diff, -1)
		train = next
	}
}

func TestStep_StatusMatchesDelay(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	train := sampleTrain()

	for i := 0; i < 2000; i++ {
		train = simulator.Step(train, rng)
		if train.DelayMinutes == 0 {
			require.Equal(t, models.StatusOnTime, train.Status)
		} else {
			require.Equal(t, models.StatusDelayed, train.Status)
		}
	}
}

func TestStep_LeavesScheduleFieldsAlone(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	train := sampleTrain()

	next := simulator.Step(train, rng)

	assert.Equal(t, train.TrainNumber, next.TrainNumber)
	assert.Equal(t, train.TrainName, next.TrainName)
	assert.Equal(t, train.CurrentStation, next.CurrentStation)
}
