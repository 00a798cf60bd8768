package simulator

import (
	"math/rand"

	"gorm.io/gorm"

	"rail_tracker/internal/feed"
	"rail_tracker/internal/models"
)

const (
	// maxJitterDeg bounds the per-invocation coordinate jitter: each of
	// lat/lng moves by a uniform value in [-maxJitterDeg, maxJitterDeg].
	maxJitterDeg = 0.005

	// delayChangeProbability is the chance a single invocation nudges the
	// delay by one minute in either direction.
	delayChangeProbability = 0.3
)

// Step advances one train to its next simulated state. The delay has a floor
// of zero and no upper cap. Status is recomputed from the new delay, so the
// on-time/delayed invariant holds after every step.
func Step(t models.Train, rng *rand.Rand) models.Train {
	t.CurrentLat += (rng.Float64() - 0.5) * 2 * maxJitterDeg
	t.CurrentLng += (rng.Float64() - 0.5) * 2 * maxJitterDeg

	if rng.Float64() < delayChangeProbability {
		delta := 1
		if rng.Float64() < 0.5 {
			delta = -1
		}
		t.DelayMinutes += delta
		if t.DelayMinutes < 0 {
			t.DelayMinutes = 0
		}
	}

	t.Status = models.DeriveStatus(t.DelayMinutes)
	return t
}

// RunOnce applies Step to every train row, persists the four simulated fields
// and publishes an (old,new) update per train. It returns how many trains
// were updated. A store error fails the invocation as a whole; rows already
// written stay written, the next invocation self-corrects.
func RunOnce(db *gorm.DB, f *feed.Feed, rng *rand.Rand) (int, error) {
	var trains []models.Train
	if err := db.Find(&trains).Error; err != nil {
		return 0, err
	}

	updated := 0
	for _, old := range trains {
		next := Step(old, rng)
		err := db.Model(&models.Train{}).Where("id = ?", old.ID).Updates(map[string]interface{}{
			"current_lat":   next.CurrentLat,
			"current_lng":   next.CurrentLng,
			"delay_minutes": next.DelayMinutes,
			"status":        next.Status,
		}).Error
		if err != nil {
			return updated, err
		}
		updated++
		f.Publish(feed.TrainUpdate{Old: old, New: next})
	}
	return updated, nil
}
