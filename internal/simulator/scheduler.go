package simulator

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rail_tracker/internal/feed"
)

// Scheduler runs the simulator on a fixed wall-clock period until its context
// is cancelled. Invocations are not coordinated against each other; if one
// overruns the period the writes race and the last one wins.
type Scheduler struct {
	db       *gorm.DB
	feed     *feed.Feed
	interval time.Duration
	rng      *rand.Rand
}

func NewScheduler(db *gorm.DB, f *feed.Feed, interval time.Duration) *Scheduler {
	return &Scheduler{
		db:       db,
		feed:     f,
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run blocks until ctx is cancelled, invoking the simulator once per period.
// A failed invocation is logged and skipped; there is no retry.
func (s *Scheduler) Run(ctx context.Context) {
	logrus.WithField("interval", s.interval.String()).Info("Location simulator started.")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Location simulator stopped.")
			return
		case <-ticker.C:
			n, err := RunOnce(s.db, s.feed, s.rng)
			if err != nil {
				logrus.WithError(err).WithField("updated", n).Error("Simulator invocation failed.")
				continue
			}
			logrus.WithField("updated", n).Debug("Simulator invocation complete.")
		}
	}
}
