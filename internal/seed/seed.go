package seed

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rail_tracker/internal/models"
)

// store abstracts the three mutations Run performs, so the upsert decision
// can be exercised in tests without a live database.
type store interface {
	findByNumber(number string) (models.Train, error)
	updateTrain(id uint, t models.Train) error
	createWithRoute(t *models.Train) error
}

// Run loads the sample train set. It is idempotent with respect to
// re-invocation: a train_number that already exists gets its row refreshed in
// place, everything else is inserted together with its route stations.
// Route stations are written once at insert time and never touched again.
func Run(db *gorm.DB) error {
	return run(&gormStore{db: db})
}

func run(s store) error {
	for _, e := range sampleTrains {
		existing, err := s.findByNumber(e.Train.TrainNumber)
		switch {
		case err == nil:
			if err := s.updateTrain(existing.ID, e.Train); err != nil {
				return err
			}
			logrus.WithField("train_number", e.Train.TrainNumber).Debug("Seed: refreshed existing train.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			t := e.Train
			t.Route = e.Route
			if err := s.createWithRoute(&t); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"train_number": t.TrainNumber,
				"stations":     len(t.Route),
			}).Info("Seed: inserted train with route.")
		default:
			return err
		}
	}
	return nil
}

type gormStore struct {
	db *gorm.DB
}

func (g *gormStore) findByNumber(number string) (models.Train, error) {
	var t models.Train
	err := g.db.Where("train_number = ?", number).First(&t).Error
	return t, err
}

func (g *gormStore) updateTrain(id uint, t models.Train) error {
	return g.db.Model(&models.Train{}).Where("id = ?", id).Updates(map[string]interface{}{
		"train_name":      t.TrainName,
		"from_station":    t.FromStation,
		"to_station":      t.ToStation,
		"current_station": t.CurrentStation,
		"next_station":    t.NextStation,
		"current_lat":     t.CurrentLat,
		"current_lng":     t.CurrentLng,
		"delay_minutes":   t.DelayMinutes,
		"status":          t.Status,
	}).Error
}

func (g *gormStore) createWithRoute(t *models.Train) error {
	// Route rows are inserted through the association in one pass.
	return g.db.Create(t).Error
}
