package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rail_tracker/internal/models"
)

// fakeStore is an in-memory stand-in for the gorm-backed store, keyed by
// train number like the unique index it models.
type fakeStore struct {
	trains  map[string]*models.Train
	nextID  uint
	updates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{trains: make(map[string]*models.Train)}
}

func (f *fakeStore) findByNumber(number string) (models.Train, error) {
	if t, ok := f.trains[number]; ok {
		return *t, nil
	}
	return models.Train{}, gorm.ErrRecordNotFound
}

func (f *fakeStore) updateTrain(id uint, t models.Train) error {
	f.updates++
	for _, existing := range f.trains {
		if existing.ID == id {
			route := existing.Route
			num := existing.TrainNumber
			model := existing.Model
			*existing = t
			existing.Model = model
			existing.TrainNumber = num
			existing.Route = route
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) createWithRoute(t *models.Train) error {
	f.nextID++
	t.ID = f.nextID
	cp := *t
	f.trains[t.TrainNumber] = &cp
	return nil
}

func TestRun_InsertsEveryTrainWithRoute(t *testing.T) {
	s := newFakeStore()

	require.NoError(t, run(s))

	require.Len(t, s.trains, len(sampleTrains))
	for _, e := range sampleTrains {
		stored, ok := s.trains[e.Train.TrainNumber]
		require.True(t, ok, "train %s missing after seed", e.Train.TrainNumber)
		assert.Len(t, stored.Route, len(e.Route))
	}
}

func TestRun_Twice_LeavesOneRowPerTrainNumber(t *testing.T) {
	s := newFakeStore()

	require.NoError(t, run(s))
	firstIDs := make(map[string]uint, len(s.trains))
	for number, tr := range s.trains {
		firstIDs[number] = tr.ID
	}

	require.NoError(t, run(s))

	require.Len(t, s.trains, len(sampleTrains))
	for number, tr := range s.trains {
		assert.Equal(t, firstIDs[number], tr.ID, "train %s was re-inserted", number)
	}
	assert.Equal(t, len(sampleTrains), s.updates, "second run should refresh every row in place")
}

func TestSampleTrains_UniqueNumbers(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range sampleTrains {
		assert.False(t, seen[e.Train.TrainNumber], "duplicate train number %s", e.Train.TrainNumber)
		seen[e.Train.TrainNumber] = true
	}
}

func TestSampleTrains_RouteOrderingAndDistances(t *testing.T) {
	for _, e := range sampleTrains {
		require.NotEmpty(t, e.Route, "train %s has no route", e.Train.TrainNumber)
		for i, st := range e.Route {
			assert.Equal(t, i+1, st.SequenceNumber,
				"train %s: sequence numbers must be 1-based and strictly increasing", e.Train.TrainNumber)
			if i > 0 {
				assert.GreaterOrEqual(t, st.DistanceKm, e.Route[i-1].DistanceKm,
					"train %s: distances must be non-decreasing", e.Train.TrainNumber)
			}
		}
	}
}

func TestSampleTrains_TerminalStopsHaveNilTimes(t *testing.T) {
	for _, e := range sampleTrains {
		first := e.Route[0]
		last := e.Route[len(e.Route)-1]
		assert.Nil(t, first.ArrivalTime, "train %s: origin must have no arrival", e.Train.TrainNumber)
		assert.NotNil(t, first.DepartureTime)
		assert.Nil(t, last.DepartureTime, "train %s: terminus must have no departure", e.Train.TrainNumber)
		assert.NotNil(t, last.ArrivalTime)
	}
}

func TestSampleTrains_StatusConsistentWithDelay(t *testing.T) {
	for _, e := range sampleTrains {
		assert.Equal(t, models.DeriveStatus(e.Train.DelayMinutes), e.Train.Status,
			"train %s: status must derive from delay", e.Train.TrainNumber)
	}
}
