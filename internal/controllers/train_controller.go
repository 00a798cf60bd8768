package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rail_tracker/internal/models"
)

// TrainStore provides read access to the train registry.
type TrainStore interface {
	List() ([]models.Train, error)
	Search(q string) ([]models.Train, error)
	// FindByNumber returns the train with its route stations attached. The
	// route may come back in any order; callers sort by sequence number.
	FindByNumber(number string) (models.Train, error)
}

type TrainController struct {
	store TrainStore
}

func NewTrainController(store TrainStore) *TrainController {
	return &TrainController{store: store}
}

// List returns every train in the registry.
func (tc *TrainController) List(c *gin.Context) {
	trains, err := tc.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch trains"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trains})
}

// Search matches the query against train number or name, case insensitively.
// An empty result is a 200 with an empty list; the UI renders its own "not
// found" state.
func (tc *TrainController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing search query"})
		return
	}

	trains, err := tc.store.Search(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trains})
}

// routeStationView decorates a route station with approximate map
// coordinates. The offsets are a linear placeholder from the train's current
// position, not geocoded station locations.
type routeStationView struct {
	models.RouteStation
	ApproxLat float64 `json:"approx_lat"`
	ApproxLng float64 `json:"approx_lng"`
}

// ApproxStationPoint places a route station on the map relative to the
// train's live position. Approximate, not authoritative.
func ApproxStationPoint(train models.Train, sequenceNumber int) (lat, lng float64) {
	lat = train.CurrentLat + float64(sequenceNumber-1)*0.5
	lng = train.CurrentLng + float64(sequenceNumber-1)*0.3
	return lat, lng
}

// Get looks a train up by its unique number and returns it together with the
// route ordered by sequence number.
func (tc *TrainController) Get(c *gin.Context) {
	number := c.Param("number")

	train, err := tc.store.FindByNumber(number)
	if err != nil {
		if errors.Is(err, ErrTrainNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	sort.Slice(train.Route, func(i, j int) bool {
		return train.Route[i].SequenceNumber < train.Route[j].SequenceNumber
	})

	route := make([]routeStationView, 0, len(train.Route))
	for _, st := range train.Route {
		lat, lng := ApproxStationPoint(train, st.SequenceNumber)
		route = append(route, routeStationView{RouteStation: st, ApproxLat: lat, ApproxLng: lng})
	}
	train.Route = nil

	c.JSON(http.StatusOK, gin.H{"train": train, "route": route})
}

// gormTrainStore backs TrainStore with the shared gorm connection.
type gormTrainStore struct {
	db *gorm.DB
}

func NewGormTrainStore(db *gorm.DB) TrainStore {
	return &gormTrainStore{db: db}
}

func (s *gormTrainStore) List() ([]models.Train, error) {
	var trains []models.Train
	err := s.db.Find(&trains).Error
	return trains, err
}

func (s *gormTrainStore) Search(q string) ([]models.Train, error) {
	var trains []models.Train
	pattern := "%" + q + "%"
	err := s.db.
		Where("train_number ILIKE ? OR train_name ILIKE ?", pattern, pattern).
		Find(&trains).Error
	return trains, err
}

func (s *gormTrainStore) FindByNumber(number string) (models.Train, error) {
	var train models.Train
	err := s.db.
		Preload("Route").
		Where("train_number = ?", number).
		First(&train).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Train{}, ErrTrainNotFound
	}
	return train, err
}
