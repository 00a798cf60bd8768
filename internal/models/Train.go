package models

import (
	"gorm.io/gorm"
)

// Train status values. Status is derived from DelayMinutes and never set
// independently.
const (
	StatusOnTime  = "on-time"
	StatusDelayed = "delayed"
)

// Train represents one tracked service. Lat/lng, delay and status are
// mutated by the location simulator; everything else is written at seed time.
type Train struct {
	gorm.Model

	TrainNumber    string  `json:"train_number" gorm:"uniqueIndex" binding:"required"`
	TrainName      string  `json:"train_name" binding:"required"`
	FromStation    string  `json:"from_station"`
	ToStation      string  `json:"to_station"`
	CurrentStation string  `json:"current_station"`
	NextStation    string  `json:"next_station"`
	CurrentLat     float64 `json:"current_lat"`
	CurrentLng     float64 `json:"current_lng"`
	DelayMinutes   int     `json:"delay_minutes"`
	Status         string  `json:"status"`

	// Ordered itinerary; created once at seed time, not mutated afterwards.
	Route []RouteStation `gorm:"foreignKey:TrainID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"route,omitempty"`
}

// DeriveStatus maps a delay to the public status string: zero minutes is
// on-time, anything above is delayed.
func DeriveStatus(delayMinutes int) string {
	if delayMinutes > 0 {
		return StatusDelayed
	}
	return StatusOnTime
}
