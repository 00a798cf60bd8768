package models

import (
	"gorm.io/gorm"
)

// RouteStation is one stop in a train's fixed itinerary.
// SequenceNumber is 1-based and unique within a train; it defines the route
// order. The first stop has no arrival time, the last no departure time.
type RouteStation struct {
	gorm.Model

	TrainID        uint    `json:"train_id" gorm:"uniqueIndex:idx_train_seq"`
	StationName    string  `json:"station_name"`
	StationCode    string  `json:"station_code"`
	ArrivalTime    *string `json:"arrival_time"`
	DepartureTime  *string `json:"departure_time"`
	DistanceKm     float64 `json:"distance_km"`
	Platform       string  `json:"platform"`
	SequenceNumber int     `json:"sequence_number" gorm:"uniqueIndex:idx_train_seq"`
}
