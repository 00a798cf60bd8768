// internal/models/savedtrain.go
package models

import (
	"gorm.io/gorm"
)

// SavedTrain bookmarks a train for a user. The unique (user, train) index
// guarantees at most one bookmark per pair; a duplicate insert surfaces as a
// unique-violation from the store.
type SavedTrain struct {
	gorm.Model

	UserID              uint `json:"user_id" gorm:"uniqueIndex:idx_user_train"`
	TrainID             uint `json:"train_id" gorm:"uniqueIndex:idx_user_train"`
	NotificationEnabled bool `json:"notification_enabled" gorm:"default:true"`

	Train Train `gorm:"foreignKey:TrainID" json:"train,omitempty"`
}
