package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"rail_tracker/internal/models"
)

// Store-level sentinels the handlers translate to HTTP statuses.
var (
	ErrDuplicateSave     = errors.New("train already saved")
	ErrTrainNotFound     = errors.New("train not found")
	ErrSavedTrainMissing = errors.New("saved train not found")
)

// SavedTrainStore is the persistence surface the saved-train handlers need.
// The gorm implementation below backs the live service; tests substitute an
// in-memory fake.
type SavedTrainStore interface {
	FindTrainByNumber(number string) (models.Train, error)
	Create(st *models.SavedTrain) error
	Delete(userID, id uint) error
	ToggleNotifications(userID, id uint) (models.SavedTrain, error)
	ListByUser(userID uint) ([]models.SavedTrain, error)
}

// SavedTrainController owns the user's bookmark list and its notification
// flags. The authenticated user always arrives explicitly via JWT claims; no
// ambient session state is consulted.
type SavedTrainController struct {
	store SavedTrainStore
}

func NewSavedTrainController(store SavedTrainStore) *SavedTrainController {
	return &SavedTrainController{store: store}
}

// Save bookmarks the train named in the path for the requesting user, with
// notifications enabled. A duplicate bookmark is a conflict; existing state
// is left unchanged.
func (sc *SavedTrainController) Save(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	number := c.Param("number")

	train, err := sc.store.FindTrainByNumber(number)
	if err != nil {
		if errors.Is(err, ErrTrainNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	saved := models.SavedTrain{
		UserID:              userID,
		TrainID:             train.ID,
		NotificationEnabled: true,
	}
	if err := sc.store.Create(&saved); err != nil {
		if errors.Is(err, ErrDuplicateSave) {
			c.JSON(http.StatusConflict, gin.H{"error": "train already saved"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save train: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved_train": saved})
}

// Unsave removes a bookmark. Deleting an absent bookmark is a no-op success.
func (sc *SavedTrainController) Unsave(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid saved train id"})
		return
	}

	if err := sc.store.Delete(userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove train: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Train removed from saved list"})
}

// ToggleNotifications flips the notification flag on one bookmark.
func (sc *SavedTrainController) ToggleNotifications(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid saved train id"})
		return
	}

	saved, err := sc.store.ToggleNotifications(userID, id)
	if err != nil {
		if errors.Is(err, ErrSavedTrainMissing) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Saved train not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update notifications: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_train": saved})
}

// List returns the user's bookmarks with their train rows preloaded, the
// shape the dashboard renders directly.
func (sc *SavedTrainController) List(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	saved, err := sc.store.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch saved trains"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": saved})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	return uint(id), err
}

// gormSavedTrainStore is the production SavedTrainStore.
type gormSavedTrainStore struct {
	db *gorm.DB
}

func NewGormSavedTrainStore(db *gorm.DB) SavedTrainStore {
	return &gormSavedTrainStore{db: db}
}

func (g *gormSavedTrainStore) FindTrainByNumber(number string) (models.Train, error) {
	var t models.Train
	err := g.db.Where("train_number = ?", number).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return t, ErrTrainNotFound
	}
	return t, err
}

func (g *gormSavedTrainStore) Create(st *models.SavedTrain) error {
	err := g.db.Create(st).Error
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateSave
	}
	return err
}

func (g *gormSavedTrainStore) Delete(userID, id uint) error {
	// Scoped to the owner; deleting a row that is not there is not an error.
	return g.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavedTrain{}).Error
}

func (g *gormSavedTrainStore) ToggleNotifications(userID, id uint) (models.SavedTrain, error) {
	var saved models.SavedTrain
	err := g.db.Where("id = ? AND user_id = ?", id, userID).First(&saved).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return saved, ErrSavedTrainMissing
	}
	if err != nil {
		return saved, err
	}

	saved.NotificationEnabled = !saved.NotificationEnabled
	if err := g.db.Model(&saved).Update("notification_enabled", saved.NotificationEnabled).Error; err != nil {
		return saved, err
	}
	return saved, nil
}

func (g *gormSavedTrainStore) ListByUser(userID uint) ([]models.SavedTrain, error) {
	var saved []models.SavedTrain
	err := g.db.Preload("Train").Where("user_id = ?", userID).Find(&saved).Error
	return saved, err
}
