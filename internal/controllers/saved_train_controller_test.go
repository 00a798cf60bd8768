package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rail_tracker/internal/controllers"
	"rail_tracker/internal/models"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

// fakeSavedStore is a hand-written double for controllers.SavedTrainStore,
// mirroring the store's uniqueness and ownership rules in memory.
type fakeSavedStore struct {
	trains map[string]models.Train
	saved  map[uint]*models.SavedTrain
	nextID uint
}

var _ controllers.SavedTrainStore = (*fakeSavedStore)(nil)

func newFakeSavedStore() *fakeSavedStore {
	return &fakeSavedStore{
		trains: map[string]models.Train{
			"12321": {Model: gormModel(1), TrainNumber: "12321", TrainName: "Kolkata Mail"},
			"12302": {Model: gormModel(2), TrainNumber: "12302", TrainName: "Rajdhani Express"},
		},
		saved: make(map[uint]*models.SavedTrain),
	}
}

func (f *fakeSavedStore) FindTrainByNumber(number string) (models.Train, error) {
	t, ok := f.trains[number]
	if !ok {
		return models.Train{}, controllers.ErrTrainNotFound
	}
	return t, nil
}

func (f *fakeSavedStore) Create(st *models.SavedTrain) error {
	for _, existing := range f.saved {
		if existing.UserID == st.UserID && existing.TrainID == st.TrainID {
			return controllers.ErrDuplicateSave
		}
	}
	f.nextID++
	st.ID = f.nextID
	cp := *st
	f.saved[st.ID] = &cp
	return nil
}

func (f *fakeSavedStore) Delete(userID, id uint) error {
	if st, ok := f.saved[id]; ok && st.UserID == userID {
		delete(f.saved, id)
	}
	return nil
}

func (f *fakeSavedStore) ToggleNotifications(userID, id uint) (models.SavedTrain, error) {
	st, ok := f.saved[id]
	if !ok || st.UserID != userID {
		return models.SavedTrain{}, controllers.ErrSavedTrainMissing
	}
	st.NotificationEnabled = !st.NotificationEnabled
	return *st, nil
}

func (f *fakeSavedStore) ListByUser(userID uint) ([]models.SavedTrain, error) {
	var out []models.SavedTrain
	for _, st := range f.saved {
		if st.UserID == userID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func newSavedRouter(store controllers.SavedTrainStore, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := func(c *gin.Context) { c.Set("user_id", userID) }
	sc := controllers.NewSavedTrainController(store)
	r.POST("/trains/:number/save", auth, sc.Save)
	r.GET("/saved", auth, sc.List)
	r.DELETE("/saved/:id", auth, sc.Unsave)
	r.PATCH("/saved/:id/notifications", auth, sc.ToggleNotifications)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSave_CreatesWithNotificationsEnabled(t *testing.T) {
	store := newFakeSavedStore()
	r := newSavedRouter(store, 42)

	w := do(r, http.MethodPost, "/trains/12321/save")

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.saved, 1)
	for _, st := range store.saved {
		assert.Equal(t, uint(42), st.UserID)
		assert.Equal(t, uint(1), st.TrainID)
		assert.True(t, st.NotificationEnabled)
	}
}

func TestSave_UnknownTrainIs404(t *testing.T) {
	r := newSavedRouter(newFakeSavedStore(), 42)

	w := do(r, http.MethodPost, "/trains/99999/save")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSave_DuplicateIsConflict(t *testing.T) {
	store := newFakeSavedStore()
	r := newSavedRouter(store, 42)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/trains/12321/save").Code)
	w := do(r, http.MethodPost, "/trains/12321/save")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, store.saved, 1, "conflicting save must leave state unchanged")
}

func TestSaveThenUnsave_LeavesNoRow(t *testing.T) {
	store := newFakeSavedStore()
	r := newSavedRouter(store, 42)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/trains/12321/save").Code)
	var id uint
	for savedID := range store.saved {
		id = savedID
	}

	w := do(r, http.MethodDelete, "/saved/"+strconv.FormatUint(uint64(id), 10))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.saved)
}

func TestUnsave_AbsentRowIsNoOp(t *testing.T) {
	r := newSavedRouter(newFakeSavedStore(), 42)

	w := do(r, http.MethodDelete, "/saved/123")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnsave_DoesNotTouchOtherUsersRows(t *testing.T) {
	store := newFakeSavedStore()
	other := newSavedRouter(store, 7)
	require.Equal(t, http.StatusCreated, do(other, http.MethodPost, "/trains/12321/save").Code)

	r := newSavedRouter(store, 42)
	w := do(r, http.MethodDelete, "/saved/1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.saved, 1, "another user's bookmark must survive")
}

func TestToggleNotifications_FlipsFlag(t *testing.T) {
	store := newFakeSavedStore()
	r := newSavedRouter(store, 42)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/trains/12321/save").Code)

	w := do(r, http.MethodPatch, "/saved/1/notifications")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, store.saved[1].NotificationEnabled)

	w = do(r, http.MethodPatch, "/saved/1/notifications")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.saved[1].NotificationEnabled)
}

func TestToggleNotifications_MissingRowIs404(t *testing.T) {
	r := newSavedRouter(newFakeSavedStore(), 42)

	w := do(r, http.MethodPatch, "/saved/5/notifications")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList_ReturnsOnlyOwnRows(t *testing.T) {
	store := newFakeSavedStore()
	mine := newSavedRouter(store, 42)
	theirs := newSavedRouter(store, 7)
	require.Equal(t, http.StatusCreated, do(mine, http.MethodPost, "/trains/12321/save").Code)
	require.Equal(t, http.StatusCreated, do(theirs, http.MethodPost, "/trains/12302/save").Code)

	rows, err := store.ListByUser(42)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(1), rows[0].TrainID)
}
