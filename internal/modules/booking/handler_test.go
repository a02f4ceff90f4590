package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentaldesk/internal/database"
	"rentaldesk/internal/domain"
	"rentaldesk/internal/middleware"
	jwtsvc "rentaldesk/internal/pkg/jwt"
	"rentaldesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingTestEnv struct {
	router      *gin.Engine
	bookingRepo *repository.BookingRepository
	token       string
	userID      int64
	tentID      int64 // unit price 15
	stoveID     int64 // unit price 5
	kayakID     int64 // unit price 10
	bikeID      int64 // unit price 20
}

func setupBookingEnv(t *testing.T) *bookingTestEnv {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	typeRepo := repository.NewEquipmentTypeRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	ctx := t.Context()

	u := &domain.User{Username: "member1", Name: "Clint", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(ctx, u))

	newUnit := func(name string, price float64) int64 {
		et := &domain.EquipmentType{Name: name, Category: "Camping", RentingPrice: price}
		require.NoError(t, typeRepo.Create(ctx, et))
		e := &domain.Equipment{EquipmentTypeID: et.ID, State: "good"}
		require.NoError(t, equipmentRepo.Create(ctx, e))
		return e.ID
	}

	env := &bookingTestEnv{
		bookingRepo: bookingRepo,
		userID:      u.ID,
		tentID:      newUnit("Tent", 15),
		stoveID:     newUnit("Camping Stove", 5),
		kayakID:     newUnit("Kayak", 10),
		bikeID:      newUnit("Mountain Bike", 20),
	}

	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	env.token, err = j.GenerateToken(u.ID, false, false)
	require.NoError(t, err)

	service := NewService(bookingRepo, equipmentRepo)
	handler := NewHandler(service)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	handler.RegisterPublicRoutes(api)
	protected := api.Group("/")
	protected.Use(middleware.TokenExtractor(j))
	handler.RegisterProtectedRoutes(protected)

	env.router = r
	return env
}

func (env *bookingTestEnv) do(t *testing.T, method, path string, body any, withToken bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set("Authorization", "Bearer "+env.token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestCreateBooking_ComputesTotalFromUnitPrices(t *testing.T) {
	env := setupBookingEnv(t)

	// tent 15 + stove 5, duration 2 -> 40
	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"duration":     2,
		"equipmentIds": []int64{env.tentID, env.stoveID},
	}, true)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, 40.0, body["totalPrice"])
	assert.NotZero(t, body["id"])

	equipments := body["equipments"].([]any)
	require.Len(t, equipments, 2)
	ids := make([]float64, 0, 2)
	for _, e := range equipments {
		ref := e.(map[string]any)
		// bare ids only, no other equipment attributes
		assert.Len(t, ref, 1)
		ids = append(ids, ref["id"].(float64))
	}
	assert.ElementsMatch(t, []float64{float64(env.tentID), float64(env.stoveID)}, ids)
}

func TestBookingRoundTrip(t *testing.T) {
	env := setupBookingEnv(t)

	// kayak 10 + bike 20, duration 3 -> 90
	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-07-10T00:00:00Z",
		"duration":     3,
		"equipmentIds": []int64{env.kayakID, env.bikeID},
	}, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decodeBody(t, w)
	id := int64(created["id"].(float64))

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/bookings/%d", id), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, 90.0, body["totalPrice"])
	assert.Equal(t, map[string]any{"name": "Clint"}, body["user"])
	_, hasUserID := body["userId"]
	assert.False(t, hasUserID, "raw foreign key must not serialize")

	equipments := body["equipments"].([]any)
	ids := make([]float64, 0, len(equipments))
	for _, e := range equipments {
		ids = append(ids, e.(map[string]any)["id"].(float64))
	}
	assert.ElementsMatch(t, []float64{float64(env.kayakID), float64(env.bikeID)}, ids)
}

func TestCreateBooking_UnknownEquipmentCreatesNothing(t *testing.T) {
	env := setupBookingEnv(t)

	before, err := env.bookingRepo.Count(t.Context())
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"duration":     2,
		"equipmentIds": []int64{999},
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "Invalid data"}, decodeBody(t, w))

	after, err := env.bookingRepo.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreateBooking_ZeroDuration(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"duration":     0,
		"equipmentIds": []int64{env.tentID},
	}, true)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, 0.0, body["totalPrice"])
	assert.Equal(t, 0.0, body["duration"])
}

func TestCreateBooking_NegativeDurationPassesThrough(t *testing.T) {
	env := setupBookingEnv(t)

	// 15 * -2
	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"duration":     -2,
		"equipmentIds": []int64{env.tentID},
	}, true)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, -30.0, decodeBody(t, w)["totalPrice"])
}

func TestCreateBooking_MissingDuration(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"equipmentIds": []int64{env.tentID},
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "Invalid data"}, decodeBody(t, w))
}

func TestCreateBooking_RequiresToken(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"duration":     2,
		"equipmentIds": []int64{env.tentID},
	}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBooking_RejectsUnknownFields(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"duration":     2,
		"equipmentIds": []int64{env.tentID},
		"totalPrice":   1, // callers cannot set the price
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookings_ProjectionExcludesOwnerForeignKey(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"duration":     1,
		"equipmentIds": []int64{env.tentID},
	}, true)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/bookings", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	_, hasUserID := list[0]["userId"]
	assert.False(t, hasUserID)
	assert.Equal(t, map[string]any{"name": "Clint"}, list[0]["user"])
}

func TestDeleteBooking(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"startDate":    "2026-06-01T00:00:00Z",
		"duration":     1,
		"equipmentIds": []int64{env.tentID},
	}, true)
	require.Equal(t, http.StatusOK, w.Code)
	id := int64(decodeBody(t, w)["id"].(float64))

	path := fmt.Sprintf("/api/bookings/%d", id)

	w = env.do(t, http.MethodDelete, path, nil, false)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = env.do(t, http.MethodGet, path, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, path, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"error": "Booking not found"}, decodeBody(t, w))
}
