package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "hotelbooking/internal/config"
	"hotelbooking/internal/http/handlers"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC) }

type counterRand struct{ n int }

func (r *counterRand) Intn(n int) int {
	r.n++
	return r.n % n
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Seed(context.Background()))
	hd := handlers.New(store, services.BookingOptions{Clock: fixedClock{}, Rand: &counterRand{}})
	hd.Driver = intconfig.DriverMemory
	return NewRouter(intconfig.Env{}, hd)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

const createBody = `{"roomId":3,"checkInDate":"25/12/2025","checkOutDate":"28/12/2025","guestCount":2,"guestName":"John Doe"}`

func TestCreateBookingReturnsCreated(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/bookings", createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got := decode(t, w)
	assert.Equal(t, "BK202512011001", got["bookingNumber"])
	assert.Equal(t, "25/12/2025", got["checkInDate"])
	assert.Equal(t, "28/12/2025", got["checkOutDate"])
	assert.Equal(t, "Hotel Azure", got["hotelName"])
	assert.Equal(t, "103", got["roomNumber"])
	assert.Equal(t, "Double", got["roomTypeName"])
	assert.Equal(t, "01/12/2025 10:00:00", got["createdAt"])
	assert.Equal(t, "/api/bookings/BK202512011001", w.Header().Get("Location"))
}

func TestCreateBookingAcceptsISODates(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/bookings",
		`{"roomId":3,"checkInDate":"2025-12-25","checkOutDate":"2025-12-28","guestCount":1,"guestName":"Iso"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "25/12/2025", decode(t, w)["checkInDate"])
}

func TestCreateBookingErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"reversed dates", `{"roomId":3,"checkInDate":"28/12/2025","checkOutDate":"25/12/2025","guestCount":1,"guestName":"X"}`, http.StatusBadRequest, "validation_error"},
		{"check-in today", `{"roomId":3,"checkInDate":"01/12/2025","checkOutDate":"03/12/2025","guestCount":1,"guestName":"X"}`, http.StatusBadRequest, "validation_error"},
		{"over capacity", `{"roomId":1,"checkInDate":"25/12/2025","checkOutDate":"28/12/2025","guestCount":3,"guestName":"X"}`, http.StatusBadRequest, "validation_error"},
		{"no guests", `{"roomId":3,"checkInDate":"25/12/2025","checkOutDate":"28/12/2025","guestCount":0,"guestName":"X"}`, http.StatusBadRequest, "validation_error"},
		{"unknown room", `{"roomId":999,"checkInDate":"25/12/2025","checkOutDate":"28/12/2025","guestCount":1,"guestName":"X"}`, http.StatusNotFound, "not_found"},
		{"bad date", `{"roomId":3,"checkInDate":"45/13/2025","checkOutDate":"28/12/2025","guestCount":1,"guestName":"X"}`, http.StatusBadRequest, "invalid_payload"},
		{"blank guest", `{"roomId":3,"checkInDate":"25/12/2025","checkOutDate":"28/12/2025","guestCount":1,"guestName":"   "}`, http.StatusBadRequest, "invalid_payload"},
		{"malformed json", `{"roomId":`, http.StatusBadRequest, "invalid_payload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t)
			w := do(r, http.MethodPost, "/api/bookings", tc.body)
			require.Equal(t, tc.status, w.Code, w.Body.String())
			got := decode(t, w)
			assert.Equal(t, tc.code, got["code"])
			assert.NotEmpty(t, got["request_id"])
		})
	}
}

func TestCreateBookingOverlapIsConflict(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/bookings", createBody).Code)

	w := do(r, http.MethodPost, "/api/bookings",
		`{"roomId":3,"checkInDate":"26/12/2025","checkOutDate":"27/12/2025","guestCount":1,"guestName":"Late"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", decode(t, w)["code"])
}

func TestBookingLookupAndCancel(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/bookings/bk001", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "John Smith", decode(t, w)["guestName"])

	w = do(r, http.MethodDelete, "/api/bookings/BK001", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/bookings/BK001", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/bookings/BK001", "").Code)
}

func TestRoomBookingsOrderedByCheckIn(t *testing.T) {
	r := newTestRouter(t)

	// Urban Stay room 306 holds BK003 and BK018.
	w := do(r, http.MethodGet, "/api/rooms/by-hotel/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 6)
	room306 := rooms[5]
	require.Equal(t, "306", room306["roomNumber"])

	w = do(r, http.MethodGet, "/api/bookings/room/"+jsonNumber(room306["roomId"]), "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "BK003", list[0]["bookingNumber"])
	assert.Equal(t, "BK018", list[1]["bookingNumber"])

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/bookings/room/abc", "").Code)
}

func jsonNumber(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestAvailabilityExcludesBookedRoom(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/bookings", createBody).Code)

	w := do(r, http.MethodGet, "/api/rooms/availability?checkInDate=26/12/2025&checkOutDate=27/12/2025&guestCount=2&hotelId=1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rooms []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	numbers := []string{}
	for _, room := range rooms {
		numbers = append(numbers, room["roomNumber"].(string))
	}
	assert.Equal(t, []string{"104", "105", "106"}, numbers)
}

func TestAvailabilityEmptyIsOK(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/rooms/availability?checkInDate=26/12/2025&checkOutDate=27/12/2025&guestCount=9", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAvailabilityRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/rooms/availability?checkInDate=27/12/2025&checkOutDate=26/12/2025&guestCount=1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/rooms/availability?checkOutDate=26/12/2025&guestCount=1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_query", decode(t, w)["code"])
}

func TestHotelsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/hotels", "")
	require.Equal(t, http.StatusOK, w.Code)
	var hotels []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hotels))
	assert.Len(t, hotels, 7)

	w = do(r, http.MethodGet, "/api/hotels/search?name=palace", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hotels))
	require.Len(t, hotels, 1)
	assert.Equal(t, "Grand Palace", hotels[0]["name"])

	w = do(r, http.MethodGet, "/api/hotels/4", "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)
	assert.Len(t, detail["rooms"], 6)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/hotels/99", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/rooms/999", "").Code)
}

func TestDataEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/data/seed", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/data/reset", "").Code)
	w = do(r, http.MethodGet, "/api/data/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hotels":0,"rooms":0,"roomTypes":0,"bookings":0}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/data/seed", "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["stats"].(map[string]any)
	assert.EqualValues(t, 19, stats["bookings"])
}

func TestConfirmationPDF(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/bookings/BK001/confirmation", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "CONFIRMATION_BK001_John_Smith.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/bookings/BK404/confirmation", "").Code)
}

func TestSystemEndpoints(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/health", "").Code)

	w := do(r, http.MethodGet, "/api/db-check", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "memory", decode(t, w)["driver"])

	w = do(r, http.MethodGet, "/api/routes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/rooms/availability")

	w = do(r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
