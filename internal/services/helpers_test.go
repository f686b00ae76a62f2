package services

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC)

// scriptedRand returns its values in order, then repeats the last one.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i] % n
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixture is a small roster: hotel 1 "Hotel Azure" with a double (101) and a
// single (102); hotel 2 "Mountain Retreat" with a double (201).
type fixture struct {
	store     *repositories.MemoryStore
	azure     int64
	mountain  int64
	double101 int64
	single102 int64
	double201 int64
}

func newFixture() fixture {
	s := repositories.NewMemoryStore()
	single := s.AddRoomType("Single", 1)
	double := s.AddRoomType("Double", 2)
	azure := s.AddHotel("Hotel Azure", "1 Seaside Blvd")
	mountain := s.AddHotel("Mountain Retreat", "22 Hilltop Rd")
	return fixture{
		store:     s,
		azure:     azure,
		mountain:  mountain,
		double101: s.AddRoom(azure, double, "101"),
		single102: s.AddRoom(azure, single, "102"),
		double201: s.AddRoom(mountain, double, "201"),
	}
}

func (f fixture) bookingService(rnd RandomSource) *BookingService {
	if rnd == nil {
		rnd = &scriptedRand{values: []int{234}}
	}
	return NewBookingService(f.store, BookingOptions{Clock: fixedClock{testNow}, Rand: rnd})
}

func (f fixture) roomService() *RoomService {
	return NewRoomService(f.store, fixedClock{testNow})
}

// spyStore wraps a Store to count calls and inject failures.
type spyStore struct {
	Store
	findRoomCalls  int
	existsCalls    int
	alwaysExists   bool
	hideAfterWrite bool
	failInsert     error
}

func (s *spyStore) FindRoom(ctx context.Context, id int64) (*models.Room, error) {
	s.findRoomCalls++
	return s.Store.FindRoom(ctx, id)
}

func (s *spyStore) BookingNumberExists(ctx context.Context, number string) (bool, error) {
	s.existsCalls++
	if s.alwaysExists {
		return true, nil
	}
	return s.Store.BookingNumberExists(ctx, number)
}

func (s *spyStore) InsertBooking(ctx context.Context, b models.Booking) (int64, error) {
	if s.failInsert != nil {
		return 0, s.failInsert
	}
	return s.Store.InsertBooking(ctx, b)
}

func (s *spyStore) FindBookingByNumber(ctx context.Context, number string) (*models.Booking, error) {
	if s.hideAfterWrite {
		return nil, nil
	}
	return s.Store.FindBookingByNumber(ctx, number)
}

var errStoreDown = errors.New("connection refused")
