package services

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAvailabilityExcludesConflictingRoom(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	double := f.store.AddRoomType("Double", 2)
	extra := f.store.AddRoom(f.azure, double, "103")

	_, err := f.store.InsertBooking(ctx, models.Booking{
		BookingNumber: "BK1", RoomID: f.double101, CheckIn: date(2025, 12, 24), CheckOut: date(2025, 12, 26), GuestCount: 2, GuestName: "A",
	})
	require.NoError(t, err)

	hotel := f.azure
	rooms, err := f.roomService().SearchAvailability(ctx, AvailabilityQuery{
		CheckIn: date(2025, 12, 25), CheckOut: date(2025, 12, 28), GuestCount: 2, HotelID: &hotel,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, extra, rooms[0].ID)
	assert.Equal(t, "103", rooms[0].RoomNumber)
}

func TestSearchAvailabilityIncludesRoomAtCapacity(t *testing.T) {
	f := newFixture()
	rooms, err := f.roomService().SearchAvailability(context.Background(), AvailabilityQuery{
		CheckIn: date(2025, 12, 25), CheckOut: date(2025, 12, 28), GuestCount: 2,
	})
	require.NoError(t, err)

	ids := []int64{}
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{f.double101, f.double201}, ids)
}

func TestSearchAvailabilityAdjacentBookingKeepsRoomFree(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.store.InsertBooking(ctx, models.Booking{
		BookingNumber: "BK1", RoomID: f.single102, CheckIn: date(2025, 12, 20), CheckOut: date(2025, 12, 25), GuestCount: 1, GuestName: "A",
	})
	require.NoError(t, err)

	hotel := f.azure
	rooms, err := f.roomService().SearchAvailability(ctx, AvailabilityQuery{
		CheckIn: date(2025, 12, 25), CheckOut: date(2025, 12, 28), GuestCount: 1, HotelID: &hotel,
	})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestSearchAvailabilityOrdersByHotelNameThenRoom(t *testing.T) {
	s := repositories.NewMemoryStore()
	rt := s.AddRoomType("Double", 2)
	zulu := s.AddHotel("Zulu Lodge", "")
	alpha := s.AddHotel("Alpha Inn", "")
	s.AddRoom(zulu, rt, "101")
	s.AddRoom(alpha, rt, "202")
	s.AddRoom(alpha, rt, "105")

	rooms, err := NewRoomService(s, fixedClock{testNow}).SearchAvailability(context.Background(), AvailabilityQuery{
		CheckIn: date(2026, 2, 1), CheckOut: date(2026, 2, 3), GuestCount: 1,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "Alpha Inn", rooms[0].Hotel.Name)
	assert.Equal(t, "105", rooms[0].RoomNumber)
	assert.Equal(t, "202", rooms[1].RoomNumber)
	assert.Equal(t, "Zulu Lodge", rooms[2].Hotel.Name)
}

func TestSearchAvailabilityEmptyIsNotAnError(t *testing.T) {
	f := newFixture()
	rooms, err := f.roomService().SearchAvailability(context.Background(), AvailabilityQuery{
		CheckIn: date(2025, 12, 25), CheckOut: date(2025, 12, 28), GuestCount: 6,
	})
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestSearchAvailabilityValidatesInputs(t *testing.T) {
	f := newFixture()
	svc := f.roomService()
	ctx := context.Background()

	_, err := svc.SearchAvailability(ctx, AvailabilityQuery{CheckIn: date(2025, 12, 28), CheckOut: date(2025, 12, 25), GuestCount: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidDateOrder)

	_, err = svc.SearchAvailability(ctx, AvailabilityQuery{CheckIn: date(2025, 12, 1), CheckOut: date(2025, 12, 3), GuestCount: 1})
	assert.ErrorIs(t, err, domain.ErrCheckInInPast)

	_, err = svc.SearchAvailability(ctx, AvailabilityQuery{CheckIn: date(2025, 12, 25), CheckOut: date(2025, 12, 28), GuestCount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidGuestCount)
}

func TestGetRoomUnknownIsNil(t *testing.T) {
	f := newFixture()
	room, err := f.roomService().GetRoom(context.Background(), 0)
	assert.NoError(t, err)
	assert.Nil(t, room)

	room, err = f.roomService().GetRoom(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, room)
}
