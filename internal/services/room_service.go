package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/utils"
)

type RoomService struct {
	Rooms     RoomCatalog
	Bookings  BookingStore
	Validator BookingValidator
}

func NewRoomService(store Store, clock Clock) *RoomService {
	return &RoomService{
		Rooms:     store,
		Bookings:  store,
		Validator: BookingValidator{Bookings: store, Clock: clock},
	}
}

// AvailabilityQuery is a search window plus guest count and optional hotel filter.
type AvailabilityQuery struct {
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	HotelID    *int64
}

// SearchAvailability returns rooms that fit the guests and have no booking
// overlapping the window, ordered by hotel name then room number.
// An empty result is not an error.
func (s *RoomService) SearchAvailability(ctx context.Context, q AvailabilityQuery) ([]models.Room, error) {
	if err := s.Validator.CheckWindow(q.CheckIn, q.CheckOut); err != nil {
		return nil, err
	}
	if err := s.Validator.CheckGuestCount(q.GuestCount); err != nil {
		return nil, err
	}
	checkIn, checkOut := utils.DateOnly(q.CheckIn), utils.DateOnly(q.CheckOut)

	candidates, err := s.Rooms.ListRoomsForAvailability(ctx, q.GuestCount, q.HotelID)
	if err != nil {
		return nil, err
	}

	eligible := make([]models.Room, 0, len(candidates))
	ids := make([]int64, 0, len(candidates))
	for _, room := range candidates {
		if room.Capacity() < q.GuestCount {
			continue
		}
		if q.HotelID != nil && room.HotelID != *q.HotelID {
			continue
		}
		eligible = append(eligible, room)
		ids = append(ids, room.ID)
	}
	if len(eligible) == 0 {
		return []models.Room{}, nil
	}

	existing, err := s.Bookings.ListBookingsForRooms(ctx, ids, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	booked := make(map[int64]bool, len(existing))
	for _, b := range existing {
		if domain.Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			booked[b.RoomID] = true
		}
	}

	out := make([]models.Room, 0, len(eligible))
	for _, room := range eligible {
		if !booked[room.ID] {
			out = append(out, room)
		}
	}
	SortRooms(out)

	utils.LogEvent(utils.RequestIDFrom(ctx), "rooms", "search_availability",
		fmt.Sprintf("guests=%d candidates=%d available=%d", q.GuestCount, len(eligible), len(out)))
	return out, nil
}

// SortRooms orders by hotel name, then room number, then id for ties.
func SortRooms(rooms []models.Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		a, b := rooms[i], rooms[j]
		if a.Hotel.Name != b.Hotel.Name {
			return a.Hotel.Name < b.Hotel.Name
		}
		if a.RoomNumber != b.RoomNumber {
			return a.RoomNumber < b.RoomNumber
		}
		return a.ID < b.ID
	})
}

// GetRoom returns nil when the room does not exist.
func (s *RoomService) GetRoom(ctx context.Context, roomID int64) (*models.Room, error) {
	if roomID <= 0 {
		return nil, nil
	}
	return s.Rooms.FindRoom(ctx, roomID)
}

func (s *RoomService) GetRoomsByHotel(ctx context.Context, hotelID int64) ([]models.Room, error) {
	if hotelID <= 0 {
		return []models.Room{}, nil
	}
	return s.Rooms.ListRoomsByHotel(ctx, hotelID)
}
