package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

// MemoryStore keeps the whole roster in process. Writes are serialized by one
// mutex, which makes InsertBooking's check-and-insert atomic.
type MemoryStore struct {
	mu        sync.RWMutex
	hotels    map[int64]models.Hotel
	roomTypes map[int64]models.RoomType
	rooms     map[int64]models.Room
	bookings  map[int64]models.Booking
	seq       map[string]int64
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.clear()
	return s
}

func (s *MemoryStore) clear() {
	s.hotels = map[int64]models.Hotel{}
	s.roomTypes = map[int64]models.RoomType{}
	s.rooms = map[int64]models.Room{}
	s.bookings = map[int64]models.Booking{}
	s.seq = map[string]int64{}
}

// nextID hands out per-table ids starting at 1, like AUTO_INCREMENT.
func (s *MemoryStore) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// AddHotel, AddRoomType and AddRoom populate the roster directly.
func (s *MemoryStore) AddHotel(name, address string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID("hotels")
	s.hotels[id] = models.Hotel{ID: id, Name: name, Address: address}
	return id
}

func (s *MemoryStore) AddRoomType(name string, capacity int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID("room_types")
	s.roomTypes[id] = models.RoomType{ID: id, Name: name, Capacity: capacity}
	return id
}

func (s *MemoryStore) AddRoom(hotelID, roomTypeID int64, number string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID("rooms")
	s.rooms[id] = models.Room{ID: id, HotelID: hotelID, RoomTypeID: roomTypeID, RoomNumber: number}
	return id
}

func (s *MemoryStore) joinRoom(r models.Room) models.Room {
	r.Hotel = s.hotels[r.HotelID]
	r.Hotel.Rooms = nil
	r.RoomType = s.roomTypes[r.RoomTypeID]
	return r
}

func (s *MemoryStore) joinBooking(b models.Booking) models.Booking {
	if r, ok := s.rooms[b.RoomID]; ok {
		room := s.joinRoom(r)
		b.Room = &room
	}
	return b
}

func (s *MemoryStore) FindRoom(_ context.Context, roomID int64) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return nil, nil
	}
	room := s.joinRoom(r)
	return &room, nil
}

func (s *MemoryStore) ListRoomsByHotel(_ context.Context, hotelID int64) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Room{}
	for _, r := range s.rooms {
		if r.HotelID == hotelID {
			out = append(out, s.joinRoom(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (s *MemoryStore) ListRoomsForAvailability(_ context.Context, guestCount int, hotelID *int64) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Room{}
	for _, r := range s.rooms {
		room := s.joinRoom(r)
		if room.Capacity() < guestCount {
			continue
		}
		if hotelID != nil && room.HotelID != *hotelID {
			continue
		}
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) hasOverlapLocked(roomID int64, checkIn, checkOut time.Time, excludeBookingID int64) bool {
	for _, b := range s.bookings {
		if b.RoomID != roomID || (excludeBookingID > 0 && b.ID == excludeBookingID) {
			continue
		}
		if domain.Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return true
		}
	}
	return false
}

func (s *MemoryStore) HasOverlap(_ context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasOverlapLocked(roomID, checkIn, checkOut, excludeBookingID), nil
}

func (s *MemoryStore) numberTakenLocked(number string) bool {
	for _, b := range s.bookings {
		if b.BookingNumber == number {
			return true
		}
	}
	return false
}

func (s *MemoryStore) InsertBooking(_ context.Context, b models.Booking) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[b.RoomID]; !ok {
		return 0, fmt.Errorf("insert booking: room %d does not exist", b.RoomID)
	}
	if s.numberTakenLocked(b.BookingNumber) {
		return 0, fmt.Errorf("insert booking: duplicate booking number %s", b.BookingNumber)
	}
	if s.hasOverlapLocked(b.RoomID, b.CheckIn, b.CheckOut, 0) {
		return 0, domain.OverlapConflict(b.RoomID)
	}

	b.ID = s.nextID("bookings")
	b.Room = nil
	s.bookings[b.ID] = b
	return b.ID, nil
}

func (s *MemoryStore) FindBookingByNumber(_ context.Context, number string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.BookingNumber == number {
			joined := s.joinBooking(b)
			return &joined, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) BookingNumberExists(_ context.Context, number string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.numberTakenLocked(number), nil
}

func (s *MemoryStore) DeleteBookingByNumber(_ context.Context, number string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, b := range s.bookings {
		if b.BookingNumber == number {
			delete(s.bookings, id)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ListBookingsForRoom(_ context.Context, roomID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, s.joinBooking(b))
		}
	}
	sortBookings(out)
	return out, nil
}

func (s *MemoryStore) ListBookingsForRooms(_ context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[int64]bool, len(roomIDs))
	for _, id := range roomIDs {
		wanted[id] = true
	}
	out := []models.Booking{}
	for _, b := range s.bookings {
		if wanted[b.RoomID] && domain.Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func sortBookings(bs []models.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if !bs[i].CheckIn.Equal(bs[j].CheckIn) {
			return bs[i].CheckIn.Before(bs[j].CheckIn)
		}
		return bs[i].ID < bs[j].ID
	})
}

func (s *MemoryStore) ListHotels(_ context.Context) ([]models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Hotel, 0, len(s.hotels))
	for _, h := range s.hotels {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) FindHotel(ctx context.Context, hotelID int64) (*models.Hotel, error) {
	s.mu.RLock()
	h, ok := s.hotels[hotelID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	rooms, err := s.ListRoomsByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	h.Rooms = rooms
	return &h, nil
}

func (s *MemoryStore) SearchHotelsByName(_ context.Context, name string) ([]models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(name)
	out := []models.Hotel{}
	for _, h := range s.hotels {
		if strings.Contains(strings.ToLower(h.Name), needle) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
	return nil
}

func (s *MemoryStore) Seed(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	typeIDs := make([]int64, len(seedRoomTypes))
	for i, rt := range seedRoomTypes {
		id := s.nextID("room_types")
		s.roomTypes[id] = models.RoomType{ID: id, Name: rt.Name, Capacity: rt.Capacity}
		typeIDs[i] = id
	}

	roomIDs := map[string]int64{}
	for i, sh := range seedHotels {
		hotelID := s.nextID("hotels")
		s.hotels[hotelID] = models.Hotel{ID: hotelID, Name: sh.Name, Address: sh.Address}
		for _, sr := range seedRoomsPerHotel {
			id := s.nextID("rooms")
			number := seedRoomNumber(i+1, sr.Suffix)
			s.rooms[id] = models.Room{ID: id, HotelID: hotelID, RoomTypeID: typeIDs[sr.Type-1], RoomNumber: number}
			roomIDs[fmt.Sprintf("%d/%s", i+1, number)] = id
		}
	}

	for _, sb := range seedBookings {
		roomID, ok := roomIDs[fmt.Sprintf("%d/%s", sb.Hotel, sb.RoomNumber)]
		if !ok {
			return fmt.Errorf("seed booking %s: unknown room %s", sb.Number, sb.RoomNumber)
		}
		id := s.nextID("bookings")
		s.bookings[id] = models.Booking{
			ID:            id,
			BookingNumber: sb.Number,
			RoomID:        roomID,
			CheckIn:       sb.CheckIn,
			CheckOut:      sb.CheckOut,
			GuestCount:    sb.Guests,
			GuestName:     sb.Guest,
			CreatedAt:     sb.CreatedAt,
		}
	}
	return nil
}

func (s *MemoryStore) Stats(_ context.Context) (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Stats{
		Hotels:    len(s.hotels),
		Rooms:     len(s.rooms),
		RoomTypes: len(s.roomTypes),
		Bookings:  len(s.bookings),
	}, nil
}
