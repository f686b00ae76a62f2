package models

// Hotel owns a fixed roster of rooms.
type Hotel struct {
	ID      int64
	Name    string
	Address string

	// Rooms is only populated by hotel detail lookups.
	Rooms []Room
}

// RoomType carries the capacity shared by every room of that type.
type RoomType struct {
	ID       int64
	Name     string
	Capacity int
}

// Room is unique by (HotelID, RoomNumber).
type Room struct {
	ID         int64
	HotelID    int64
	RoomTypeID int64
	RoomNumber string

	Hotel    Hotel
	RoomType RoomType
}

// Capacity returns the maximum guest count of the room's type.
func (r Room) Capacity() int {
	return r.RoomType.Capacity
}
