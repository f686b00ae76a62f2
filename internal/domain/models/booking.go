package models

import "time"

// Booking is a confirmed reservation of one room for a half-open date window
// [CheckIn, CheckOut). Dates are calendar days at UTC midnight.
type Booking struct {
	ID            int64
	BookingNumber string
	RoomID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	GuestCount    int
	GuestName     string
	CreatedAt     time.Time

	// Room is filled on reads so responses can show hotel and room names.
	Room *Room
}

// BookingRequest carries the caller's input for a new booking.
type BookingRequest struct {
	RoomID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	GuestName  string
}
