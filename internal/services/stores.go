package services

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

// RoomCatalog is the read side of the room roster.
// Absent rows are reported as (nil, nil), never as errors.
type RoomCatalog interface {
	FindRoom(ctx context.Context, roomID int64) (*models.Room, error)
	ListRoomsByHotel(ctx context.Context, hotelID int64) ([]models.Room, error)
	// ListRoomsForAvailability pre-filters by capacity and optional hotel.
	ListRoomsForAvailability(ctx context.Context, guestCount int, hotelID *int64) ([]models.Room, error)
}

// BookingNumberChecker is the one store capability the reference generator needs.
type BookingNumberChecker interface {
	BookingNumberExists(ctx context.Context, number string) (bool, error)
}

// BookingStore persists bookings.
//
// InsertBooking must be an atomic conditional write: it refuses the row with an
// overlap conflict when another booking for the same room intersects the window,
// even if that booking was committed after the validator's HasOverlap check.
type BookingStore interface {
	BookingNumberChecker

	HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID int64) (bool, error)
	InsertBooking(ctx context.Context, b models.Booking) (int64, error)
	FindBookingByNumber(ctx context.Context, number string) (*models.Booking, error)
	DeleteBookingByNumber(ctx context.Context, number string) (bool, error)
	ListBookingsForRoom(ctx context.Context, roomID int64) ([]models.Booking, error)
	// ListBookingsForRooms returns bookings of the given rooms that may touch the window.
	ListBookingsForRooms(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]models.Booking, error)
}

type HotelDirectory interface {
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	FindHotel(ctx context.Context, hotelID int64) (*models.Hotel, error)
	SearchHotelsByName(ctx context.Context, name string) ([]models.Hotel, error)
}

type DataAdmin interface {
	Reset(ctx context.Context) error
	Seed(ctx context.Context) error
	Stats(ctx context.Context) (domain.Stats, error)
}

// Store bundles everything a backend must provide; MySQL and in-memory stores implement it.
type Store interface {
	RoomCatalog
	BookingStore
	HotelDirectory
	DataAdmin
}
