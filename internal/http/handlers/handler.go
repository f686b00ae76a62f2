package handlers

import (
	"context"

	"hotelbooking/internal/services"
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	Bookings *services.BookingService
	Rooms    *services.RoomService
	Hotels   services.HotelService
	Data     services.DataService
	Docs     services.DocsService

	// Driver names the active store for /api/db-check.
	Driver string
	// Ping checks store connectivity. Nil means the store is in process.
	Ping func(ctx context.Context) error
}

// New wires every service onto one store.
func New(store services.Store, opts services.BookingOptions) *Handler {
	return &Handler{
		Bookings: services.NewBookingService(store, opts),
		Rooms:    services.NewRoomService(store, opts.Clock),
		Hotels:   services.HotelService{Hotels: store},
		Data:     services.DataService{Admin: store},
		Docs:     services.DocsService{Bookings: store},
	}
}
