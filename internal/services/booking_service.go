package services

import (
	"context"
	"fmt"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/utils"
)

// BookingService runs the reservation lifecycle:
// requested -> validated -> numbered -> persisted, or rejected at any gate.
// The store insert is the only side effect and happens after every gate passed.
type BookingService struct {
	Rooms     RoomCatalog
	Bookings  BookingStore
	Validator BookingValidator
	Numbers   ReferenceGenerator
	Clock     Clock
}

// BookingOptions tunes the collaborators built by NewBookingService.
type BookingOptions struct {
	Clock                    Clock
	Rand                     RandomSource
	BookingNumberMaxAttempts int
}

func NewBookingService(store Store, opts BookingOptions) *BookingService {
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	return &BookingService{
		Rooms:     store,
		Bookings:  store,
		Validator: BookingValidator{Bookings: store, Clock: clock},
		Numbers: ReferenceGenerator{
			Store:       store,
			Clock:       clock,
			Rand:        opts.Rand,
			MaxAttempts: opts.BookingNumberMaxAttempts,
		},
		Clock: clock,
	}
}

// CreateBooking validates the request, assigns a booking number, stores the
// booking and returns it as read back from the store.
func (s *BookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	req.CheckIn = utils.DateOnly(req.CheckIn)
	req.CheckOut = utils.DateOnly(req.CheckOut)
	req.GuestName = utils.NormalizeSpace(req.GuestName)

	if err := s.Validator.CheckWindow(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}

	room, err := s.Rooms.FindRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.NotFoundError{
			Resource: fmt.Sprintf("room with ID %d", req.RoomID),
			Err:      domain.ErrRoomNotFound,
		}
	}

	if err := s.Validator.CheckRoom(ctx, req, *room, 0); err != nil {
		return nil, err
	}

	number, err := s.Numbers.Generate(ctx)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		BookingNumber: number,
		RoomID:        room.ID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		GuestCount:    req.GuestCount,
		GuestName:     req.GuestName,
		CreatedAt:     s.now(),
	}
	if _, err := s.Bookings.InsertBooking(ctx, booking); err != nil {
		return nil, err
	}

	stored, err := s.Bookings.FindBookingByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.InternalError{
			Msg: fmt.Sprintf("booking %s was written but could not be read back", number),
			Err: domain.ErrPersistenceInconsistency,
		}
	}

	utils.LogEvent(utils.RequestIDFrom(ctx), "bookings", "create",
		fmt.Sprintf("booking=%s room_id=%d nights=%d guests=%d", stored.BookingNumber, stored.RoomID,
			int(stored.CheckOut.Sub(stored.CheckIn).Hours()/24), stored.GuestCount))
	return stored, nil
}

// GetBookingByNumber returns nil for blank or unknown numbers.
func (s *BookingService) GetBookingByNumber(ctx context.Context, number string) (*models.Booking, error) {
	number = utils.NormalizeBookingNumber(number)
	if number == "" {
		return nil, nil
	}
	return s.Bookings.FindBookingByNumber(ctx, number)
}

// GetBookingsForRoom lists a room's bookings ordered by check-in.
func (s *BookingService) GetBookingsForRoom(ctx context.Context, roomID int64) ([]models.Booking, error) {
	if roomID <= 0 {
		return []models.Booking{}, nil
	}
	return s.Bookings.ListBookingsForRoom(ctx, roomID)
}

// DeleteBooking hard-deletes by number. Blank or unknown numbers yield false.
func (s *BookingService) DeleteBooking(ctx context.Context, number string) (bool, error) {
	number = utils.NormalizeBookingNumber(number)
	if number == "" {
		return false, nil
	}
	deleted, err := s.Bookings.DeleteBookingByNumber(ctx, number)
	if err != nil {
		return false, err
	}
	if deleted {
		utils.LogEvent(utils.RequestIDFrom(ctx), "bookings", "delete", "booking="+number)
	}
	return deleted, nil
}

func (s *BookingService) now() time.Time {
	if s.Clock == nil {
		return utils.NowUTC()
	}
	return s.Clock.Now().UTC()
}
