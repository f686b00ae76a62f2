package services

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/utils"
)

// BookingValidator enforces the reservation rules in a fixed order so the
// first violated rule is the one reported:
//
//	1. check-in before check-out
//	2. check-in after today
//	3. (room exists, resolved by the caller)
//	4. guest count within room capacity
//	5. guest count at least 1
//	6. no overlapping booking for the room
type BookingValidator struct {
	Bookings BookingStore
	Clock    Clock
}

func (v BookingValidator) today() time.Time {
	clock := v.Clock
	if clock == nil {
		clock = RealClock{}
	}
	return utils.DateOnly(clock.Now())
}

// CheckWindow runs steps 1 and 2. It needs no store access.
func (v BookingValidator) CheckWindow(checkIn, checkOut time.Time) error {
	checkIn, checkOut = utils.DateOnly(checkIn), utils.DateOnly(checkOut)
	if !checkIn.Before(checkOut) {
		return domain.ValidationError{Field: "check_out", Err: domain.ErrInvalidDateOrder}
	}
	if !checkIn.After(v.today()) {
		return domain.ValidationError{Field: "check_in", Err: domain.ErrCheckInInPast}
	}
	return nil
}

// CheckGuestCount is step 5 on its own, used by availability search.
func (v BookingValidator) CheckGuestCount(guestCount int) error {
	if guestCount < 1 {
		return domain.ValidationError{Field: "guest_count", Err: domain.ErrInvalidGuestCount}
	}
	return nil
}

// CheckRoom runs steps 4 to 6 against a resolved room. excludeBookingID > 0
// leaves that booking out of the overlap check.
func (v BookingValidator) CheckRoom(ctx context.Context, req models.BookingRequest, room models.Room, excludeBookingID int64) error {
	if req.GuestCount > room.Capacity() {
		return domain.ValidationError{
			Field: "guest_count",
			Err:   domain.CapacityExceededError{Requested: req.GuestCount, Capacity: room.Capacity()},
		}
	}
	if err := v.CheckGuestCount(req.GuestCount); err != nil {
		return err
	}

	overlap, err := v.Bookings.HasOverlap(ctx, room.ID, utils.DateOnly(req.CheckIn), utils.DateOnly(req.CheckOut), excludeBookingID)
	if err != nil {
		return err
	}
	if overlap {
		return domain.OverlapConflict(room.ID)
	}
	return nil
}

// Validate runs every rule for a request whose room is already resolved.
func (v BookingValidator) Validate(ctx context.Context, req models.BookingRequest, room models.Room) error {
	if err := v.CheckWindow(req.CheckIn, req.CheckOut); err != nil {
		return err
	}
	return v.CheckRoom(ctx, req, room, 0)
}
