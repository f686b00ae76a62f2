package services

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorReportsFirstViolatedRule(t *testing.T) {
	f := newFixture()
	v := BookingValidator{Bookings: f.store, Clock: fixedClock{testNow}}
	room, err := f.store.FindRoom(context.Background(), f.single102)
	require.NoError(t, err)

	cases := []struct {
		name string
		req  models.BookingRequest
		want error
	}{
		{
			name: "reversed and in the past reports order first",
			req:  models.BookingRequest{CheckIn: date(2025, 11, 5), CheckOut: date(2025, 11, 1), GuestCount: 5},
			want: domain.ErrInvalidDateOrder,
		},
		{
			name: "past and over capacity reports past",
			req:  models.BookingRequest{CheckIn: date(2025, 11, 1), CheckOut: date(2025, 11, 5), GuestCount: 5},
			want: domain.ErrCheckInInPast,
		},
		{
			name: "over capacity",
			req:  models.BookingRequest{CheckIn: date(2025, 12, 10), CheckOut: date(2025, 12, 12), GuestCount: 2},
			want: domain.ErrCapacityExceeded,
		},
		{
			name: "no guests",
			req:  models.BookingRequest{CheckIn: date(2025, 12, 10), CheckOut: date(2025, 12, 12), GuestCount: 0},
			want: domain.ErrInvalidGuestCount,
		},
		{
			name: "same day check-in and check-out",
			req:  models.BookingRequest{CheckIn: date(2025, 12, 10), CheckOut: date(2025, 12, 10), GuestCount: 1},
			want: domain.ErrInvalidDateOrder,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tc.req, *room)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidatorTomorrowIsAllowed(t *testing.T) {
	f := newFixture()
	v := BookingValidator{Bookings: f.store, Clock: fixedClock{testNow}}
	room, err := f.store.FindRoom(context.Background(), f.double101)
	require.NoError(t, err)

	err = v.Validate(context.Background(), models.BookingRequest{
		CheckIn: date(2025, 12, 2), CheckOut: date(2025, 12, 3), GuestCount: 2,
	}, *room)
	assert.NoError(t, err)
}

func TestValidatorExcludesGivenBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id, err := f.store.InsertBooking(ctx, models.Booking{
		BookingNumber: "BK1", RoomID: f.double101, CheckIn: date(2025, 12, 25), CheckOut: date(2025, 12, 28), GuestCount: 1, GuestName: "A",
	})
	require.NoError(t, err)

	v := BookingValidator{Bookings: f.store, Clock: fixedClock{testNow}}
	room, err := f.store.FindRoom(ctx, f.double101)
	require.NoError(t, err)
	req := models.BookingRequest{CheckIn: date(2025, 12, 26), CheckOut: date(2025, 12, 29), GuestCount: 1}

	assert.ErrorIs(t, v.CheckRoom(ctx, req, *room, 0), domain.ErrOverlapConflict)
	assert.NoError(t, v.CheckRoom(ctx, req, *room, id))
}
