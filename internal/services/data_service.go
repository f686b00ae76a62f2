package services

import (
	"context"
	"fmt"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/utils"
)

// DataService resets and seeds demo data.
type DataService struct {
	Admin DataAdmin
}

func (s DataService) Reset(ctx context.Context) error {
	if err := s.Admin.Reset(ctx); err != nil {
		return err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "data", "reset", "all tables emptied")
	return nil
}

// Seed inserts the demo roster. It refuses to run on a non-empty store so ids stay predictable.
func (s DataService) Seed(ctx context.Context) (domain.Stats, error) {
	before, err := s.Admin.Stats(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	if before.Hotels+before.Rooms+before.RoomTypes+before.Bookings > 0 {
		return before, domain.ConflictError{Resource: "data", Msg: "database already contains data, reset it first"}
	}
	if err := s.Admin.Seed(ctx); err != nil {
		return domain.Stats{}, err
	}
	after, err := s.Admin.Stats(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "data", "seed",
		fmt.Sprintf("hotels=%d rooms=%d bookings=%d", after.Hotels, after.Rooms, after.Bookings))
	return after, nil
}

func (s DataService) Stats(ctx context.Context) (domain.Stats, error) {
	return s.Admin.Stats(ctx)
}
