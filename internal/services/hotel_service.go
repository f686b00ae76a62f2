package services

import (
	"context"
	"strings"

	"hotelbooking/internal/domain/models"
)

type HotelService struct {
	Hotels HotelDirectory
}

func (s HotelService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	return s.Hotels.ListHotels(ctx)
}

// GetHotel returns the hotel with its rooms, or nil when unknown.
func (s HotelService) GetHotel(ctx context.Context, hotelID int64) (*models.Hotel, error) {
	if hotelID <= 0 {
		return nil, nil
	}
	return s.Hotels.FindHotel(ctx, hotelID)
}

// SearchHotels matches hotel names containing name. Blank input matches nothing.
func (s HotelService) SearchHotels(ctx context.Context, name string) ([]models.Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []models.Hotel{}, nil
	}
	return s.Hotels.SearchHotelsByName(ctx, name)
}
