package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

func TestDocsServiceGenerateConfirmation(t *testing.T) {
	loader := func(_ context.Context, number string) (*models.Booking, error) {
		return &models.Booking{
			ID:            1,
			BookingNumber: number,
			RoomID:        3,
			CheckIn:       time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
			CheckOut:      time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC),
			GuestCount:    2,
			GuestName:     "John Doe",
			CreatedAt:     time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC),
			Room: &models.Room{
				ID:         3,
				RoomNumber: "103",
				Hotel:      models.Hotel{ID: 1, Name: "Hotel Azure", Address: "1 Seaside Blvd"},
				RoomType:   models.RoomType{ID: 2, Name: "Double", Capacity: 2},
			},
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateConfirmation(context.Background(), " bk202512011234 ")
	if err != nil {
		t.Fatalf("GenerateConfirmation returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateConfirmation returned empty data")
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Fatalf("output is not a PDF document")
	}
	if filename != "CONFIRMATION_BK202512011234_John_Doe.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceUnknownBooking(t *testing.T) {
	svc := DocsService{Loader: func(context.Context, string) (*models.Booking, error) { return nil, nil }}

	if _, _, err := svc.GenerateConfirmation(context.Background(), "BK000"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := svc.GenerateConfirmation(context.Background(), "   "); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for blank number, got %v", err)
	}
}
