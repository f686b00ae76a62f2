package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a printable booking confirmation.
type DocsService struct {
	Bookings BookingStore
	// Loader replaces the store lookup in tests.
	Loader func(ctx context.Context, number string) (*models.Booking, error)
}

// GenerateConfirmation returns the PDF bytes and a download file name.
func (s DocsService) GenerateConfirmation(ctx context.Context, number string) ([]byte, string, error) {
	number = utils.NormalizeBookingNumber(number)
	if number == "" {
		return nil, "", domain.NotFoundError{Resource: "booking"}
	}

	b, err := s.load(ctx, number)
	if err != nil {
		return nil, "", err
	}
	if b == nil {
		return nil, "", domain.NotFoundError{Resource: fmt.Sprintf("booking with number '%s'", number)}
	}

	utils.LogEvent(utils.RequestIDFrom(ctx), "docs", "generate_confirmation", "booking="+number)
	return buildConfirmationPDF(*b)
}

func (s DocsService) load(ctx context.Context, number string) (*models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(ctx, number)
	}
	return s.Bookings.FindBookingByNumber(ctx, number)
}

func buildConfirmationPDF(b models.Booking) ([]byte, string, error) {
	var hotel, address, roomNumber, roomType string
	if b.Room != nil {
		hotel = b.Room.Hotel.Name
		address = b.Room.Hotel.Address
		roomNumber = b.Room.RoomNumber
		roomType = b.Room.RoomType.Name
	}
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking number : %s", b.BookingNumber),
		fmt.Sprintf("Guest          : %s", safe(b.GuestName, "-")),
		fmt.Sprintf("Guests         : %d", b.GuestCount),
		fmt.Sprintf("Hotel          : %s", safe(hotel, "-")),
		fmt.Sprintf("Address        : %s", safe(address, "-")),
		fmt.Sprintf("Room           : %s (%s)", safe(roomNumber, "-"), safe(roomType, "-")),
		fmt.Sprintf("Check-in       : %s", utils.FormatDate(b.CheckIn)),
		fmt.Sprintf("Check-out      : %s", utils.FormatDate(b.CheckOut)),
		fmt.Sprintf("Nights         : %d", nights),
		fmt.Sprintf("Booked at      : %s UTC", utils.FormatDateTime(b.CreatedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please quote the booking number at reception. Check-out day is free for the next guest.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CONFIRMATION_%s_%s.pdf", safeFilenamePart(b.BookingNumber), safeFilenamePart(b.GuestName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
