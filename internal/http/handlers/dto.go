package handlers

import (
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/utils"
)

// Dates travel as dd/MM/yyyy. Input also accepts the layouts utils.ParseDate knows.

type createBookingRequest struct {
	RoomID       int64  `json:"roomId" binding:"required,gt=0"`
	CheckInDate  string `json:"checkInDate" binding:"required,calendardate"`
	CheckOutDate string `json:"checkOutDate" binding:"required,calendardate"`
	// Guest count rules are enforced by the booking service so the error
	// order stays the same for every caller.
	GuestCount int    `json:"guestCount"`
	GuestName  string `json:"guestName" binding:"required,max=100"`
}

func (r createBookingRequest) toModel() (models.BookingRequest, error) {
	in, err := utils.ParseDate(r.CheckInDate)
	if err != nil {
		return models.BookingRequest{}, err
	}
	out, err := utils.ParseDate(r.CheckOutDate)
	if err != nil {
		return models.BookingRequest{}, err
	}
	return models.BookingRequest{
		RoomID:     r.RoomID,
		CheckIn:    in,
		CheckOut:   out,
		GuestCount: r.GuestCount,
		GuestName:  r.GuestName,
	}, nil
}

type availabilityQuery struct {
	CheckInDate  string `form:"checkInDate" binding:"required,calendardate"`
	CheckOutDate string `form:"checkOutDate" binding:"required,calendardate"`
	GuestCount   int    `form:"guestCount"`
	HotelID      *int64 `form:"hotelId" binding:"omitempty,gt=0"`
}

type bookingResponse struct {
	BookingID     int64  `json:"bookingId"`
	BookingNumber string `json:"bookingNumber"`
	RoomID        int64  `json:"roomId"`
	RoomNumber    string `json:"roomNumber"`
	HotelName     string `json:"hotelName"`
	RoomTypeName  string `json:"roomTypeName"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	GuestCount    int    `json:"guestCount"`
	GuestName     string `json:"guestName"`
	CreatedAt     string `json:"createdAt"`
}

func toBookingResponse(b models.Booking) bookingResponse {
	out := bookingResponse{
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		RoomID:        b.RoomID,
		CheckInDate:   utils.FormatDate(b.CheckIn),
		CheckOutDate:  utils.FormatDate(b.CheckOut),
		GuestCount:    b.GuestCount,
		GuestName:     b.GuestName,
		CreatedAt:     utils.FormatDateTime(b.CreatedAt),
	}
	if b.Room != nil {
		out.RoomNumber = b.Room.RoomNumber
		out.HotelName = b.Room.Hotel.Name
		out.RoomTypeName = b.Room.RoomType.Name
	}
	return out
}

func toBookingResponses(bs []models.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingResponse(b))
	}
	return out
}

type roomResponse struct {
	RoomID       int64  `json:"roomId"`
	HotelID      int64  `json:"hotelId"`
	HotelName    string `json:"hotelName"`
	RoomTypeID   int64  `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName"`
	Capacity     int    `json:"capacity"`
	RoomNumber   string `json:"roomNumber"`
}

func toRoomResponse(r models.Room) roomResponse {
	return roomResponse{
		RoomID:       r.ID,
		HotelID:      r.HotelID,
		HotelName:    r.Hotel.Name,
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomType.Name,
		Capacity:     r.Capacity(),
		RoomNumber:   r.RoomNumber,
	}
}

func toRoomResponses(rs []models.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRoomResponse(r))
	}
	return out
}

type availableRoomResponse struct {
	RoomID       int64  `json:"roomId"`
	HotelID      int64  `json:"hotelId"`
	HotelName    string `json:"hotelName"`
	HotelAddress string `json:"hotelAddress"`
	RoomNumber   string `json:"roomNumber"`
	RoomTypeName string `json:"roomTypeName"`
	Capacity     int    `json:"capacity"`
}

func toAvailableRoomResponses(rs []models.Room) []availableRoomResponse {
	out := make([]availableRoomResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, availableRoomResponse{
			RoomID:       r.ID,
			HotelID:      r.HotelID,
			HotelName:    r.Hotel.Name,
			HotelAddress: r.Hotel.Address,
			RoomNumber:   r.RoomNumber,
			RoomTypeName: r.RoomType.Name,
			Capacity:     r.Capacity(),
		})
	}
	return out
}

type hotelSummary struct {
	HotelID int64  `json:"hotelId"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type hotelDetail struct {
	hotelSummary
	Rooms []roomResponse `json:"rooms"`
}

func toHotelSummaries(hs []models.Hotel) []hotelSummary {
	out := make([]hotelSummary, 0, len(hs))
	for _, h := range hs {
		out = append(out, hotelSummary{HotelID: h.ID, Name: h.Name, Address: h.Address})
	}
	return out
}

func toHotelDetail(h models.Hotel) hotelDetail {
	return hotelDetail{
		hotelSummary: hotelSummary{HotelID: h.ID, Name: h.Name, Address: h.Address},
		Rooms:        toRoomResponses(h.Rooms),
	}
}
