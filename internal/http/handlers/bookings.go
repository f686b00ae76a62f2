package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CreateBooking handles POST /api/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.GuestName) == "" {
		respondError(c, http.StatusBadRequest, "invalid_payload", "guestName is required", nil)
		return
	}
	in, err := req.toModel()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", err.Error(), nil)
		return
	}

	booking, err := h.Bookings.CreateBooking(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, "bookings", err)
		return
	}
	c.Header("Location", "/api/bookings/"+booking.BookingNumber)
	c.JSON(http.StatusCreated, toBookingResponse(*booking))
}

// GetBooking handles GET /api/bookings/:number.
func (h *Handler) GetBooking(c *gin.Context) {
	number := c.Param("number")
	booking, err := h.Bookings.GetBookingByNumber(c.Request.Context(), number)
	if err != nil {
		RespondDomainError(c, "bookings", err)
		return
	}
	if booking == nil {
		respondError(c, http.StatusNotFound, "not_found", fmt.Sprintf("booking with number '%s' not found", strings.TrimSpace(number)), nil)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(*booking))
}

// GetRoomBookings handles GET /api/bookings/room/:roomId.
func (h *Handler) GetRoomBookings(c *gin.Context) {
	roomID, ok := paramID(c, "roomId")
	if !ok {
		return
	}
	bookings, err := h.Bookings.GetBookingsForRoom(c.Request.Context(), roomID)
	if err != nil {
		RespondDomainError(c, "bookings", err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// DeleteBooking handles DELETE /api/bookings/:number.
func (h *Handler) DeleteBooking(c *gin.Context) {
	number := c.Param("number")
	deleted, err := h.Bookings.DeleteBooking(c.Request.Context(), number)
	if err != nil {
		RespondDomainError(c, "bookings", err)
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "not_found", fmt.Sprintf("booking with number '%s' not found", strings.TrimSpace(number)), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled", "bookingNumber": strings.ToUpper(strings.TrimSpace(number))})
}
