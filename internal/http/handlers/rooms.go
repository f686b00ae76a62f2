package handlers

import (
	"fmt"
	"net/http"

	"hotelbooking/internal/services"
	"hotelbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// SearchAvailability handles GET /api/rooms/availability. No free room is an
// empty list, not a 404.
func (h *Handler) SearchAvailability(c *gin.Context) {
	var q availabilityQuery
	if !BindQueryOrError(c, &q) {
		return
	}
	in, _ := utils.ParseDate(q.CheckInDate)
	out, _ := utils.ParseDate(q.CheckOutDate)

	rooms, err := h.Rooms.SearchAvailability(c.Request.Context(), services.AvailabilityQuery{
		CheckIn:    in,
		CheckOut:   out,
		GuestCount: q.GuestCount,
		HotelID:    q.HotelID,
	})
	if err != nil {
		RespondDomainError(c, "rooms", err)
		return
	}
	c.JSON(http.StatusOK, toAvailableRoomResponses(rooms))
}

// GetRoom handles GET /api/rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := h.Rooms.GetRoom(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "rooms", err)
		return
	}
	if room == nil {
		respondError(c, http.StatusNotFound, "not_found", fmt.Sprintf("room with ID %d not found", id), nil)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(*room))
}

// GetRoomsByHotel handles GET /api/rooms/by-hotel/:hotelId.
func (h *Handler) GetRoomsByHotel(c *gin.Context) {
	hotelID, ok := paramID(c, "hotelId")
	if !ok {
		return
	}
	rooms, err := h.Rooms.GetRoomsByHotel(c.Request.Context(), hotelID)
	if err != nil {
		RespondDomainError(c, "rooms", err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(rooms))
}
