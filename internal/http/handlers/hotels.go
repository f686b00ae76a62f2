package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.Hotels.ListHotels(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "hotels", err)
		return
	}
	c.JSON(http.StatusOK, toHotelSummaries(hotels))
}

// SearchHotels handles GET /api/hotels/search?name=.
func (h *Handler) SearchHotels(c *gin.Context) {
	hotels, err := h.Hotels.SearchHotels(c.Request.Context(), c.Query("name"))
	if err != nil {
		RespondDomainError(c, "hotels", err)
		return
	}
	c.JSON(http.StatusOK, toHotelSummaries(hotels))
}

func (h *Handler) GetHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	hotel, err := h.Hotels.GetHotel(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "hotels", err)
		return
	}
	if hotel == nil {
		respondError(c, http.StatusNotFound, "not_found", fmt.Sprintf("hotel with ID %d not found", id), nil)
		return
	}
	c.JSON(http.StatusOK, toHotelDetail(*hotel))
}
