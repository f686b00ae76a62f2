package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBookingConfirmation returns the booking confirmation PDF (inline).
func (h *Handler) GetBookingConfirmation(c *gin.Context) {
	pdfBytes, filename, err := h.Docs.GenerateConfirmation(c.Request.Context(), c.Param("number"))
	if err != nil {
		RespondDomainError(c, "docs", err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
