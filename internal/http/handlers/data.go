package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResetData handles POST /api/data/reset.
func (h *Handler) ResetData(c *gin.Context) {
	if err := h.Data.Reset(c.Request.Context()); err != nil {
		RespondDomainError(c, "data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all data has been reset"})
}

// SeedData handles POST /api/data/seed.
func (h *Handler) SeedData(c *gin.Context) {
	stats, err := h.Data.Seed(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data seeded successfully", "stats": stats})
}

func (h *Handler) DataStats(c *gin.Context) {
	stats, err := h.Data.Stats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "data", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
