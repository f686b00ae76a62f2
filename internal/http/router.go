package api

import (
	"log"
	stdhttp "net/http"

	intconfig "hotelbooking/internal/config"
	h "hotelbooking/internal/http/handlers"
	"hotelbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	if err := h.RegisterValidators(); err != nil {
		log.Printf("warning: failed to register validators: %v", err)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", h.Routes)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", hd.CreateBooking)
		bookings.GET("/room/:roomId", hd.GetRoomBookings)
		bookings.GET("/:number", hd.GetBooking)
		bookings.DELETE("/:number", hd.DeleteBooking)
		bookings.GET("/:number/confirmation", hd.GetBookingConfirmation)

		// Rooms
		rooms := api.Group("/rooms")
		rooms.GET("/availability", hd.SearchAvailability)
		rooms.GET("/by-hotel/:hotelId", hd.GetRoomsByHotel)
		rooms.GET("/:id", hd.GetRoom)

		// Hotels
		hotels := api.Group("/hotels")
		hotels.GET("", hd.ListHotels)
		hotels.GET("/search", hd.SearchHotels)
		hotels.GET("/:id", hd.GetHotel)

		// Demo data
		data := api.Group("/data")
		data.POST("/reset", hd.ResetData)
		data.POST("/seed", hd.SeedData)
		data.GET("/stats", hd.DataStats)
	}

	h.SetRouter(r)
	return r
}
