package domain

// Stats is a snapshot of row counts per table, reported by the data admin endpoints.
type Stats struct {
	Hotels    int `json:"hotels"`
	Rooms     int `json:"rooms"`
	RoomTypes int `json:"roomTypes"`
	Bookings  int `json:"bookings"`
}
