package repositories

import (
	"fmt"
	"time"
)

type seedRoomType struct {
	Name     string
	Capacity int
}

type seedHotel struct {
	Name    string
	Address string
}

// seedBooking points at its room by hotel position (1-based) and room number.
type seedBooking struct {
	Number     string
	Hotel      int
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Guest      string
	CreatedAt  time.Time
}

var seedRoomTypes = []seedRoomType{
	{Name: "Single", Capacity: 1},
	{Name: "Double", Capacity: 2},
	{Name: "Deluxe", Capacity: 4},
}

var seedHotels = []seedHotel{
	{Name: "Hotel Azure", Address: "1 Seaside Blvd"},
	{Name: "Mountain Retreat", Address: "22 Hilltop Rd"},
	{Name: "Urban Stay", Address: "100 Main St"},
	{Name: "Grand Palace", Address: "9 Royal Ave"},
	{Name: "Lakeside Inn", Address: "78 Lakeview Dr"},
	{Name: "Skyview Hotel", Address: "200 Cloud St"},
	{Name: "Sunset Villas", Address: "303 Sunset Blvd"},
}

// seedRoomsPerHotel lists (room type position, room suffix): two singles,
// two doubles, two deluxe, numbered <hotel>01..<hotel>06.
var seedRoomsPerHotel = []struct {
	Type   int
	Suffix int
}{
	{1, 1}, {1, 2},
	{2, 3}, {2, 4},
	{3, 5}, {3, 6},
}

func seedRoomNumber(hotel, suffix int) string {
	return fmt.Sprintf("%d%02d", hotel, suffix)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

var seedBookings = []seedBooking{
	// past stays
	{"BK001", 1, "101", day(2024, 1, 15), day(2024, 1, 18), 1, "John Smith", at(2024, 1, 10, 10, 0)},
	{"BK002", 2, "202", day(2024, 1, 20), day(2024, 1, 25), 1, "Tyler White", at(2024, 1, 15, 14, 30)},
	{"BK003", 3, "306", day(2024, 2, 1), day(2024, 2, 5), 4, "Bob Johnson", at(2024, 1, 28, 9, 15)},
	{"BK004", 1, "102", day(2024, 12, 15), day(2024, 12, 20), 1, "Zalika White", at(2024, 12, 10, 16, 45)},
	{"BK005", 2, "203", day(2024, 12, 18), day(2024, 12, 22), 2, "Charlie Wilson", at(2024, 12, 12, 11, 20)},
	{"BK006", 4, "406", day(2024, 12, 20), day(2024, 12, 25), 3, "Diana Miller", at(2024, 12, 15, 13, 10)},
	{"BK007", 1, "103", day(2025, 1, 10), day(2025, 1, 15), 1, "Eve Davis", at(2024, 12, 18, 10, 30)},
	{"BK008", 3, "304", day(2025, 1, 15), day(2025, 1, 20), 2, "Frank Garcia", at(2024, 12, 18, 15, 45)},
	{"BK009", 5, "505", day(2025, 1, 20), day(2025, 1, 25), 4, "Olivia White", at(2024, 12, 18, 12, 15)},
	{"BK010", 2, "204", day(2025, 2, 1), day(2025, 2, 5), 2, "Christopher White", at(2024, 12, 18, 14, 20)},
	{"BK011", 2, "206", day(2025, 2, 10), day(2025, 2, 15), 3, "Iris Taylor", at(2024, 12, 18, 16, 30)},
	{"BK012", 6, "606", day(2025, 2, 20), day(2025, 2, 25), 4, "Jack Thomas", at(2024, 12, 18, 9, 45)},
	{"BK013", 1, "104", day(2025, 3, 1), day(2025, 3, 5), 1, "Karen White", at(2024, 12, 18, 11, 50)},
	{"BK014", 3, "305", day(2025, 3, 10), day(2025, 3, 15), 2, "Leo Harris", at(2024, 12, 18, 13, 25)},
	{"BK015", 5, "506", day(2025, 3, 20), day(2025, 3, 25), 4, "Natalie Mason", at(2024, 12, 18, 15, 10)},
	{"BK016", 1, "105", day(2025, 1, 1), day(2025, 1, 5), 1, "Christopher White Snr", at(2024, 12, 18, 8, 30)},
	{"BK017", 2, "205", day(2025, 1, 3), day(2025, 1, 7), 2, "Oscar Rodriguez", at(2024, 12, 18, 10, 15)},
	{"BK018", 3, "306", day(2025, 1, 1), day(2025, 1, 5), 2, "Trenton White", at(2024, 12, 18, 12, 45)},
	{"BK019", 6, "605", day(2025, 1, 3), day(2025, 1, 7), 3, "Austin Whiten", at(2024, 12, 18, 14, 55)},
}
