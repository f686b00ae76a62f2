package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intconfig "hotelbooking/internal/config"
	intdb "hotelbooking/internal/db"
	"hotelbooking/internal/domain/models"
)

const sqlDate = "2006-01-02"

// MySQLStore is the relational store. A zero value uses the shared config.DB.
type MySQLStore struct {
	DB *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{DB: db}
}

func (r *MySQLStore) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const roomColumns = `
	r.id, r.hotel_id, r.room_type_id, r.room_number,
	h.name, COALESCE(h.address, ''),
	rt.name, rt.capacity`

const roomJoins = `
	FROM rooms r
	JOIN hotels h ON h.id = r.hotel_id
	JOIN room_types rt ON rt.id = r.room_type_id`

func scanRoomInto(row rowScanner, room *models.Room, extra ...any) error {
	dest := []any{
		&room.ID, &room.HotelID, &room.RoomTypeID, &room.RoomNumber,
		&room.Hotel.Name, &room.Hotel.Address,
		&room.RoomType.Name, &room.RoomType.Capacity,
	}
	if err := row.Scan(append(extra, dest...)...); err != nil {
		return err
	}
	room.Hotel.ID = room.HotelID
	room.RoomType.ID = room.RoomTypeID
	return nil
}

func dateParam(t time.Time) string {
	return t.Format(sqlDate)
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, '?')
	}
	return string(out)
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func (r *MySQLStore) EnsureSchema(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	for _, t := range schema {
		if intdb.HasTable(ctx, db, t.name) {
			continue
		}
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}

// Tables in creation order (foreign keys point backwards).
var schema = []struct {
	name string
	ddl  string
}{
	{"room_types", `
CREATE TABLE IF NOT EXISTS room_types (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	capacity INT NOT NULL,
	CONSTRAINT chk_room_type_capacity CHECK (capacity >= 1)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
	{"hotels", `
CREATE TABLE IF NOT EXISTS hotels (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	address VARCHAR(255) NULL,
	KEY idx_hotel_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
	{"rooms", `
CREATE TABLE IF NOT EXISTS rooms (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	hotel_id BIGINT NOT NULL,
	room_type_id BIGINT NOT NULL,
	room_number VARCHAR(10) NOT NULL,
	UNIQUE KEY uniq_hotel_room (hotel_id, room_number),
	CONSTRAINT fk_rooms_hotel FOREIGN KEY (hotel_id) REFERENCES hotels (id) ON DELETE CASCADE,
	CONSTRAINT fk_rooms_type FOREIGN KEY (room_type_id) REFERENCES room_types (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
	{"bookings", `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_number VARCHAR(50) NOT NULL,
	room_id BIGINT NOT NULL,
	check_in DATE NOT NULL,
	check_out DATE NOT NULL,
	guest_count INT NOT NULL,
	guest_name VARCHAR(100) NOT NULL,
	created_at DATETIME NOT NULL,
	UNIQUE KEY uniq_booking_number (booking_number),
	KEY idx_room_check_in (room_id, check_in),
	CONSTRAINT fk_bookings_room FOREIGN KEY (room_id) REFERENCES rooms (id) ON DELETE CASCADE,
	CONSTRAINT chk_booking_window CHECK (check_in < check_out),
	CONSTRAINT chk_booking_guests CHECK (guest_count >= 1)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
}
