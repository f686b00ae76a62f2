package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelbooking/internal/domain/models"
)

func (r *MySQLStore) FindRoom(ctx context.Context, roomID int64) (*models.Room, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	var room models.Room
	err := scanRoomInto(db.QueryRowContext(ctx, `SELECT`+roomColumns+roomJoins+`
	WHERE r.id = ?
	LIMIT 1`, roomID), &room)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find room %d: %w", roomID, err)
	}
	return &room, nil
}

func (r *MySQLStore) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]models.Room, error) {
	return r.queryRooms(ctx, `SELECT`+roomColumns+roomJoins+`
	WHERE r.hotel_id = ?
	ORDER BY r.room_number, r.id`, hotelID)
}

// ListRoomsForAvailability returns rooms whose type holds at least guestCount,
// optionally limited to one hotel. Booking overlap is checked by the caller.
func (r *MySQLStore) ListRoomsForAvailability(ctx context.Context, guestCount int, hotelID *int64) ([]models.Room, error) {
	query := `SELECT` + roomColumns + roomJoins + `
	WHERE rt.capacity >= ?`
	args := []any{guestCount}
	if hotelID != nil {
		query += ` AND r.hotel_id = ?`
		args = append(args, *hotelID)
	}
	query += `
	ORDER BY r.id`
	return r.queryRooms(ctx, query, args...)
}

func (r *MySQLStore) queryRooms(ctx context.Context, query string, args ...any) ([]models.Room, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Room{}
	for rows.Next() {
		var room models.Room
		if err := scanRoomInto(rows, &room); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}
