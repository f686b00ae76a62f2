package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelbooking/internal/domain/models"
)

func (r *MySQLStore) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	return r.queryHotels(ctx, `
	SELECT id, name, COALESCE(address, '')
	FROM hotels
	ORDER BY id`)
}

// SearchHotelsByName matches a substring of the name. The column collation
// makes the match case-insensitive.
func (r *MySQLStore) SearchHotelsByName(ctx context.Context, name string) ([]models.Hotel, error) {
	return r.queryHotels(ctx, `
	SELECT id, name, COALESCE(address, '')
	FROM hotels
	WHERE name LIKE ?
	ORDER BY id`, "%"+escapeLike(name)+"%")
}

// FindHotel loads one hotel with its rooms.
func (r *MySQLStore) FindHotel(ctx context.Context, hotelID int64) (*models.Hotel, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	var h models.Hotel
	err := db.QueryRowContext(ctx, `
	SELECT id, name, COALESCE(address, '')
	FROM hotels
	WHERE id = ?
	LIMIT 1`, hotelID).Scan(&h.ID, &h.Name, &h.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hotel %d: %w", hotelID, err)
	}
	rooms, err := r.ListRoomsByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	h.Rooms = rooms
	return &h, nil
}

func (r *MySQLStore) queryHotels(ctx context.Context, query string, args ...any) ([]models.Hotel, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
