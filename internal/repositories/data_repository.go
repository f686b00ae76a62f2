package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "hotelbooking/internal/db"
	"hotelbooking/internal/domain"
)

// Reset empties every table and restarts the id sequences.
func (r *MySQLStore) Reset(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, table := range []string{"bookings", "rooms", "hotels", "room_types"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	// ALTER TABLE commits implicitly, so it runs outside the transaction.
	for _, table := range []string{"bookings", "rooms", "hotels", "room_types"} {
		if _, err := db.ExecContext(ctx, "ALTER TABLE "+table+" AUTO_INCREMENT = 1"); err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}
	return nil
}

// Seed loads the demo roster in one transaction.
func (r *MySQLStore) Seed(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := seedTx(ctx, tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func seedTx(ctx context.Context, tx *sql.Tx) error {
	insert := func(query string, args ...any) (int64, error) {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	typeIDs := make([]int64, len(seedRoomTypes))
	for i, rt := range seedRoomTypes {
		id, err := insert(`INSERT INTO room_types (name, capacity) VALUES (?, ?)`, rt.Name, rt.Capacity)
		if err != nil {
			return fmt.Errorf("seed room type %s: %w", rt.Name, err)
		}
		typeIDs[i] = id
	}

	roomIDs := map[string]int64{}
	for i, sh := range seedHotels {
		hotelID, err := insert(`INSERT INTO hotels (name, address) VALUES (?, ?)`, sh.Name, intdb.NullIfEmpty(sh.Address))
		if err != nil {
			return fmt.Errorf("seed hotel %s: %w", sh.Name, err)
		}
		for _, sr := range seedRoomsPerHotel {
			number := seedRoomNumber(i+1, sr.Suffix)
			id, err := insert(`INSERT INTO rooms (hotel_id, room_type_id, room_number) VALUES (?, ?, ?)`,
				hotelID, typeIDs[sr.Type-1], number)
			if err != nil {
				return fmt.Errorf("seed room %s: %w", number, err)
			}
			roomIDs[fmt.Sprintf("%d/%s", i+1, number)] = id
		}
	}

	for _, sb := range seedBookings {
		roomID, ok := roomIDs[fmt.Sprintf("%d/%s", sb.Hotel, sb.RoomNumber)]
		if !ok {
			return fmt.Errorf("seed booking %s: unknown room %s", sb.Number, sb.RoomNumber)
		}
		if _, err := insert(`
			INSERT INTO bookings
				(booking_number, room_id, check_in, check_out, guest_count, guest_name, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sb.Number, roomID, dateParam(sb.CheckIn), dateParam(sb.CheckOut), sb.Guests, sb.Guest, sb.CreatedAt,
		); err != nil {
			return fmt.Errorf("seed booking %s: %w", sb.Number, err)
		}
	}
	return nil
}

func (r *MySQLStore) Stats(ctx context.Context) (domain.Stats, error) {
	db := r.db()
	if db == nil {
		return domain.Stats{}, fmt.Errorf("db not available")
	}
	var s domain.Stats
	err := db.QueryRowContext(ctx, `
	SELECT
		(SELECT COUNT(*) FROM hotels),
		(SELECT COUNT(*) FROM rooms),
		(SELECT COUNT(*) FROM room_types),
		(SELECT COUNT(*) FROM bookings)`).Scan(&s.Hotels, &s.Rooms, &s.RoomTypes, &s.Bookings)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("stats: %w", err)
	}
	return s, nil
}
