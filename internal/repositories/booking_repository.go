package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	intdb "hotelbooking/internal/db"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

const bookingColumns = `
	b.id, b.booking_number, b.room_id, b.check_in, b.check_out,
	b.guest_count, b.guest_name, b.created_at`

// overlapPredicate is the half-open interval test in SQL form. Args: room_id,
// excluded booking id, requested check-out, requested check-in.
const overlapPredicate = `room_id = ? AND id <> ? AND check_in < ? AND ? < check_out`

func bookingDest(b *models.Booking) []any {
	return []any{
		&b.ID, &b.BookingNumber, &b.RoomID, &b.CheckIn, &b.CheckOut,
		&b.GuestCount, &b.GuestName, &b.CreatedAt,
	}
}

func normalizeBookingTimes(b *models.Booking) {
	b.CheckIn = b.CheckIn.UTC()
	b.CheckOut = b.CheckOut.UTC()
	b.CreatedAt = b.CreatedAt.UTC()
}

func (r *MySQLStore) HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID int64) (bool, error) {
	db := r.db()
	if db == nil {
		return false, fmt.Errorf("db not available")
	}
	return hasOverlap(ctx, db, roomID, checkIn, checkOut, excludeBookingID)
}

func hasOverlap(ctx context.Context, q intdb.QueryRower, roomID int64, checkIn, checkOut time.Time, excludeBookingID int64) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE `+overlapPredicate,
		roomID, excludeBookingID, dateParam(checkOut), dateParam(checkIn)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("overlap check room %d: %w", roomID, err)
	}
	return n > 0, nil
}

// InsertBooking locks the room row, re-checks overlap and inserts in one
// transaction, so two concurrent requests for the same room cannot both land.
func (r *MySQLStore) InsertBooking(ctx context.Context, b models.Booking) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, fmt.Errorf("db not available")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var locked int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = ? FOR UPDATE`, b.RoomID).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("insert booking: room %d does not exist", b.RoomID)
	}
	if err != nil {
		return 0, fmt.Errorf("lock room %d: %w", b.RoomID, err)
	}

	overlap, err := hasOverlap(ctx, tx, b.RoomID, b.CheckIn, b.CheckOut, 0)
	if err != nil {
		return 0, err
	}
	if overlap {
		return 0, domain.OverlapConflict(b.RoomID)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings
			(booking_number, room_id, check_in, check_out, guest_count, guest_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.BookingNumber, b.RoomID, dateParam(b.CheckIn), dateParam(b.CheckOut),
		b.GuestCount, b.GuestName, b.CreatedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert booking %s: %w", b.BookingNumber, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return id, nil
}

// FindBookingByNumber returns the booking joined with its room, or nil.
func (r *MySQLStore) FindBookingByNumber(ctx context.Context, number string) (*models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	var b models.Booking
	var room models.Room
	err := scanRoomInto(db.QueryRowContext(ctx, `
	SELECT`+bookingColumns+`,`+roomColumns+`
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN hotels h ON h.id = r.hotel_id
	JOIN room_types rt ON rt.id = r.room_type_id
	WHERE b.booking_number = ?
	LIMIT 1`, number), &room, bookingDest(&b)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", number, err)
	}
	normalizeBookingTimes(&b)
	b.Room = &room
	return &b, nil
}

func (r *MySQLStore) BookingNumberExists(ctx context.Context, number string) (bool, error) {
	db := r.db()
	if db == nil {
		return false, fmt.Errorf("db not available")
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE booking_number = ?`, number).Scan(&n); err != nil {
		return false, fmt.Errorf("booking number lookup: %w", err)
	}
	return n > 0, nil
}

func (r *MySQLStore) DeleteBookingByNumber(ctx context.Context, number string) (bool, error) {
	db := r.db()
	if db == nil {
		return false, fmt.Errorf("db not available")
	}
	res, err := db.ExecContext(ctx, `DELETE FROM bookings WHERE booking_number = ?`, number)
	if err != nil {
		return false, fmt.Errorf("delete booking %s: %w", number, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MySQLStore) ListBookingsForRoom(ctx context.Context, roomID int64) ([]models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	rows, err := db.QueryContext(ctx, `
	SELECT`+bookingColumns+`,`+roomColumns+`
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN hotels h ON h.id = r.hotel_id
	JOIN room_types rt ON rt.id = r.room_type_id
	WHERE b.room_id = ?
	ORDER BY b.check_in, b.id`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var room models.Room
		if err := scanRoomInto(rows, &room, bookingDest(&b)...); err != nil {
			return nil, err
		}
		normalizeBookingTimes(&b)
		b.Room = &room
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListBookingsForRooms returns bookings on any of roomIDs that overlap the window.
func (r *MySQLStore) ListBookingsForRooms(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]models.Booking, error) {
	if len(roomIDs) == 0 {
		return []models.Booking{}, nil
	}
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}

	args := make([]any, 0, len(roomIDs)+2)
	for _, id := range roomIDs {
		args = append(args, id)
	}
	args = append(args, dateParam(checkOut), dateParam(checkIn))

	rows, err := db.QueryContext(ctx, `
	SELECT`+bookingColumns+`
	FROM bookings b
	WHERE b.room_id IN (`+placeholders(len(roomIDs))+`)
	  AND b.check_in < ? AND ? < b.check_out
	ORDER BY b.check_in, b.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(bookingDest(&b)...); err != nil {
			return nil, err
		}
		normalizeBookingTimes(&b)
		out = append(out, b)
	}
	return out, rows.Err()
}
