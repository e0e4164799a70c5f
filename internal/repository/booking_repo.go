package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"partyrental/internal/db"
)

// nonClaimingStatuses are booking states whose items no longer count
// against availability.
var nonClaimingStatuses = []string{db.BookingStatusCancelled, db.BookingStatusCompleted}

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

// ListActiveClaims returns one row per item claim of every booking that
// still holds its items. This is the snapshot the conflict engine runs on.
func (r *BookingRepository) ListActiveClaims() ([]db.BookingItemClaim, error) {
	query := `
		SELECT bi.id, b.id, b.order_number, b.customer_name,
		       bi.inventory_item_id, i.name,
		       b.delivery_date, b.pickup_date, b.status
		FROM booking_items bi
		JOIN bookings b ON bi.booking_id = b.id
		JOIN inventory_items i ON bi.inventory_item_id = i.id
		WHERE b.status <> ALL($1)
		ORDER BY b.created_at, bi.id`

	rows, err := r.DB.Query(query, pq.Array(nonClaimingStatuses))
	if err != nil {
		return nil, fmt.Errorf("error querying active claims: %w", err)
	}
	defer rows.Close()

	var claims []db.BookingItemClaim
	for rows.Next() {
		var c db.BookingItemClaim
		if err := rows.Scan(&c.BookingItemID, &c.BookingID, &c.OrderNumber, &c.CustomerName,
			&c.InventoryItemID, &c.ItemName, &c.DeliveryDate, &c.PickupDate, &c.Status); err != nil {
			return nil, fmt.Errorf("error scanning claim: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating claims: %w", err)
	}
	return claims, nil
}

// ListActiveClaimsOverlapping narrows the snapshot to claims whose booking
// window touches [from, to]. Closed-range comparison, matching the engine.
func (r *BookingRepository) ListActiveClaimsOverlapping(from, to time.Time) ([]db.BookingItemClaim, error) {
	query := `
		SELECT bi.id, b.id, b.order_number, b.customer_name,
		       bi.inventory_item_id, i.name,
		       b.delivery_date, b.pickup_date, b.status
		FROM booking_items bi
		JOIN bookings b ON bi.booking_id = b.id
		JOIN inventory_items i ON bi.inventory_item_id = i.id
		WHERE b.status <> ALL($1)
		  AND b.delivery_date <= $3
		  AND b.pickup_date >= $2
		ORDER BY b.created_at, bi.id`

	rows, err := r.DB.Query(query, pq.Array(nonClaimingStatuses), from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying overlapping claims: %w", err)
	}
	defer rows.Close()

	var claims []db.BookingItemClaim
	for rows.Next() {
		var c db.BookingItemClaim
		if err := rows.Scan(&c.BookingItemID, &c.BookingID, &c.OrderNumber, &c.CustomerName,
			&c.InventoryItemID, &c.ItemName, &c.DeliveryDate, &c.PickupDate, &c.Status); err != nil {
			return nil, fmt.Errorf("error scanning claim: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating claims: %w", err)
	}
	return claims, nil
}

// CreateBooking inserts the booking, its items, and the exclusion-guarded
// claims in one transaction. A per-item advisory lock serializes concurrent
// requests for the same unit so the availability re-check the caller runs
// cannot race another create.
func (r *BookingRepository) CreateBooking(booking *db.Booking, items []db.BookingItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting booking transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1))`, item.InventoryItemID); err != nil {
			return fmt.Errorf("error locking item %s: %w", item.InventoryItemID, err)
		}
	}

	query := `
		INSERT INTO bookings
		(id, order_number, customer_name, customer_email, customer_phone,
		 delivery_date, pickup_date, delivery_time_window, pickup_time_window,
		 rental_days, delivery_address, setup_instructions, status,
		 subtotal, delivery_fee, tip, total, language, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		RETURNING created_at, updated_at`
	err = tx.QueryRow(query,
		booking.ID, booking.OrderNumber, booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		booking.DeliveryDate, booking.PickupDate, booking.DeliveryTimeWindow, booking.PickupTimeWindow,
		booking.RentalDays, booking.DeliveryAddress, booking.SetupInstructions, booking.Status,
		booking.Subtotal, booking.DeliveryFee, booking.Tip, booking.Total, booking.Language,
		booking.CreatedAt, booking.UpdatedAt,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(
			`INSERT INTO booking_items (id, booking_id, inventory_item_id, price_at_booking) VALUES ($1,$2,$3,$4)`,
			item.ID, booking.ID, item.InventoryItemID, item.PriceAtBooking,
		)
		if err != nil {
			return fmt.Errorf("error inserting booking item: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO booking_claims (booking_id, inventory_item_id, claimed) VALUES ($1,$2, daterange($3::date, $4::date, '[]'))`,
			booking.ID, item.InventoryItemID, booking.DeliveryDate, booking.PickupDate,
		)
		if err != nil {
			return fmt.Errorf("error inserting booking claim: %w", err)
		}
	}

	return tx.Commit()
}

// ErrBookingNotFound is returned when a lookup matches no booking.
var ErrBookingNotFound = errors.New("booking not found")

const bookingColumns = `
	id, order_number, customer_name, customer_email, customer_phone,
	delivery_date, pickup_date, delivery_time_window, pickup_time_window,
	rental_days, delivery_address, setup_instructions, status,
	assigned_driver_id, pickup_driver_id,
	subtotal, delivery_fee, tip, total, language, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*db.Booking, error) {
	var b db.Booking
	err := row.Scan(
		&b.ID, &b.OrderNumber, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.DeliveryDate, &b.PickupDate, &b.DeliveryTimeWindow, &b.PickupTimeWindow,
		&b.RentalDays, &b.DeliveryAddress, &b.SetupInstructions, &b.Status,
		&b.AssignedDriverID, &b.PickupDriverID,
		&b.Subtotal, &b.DeliveryFee, &b.Tip, &b.Total, &b.Language, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetBookingByOrderNumber(orderNumber string) (*db.Booking, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE order_number = $1`, orderNumber)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error querying booking %s: %w", orderNumber, err)
	}
	return b, nil
}

func (r *BookingRepository) GetBookingByID(id string) (*db.Booking, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error querying booking %s: %w", id, err)
	}
	return b, nil
}

func (r *BookingRepository) GetBookingItems(bookingID string) ([]db.BookingItem, []string, error) {
	query := `
		SELECT bi.id, bi.booking_id, bi.inventory_item_id, bi.price_at_booking, i.name
		FROM booking_items bi
		JOIN inventory_items i ON bi.inventory_item_id = i.id
		WHERE bi.booking_id = $1
		ORDER BY i.name`
	rows, err := r.DB.Query(query, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying booking items: %w", err)
	}
	defer rows.Close()

	var items []db.BookingItem
	var names []string
	for rows.Next() {
		var item db.BookingItem
		var name string
		if err := rows.Scan(&item.ID, &item.BookingID, &item.InventoryItemID, &item.PriceAtBooking, &name); err != nil {
			return nil, nil, fmt.Errorf("error scanning booking item: %w", err)
		}
		items = append(items, item)
		names = append(names, name)
	}
	return items, names, rows.Err()
}

// ListBookings returns a filtered, paginated page plus the unfiltered total
// for that filter set.
func (r *BookingRepository) ListBookings(status, date string, limit, offset int) ([]db.Booking, int64, error) {
	where := `WHERE 1=1`
	args := []any{}
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if date != "" {
		args = append(args, date)
		where += fmt.Sprintf(` AND delivery_date <= $%d::date AND pickup_date >= $%d::date`, len(args), len(args))
	}

	var total int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM bookings %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)-1, len(args))
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, total, rows.Err()
}

func (r *BookingRepository) UpdateBooking(b *db.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting update transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE bookings SET
			delivery_date = $2, pickup_date = $3, rental_days = $4,
			delivery_address = $5, status = $6,
			assigned_driver_id = $7, pickup_driver_id = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err = tx.QueryRow(query, b.ID, b.DeliveryDate, b.PickupDate, b.RentalDays,
		b.DeliveryAddress, b.Status, b.AssignedDriverID, b.PickupDriverID).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("error updating booking %s: %w", b.ID, err)
	}

	// Keep the exclusion-guarded claims in step with the new window.
	_, err = tx.Exec(`UPDATE booking_claims SET claimed = daterange($2::date, $3::date, '[]') WHERE booking_id = $1`,
		b.ID, b.DeliveryDate, b.PickupDate)
	if err != nil {
		return fmt.Errorf("error updating booking claims: %w", err)
	}
	return tx.Commit()
}

// UpdateBookingStatus moves a booking to a new lifecycle state. Terminal
// states release the exclusion-guarded claims so the items become bookable
// again.
func (r *BookingRepository) UpdateBookingStatus(id, status string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting status transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrBookingNotFound
	}

	if status == db.BookingStatusCancelled || status == db.BookingStatusCompleted {
		if _, err := tx.Exec(`DELETE FROM booking_claims WHERE booking_id = $1`, id); err != nil {
			return fmt.Errorf("error releasing booking claims: %w", err)
		}
	}
	return tx.Commit()
}

func (r *BookingRepository) DeleteBooking(id string) error {
	result, err := r.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting booking %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
