package repository

import (
	"context"
	"database/sql"
	"math/rand"
	"strings"
	"time"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/utils"
)

// BookingRepo provides booking persistence.  Creating a booking and
// adjusting the station's capacity happen inside one transaction: the slot
// decrement is a conditional UPDATE ("decrement if greater than zero") so
// two concurrent bookings against a station with one remaining slot resolve
// to exactly one success and one ErrNoSlots.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// maxTokenRetries bounds regeneration attempts when a generated token
// number collides with the UNIQUE constraint.
const maxTokenRetries = 5

// waitTimeBumpPerBooking is added to a station's current wait time for each
// accepted booking to reflect the added load.
const waitTimeBumpPerBooking = 1

// Create reserves a slot and records the booking as one atomic unit.
// It fills in TokenNumber, EstimatedWaitTime, Status, PaymentStatus, ID and
// CreatedAt on the passed booking.  Failure modes: ErrStationNotFound,
// ErrNoSlots, or a driver error.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Conditional decrement doubles as the existence/capacity check.  Zero
	// rows affected means either an unknown station or an exhausted one.
	res, err := tx.ExecContext(ctx,
		"UPDATE stations SET available_slots = available_slots - 1, current_wait_time = current_wait_time + ? WHERE id=? AND available_slots > 0",
		waitTimeBumpPerBooking, b.StationID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM stations WHERE id=? LIMIT 1", b.StationID).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrStationNotFound
		}
		if err != nil {
			return err
		}
		return ErrNoSlots
	}

	// Snapshot the wait time the driver will actually experience: the value
	// before this booking's own bump, plus 0-4 minutes of jitter.
	var waitAfterBump int
	if err := tx.QueryRowContext(ctx,
		"SELECT current_wait_time FROM stations WHERE id=?", b.StationID).Scan(&waitAfterBump); err != nil {
		return err
	}
	b.EstimatedWaitTime = waitAfterBump - waitTimeBumpPerBooking + rand.Intn(5)
	b.Status = model.BookingConfirmed
	b.PaymentStatus = model.PaymentPaid

	// The token number is only probabilistically unique; the UNIQUE key on
	// bookings.token_number is the actual guarantee.  Regenerate and retry
	// on a duplicate-key error.
	var lastErr error
	for attempt := 0; attempt < maxTokenRetries; attempt++ {
		b.TokenNumber = utils.NewTokenNumber()
		ins, err := tx.ExecContext(ctx,
			`INSERT INTO bookings (user_id, station_id, fuel_type, vehicle_type, quantity, time_slot, booking_date,
			 token_number, estimated_wait_time, status, payment_status, payment_amount)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			b.UserID, b.StationID, b.FuelType, b.VehicleType, b.Quantity, b.TimeSlot, b.BookingDate,
			b.TokenNumber, b.EstimatedWaitTime, b.Status, b.PaymentStatus, b.PaymentAmount)
		if err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "1062") {
				lastErr = err
				continue
			}
			return err
		}
		id, err := ins.LastInsertId()
		if err != nil {
			return err
		}
		b.ID = uint64(id)
		lastErr = nil
		break
	}
	if lastErr != nil {
		return lastErr
	}

	if err := tx.QueryRowContext(ctx,
		"SELECT created_at FROM bookings WHERE id=?", b.ID).Scan(&b.CreatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// BookingDetail is a booking joined with the station fields the booking
// history pages display.  It is returned by ListByUser and GetByID.
type BookingDetail struct {
	ID                uint64    `json:"id"`
	StationID         uint64    `json:"stationId"`
	StationName       string    `json:"stationName"`
	StationBrand      string    `json:"stationBrand"`
	StationLogoURL    string    `json:"stationLogoUrl"`
	StationPhone      string    `json:"stationContactPhone"`
	FuelType          string    `json:"fuelType"`
	VehicleType       string    `json:"vehicleType"`
	Quantity          float64   `json:"quantity"`
	TimeSlot          string    `json:"timeSlot"`
	BookingDate       time.Time `json:"bookingDate"`
	TokenNumber       string    `json:"tokenNumber"`
	EstimatedWaitTime int       `json:"estimatedWaitTime"`
	Status            string    `json:"status"`
	PaymentStatus     string    `json:"paymentStatus"`
	PaymentAmount     float64   `json:"paymentAmount"`
	CreatedAt         time.Time `json:"createdAt"`

	// UserID is kept for ownership checks; handlers do not serialize it to
	// other users.
	UserID uint64 `json:"-"`
}

const bookingDetailQuery = `SELECT b.id, b.user_id, b.station_id, s.name, s.brand, s.logo_url, s.contact_phone,
		b.fuel_type, b.vehicle_type, b.quantity, b.time_slot, b.booking_date,
		b.token_number, b.estimated_wait_time, b.status, b.payment_status, b.payment_amount, b.created_at
 FROM bookings b
 JOIN stations s ON s.id = b.station_id`

func scanBookingDetail(row interface{ Scan(...interface{}) error }) (BookingDetail, error) {
	var d BookingDetail
	err := row.Scan(&d.ID, &d.UserID, &d.StationID, &d.StationName, &d.StationBrand,
		&d.StationLogoURL, &d.StationPhone, &d.FuelType, &d.VehicleType, &d.Quantity,
		&d.TimeSlot, &d.BookingDate, &d.TokenNumber, &d.EstimatedWaitTime,
		&d.Status, &d.PaymentStatus, &d.PaymentAmount, &d.CreatedAt)
	return d, err
}

// ListByUser returns the user's bookings newest-first with station fields
// denormalized for display.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		bookingDetailQuery+" WHERE b.user_id = ? ORDER BY b.created_at DESC, b.id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]BookingDetail, 0)
	for rows.Next() {
		d, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByID returns one booking with station fields joined.  The caller is
// responsible for the ownership check against the returned UserID.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (BookingDetail, error) {
	d, err := scanBookingDetail(r.db.QueryRowContext(ctx, bookingDetailQuery+" WHERE b.id = ?", id))
	if err == sql.ErrNoRows {
		return d, ErrBookingNotFound
	}
	return d, err
}

// UpdateStatus transitions a booking's status on behalf of requester.  Only
// the owner or an admin may transition; status must already be validated by
// the handler.  Returns ErrBookingNotFound or ErrForbidden.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id, requesterID uint64, requesterRole, status string) error {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != requesterID && requesterRole != model.RoleAdmin {
		return ErrForbidden
	}
	_, err = r.db.ExecContext(ctx, "UPDATE bookings SET status=? WHERE id=?", status, id)
	return err
}

// Delete removes a booking, owner-or-admin only.
func (r *BookingRepo) Delete(ctx context.Context, id, requesterID uint64, requesterRole string) error {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != requesterID && requesterRole != model.RoleAdmin {
		return ErrForbidden
	}
	_, err = r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	return err
}

func (r *BookingRepo) ownerOf(ctx context.Context, id uint64) (uint64, error) {
	var owner uint64
	err := r.db.QueryRowContext(ctx, "SELECT user_id FROM bookings WHERE id=? LIMIT 1", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return 0, ErrBookingNotFound
	}
	return owner, err
}
