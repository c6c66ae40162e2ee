package model

import "time"

// Booking records a confirmed refueling slot at a station.  The token
// number is the human-readable queue ticket handed to the driver; it is
// distinct from the authentication bearer token and unique across all
// bookings.  EstimatedWaitTime is a snapshot of the station's wait time
// at creation and never changes afterwards.
//
// Fields:
//  ID                – primary key identifier.
//  UserID            – owning user.
//  StationID         – station being booked.
//  FuelType          – one of petrol, diesel, cng, ev.
//  VehicleType       – one of car, bike, auto, truck, other.
//  Quantity          – fuel/charging units, > 0.
//  TimeSlot          – requested time of day, e.g. "14:30".
//  BookingDate       – date of the reserved slot.
//  TokenNumber       – globally unique queue ticket (MF-XXXXXXXX-XXX).
//  EstimatedWaitTime – wait-time snapshot in minutes, frozen at creation.
//  Status            – pending → confirmed → completed, or cancelled.
//  PaymentStatus     – pending, paid or failed.
//  PaymentAmount     – amount paid (payment is simulated upstream).
//  CreatedAt         – creation timestamp.
type Booking struct {
	ID                uint64    // bookings.id
	UserID            uint64    // bookings.user_id
	StationID         uint64    // bookings.station_id
	FuelType          string    // bookings.fuel_type
	VehicleType       string    // bookings.vehicle_type
	Quantity          float64   // bookings.quantity
	TimeSlot          string    // bookings.time_slot
	BookingDate       time.Time // bookings.booking_date
	TokenNumber       string    // bookings.token_number
	EstimatedWaitTime int       // bookings.estimated_wait_time
	Status            string    // bookings.status
	PaymentStatus     string    // bookings.payment_status
	PaymentAmount     float64   // bookings.payment_amount
	CreatedAt         time.Time // bookings.created_at
}

// Booking statuses.  Transitions are one-directional except cancellation.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// ValidVehicleType reports whether v is an accepted vehicle category.
func ValidVehicleType(v string) bool {
	switch v {
	case "car", "bike", "auto", "truck", "other":
		return true
	}
	return false
}

// ValidBookingStatus reports whether s is a status clients may set via the
// status update endpoint.  "pending" is the initial DB default and is not
// reachable through the API.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}
