// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a slot booking is successfully
// confirmed. It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID         uint64  `json:"booking_id"`
	UserID            uint64  `json:"user_id"`
	StationID         uint64  `json:"station_id"`
	StationName       string  `json:"station_name"`
	StationBrand      string  `json:"station_brand"`
	FuelType          string  `json:"fuel_type"`
	VehicleType       string  `json:"vehicle_type"`
	Quantity          float64 `json:"quantity"`
	TimeSlot          string  `json:"time_slot"`
	BookingDate       string  `json:"booking_date"`
	TokenNumber       string  `json:"token_number"`
	EstimatedWaitTime int     `json:"estimated_wait_time"`
	PaymentAmount     float64 `json:"payment_amount"`
	ConfirmedAt       string  `json:"confirmed_at"`
}
