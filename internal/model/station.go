package model

import "time"

// Station describes one fuel pump or EV charging point.  Coordinates are
// stored as two DOUBLE columns; the JSON boundary re-assembles them into a
// GeoJSON-style point with longitude first, matching the wire shape clients
// already consume.
//
// Fields:
//  ID              – primary key identifier.
//  Name            – human readable station name.
//  Latitude        – geographic latitude in degrees.
//  Longitude       – geographic longitude in degrees.
//  Address         – postal address for display.
//  Type            – one of petrol, diesel, cng, ev.
//  Brand           – operator brand (IndianOil, HP, ...).
//  ContactPhone    – support phone number.
//  LogoURL         – brand logo reference for the UI.
//  CurrentWaitTime – estimated queue wait in minutes, bumped per booking.
//  AvailableSlots  – remaining service capacity; never negative.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Station struct {
	ID              uint64    // stations.id
	Name            string    // stations.name
	Latitude        float64   // stations.latitude
	Longitude       float64   // stations.longitude
	Address         string    // stations.address
	Type            string    // stations.type
	Brand           string    // stations.brand
	ContactPhone    string    // stations.contact_phone
	LogoURL         string    // stations.logo_url
	CurrentWaitTime int       // stations.current_wait_time
	AvailableSlots  int       // stations.available_slots
	CreatedAt       time.Time // stations.created_at
	UpdatedAt       time.Time // stations.updated_at
}

// Fuel/charging categories accepted for stations, bookings and expenses.
const (
	FuelPetrol = "petrol"
	FuelDiesel = "diesel"
	FuelCNG    = "cng"
	FuelEV     = "ev"
)

// ValidFuelType reports whether t is one of the fixed fuel categories.
func ValidFuelType(t string) bool {
	switch t {
	case FuelPetrol, FuelDiesel, FuelCNG, FuelEV:
		return true
	}
	return false
}
