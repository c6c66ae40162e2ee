package model

import "time"

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column in the
// database.  The password hash is kept internal to the repository
// layer; handlers define separate response types so the digest is
// never serialized into API responses.
//
// Fields:
//  ID                  – primary key identifier of the user.
//  Username            – unique display name.
//  Email               – unique, normalized email address.
//  PasswordHash        – bcrypt hashed password.
//  PhoneNumber         – optional contact number.
//  Role                – access role ("user" or "admin").
//  DailyTravelTarget   – distance/day target used by the travel advisory.
//  LastOdometerReading – highest odometer value reported via the ledger.
//  CreatedAt           – timestamp of creation.
type User struct {
	ID                  uint64    // users.id
	Username            string    // users.username
	Email               string    // users.email
	PasswordHash        string    // users.password_hash
	PhoneNumber         string    // users.phone_number
	Role                string    // users.role
	DailyTravelTarget   float64   // users.daily_travel_target
	LastOdometerReading float64   // users.last_odometer_reading
	CreatedAt           time.Time // users.created_at
}

// Roles stored in users.role.  Admin unlocks station CRUD and lets a
// requester act on bookings owned by other users.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
