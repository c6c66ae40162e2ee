package model

import "time"

// Expense is a single fuel or charging purchase entered by a user.
// Odometer is optional; when present it feeds the mileage and daily-travel
// derivations and may raise the user's stored last odometer reading.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owning user.
//  Date      – date the expense occurred.
//  Type      – fuel category (petrol, diesel, cng, ev).
//  Amount    – money spent, >= 0.
//  Odometer  – odometer reading at purchase time (nil when not recorded).
//  Notes     – free text, at most 200 characters.
//  CreatedAt – creation timestamp.
type Expense struct {
	ID        uint64    // expenses.id
	UserID    uint64    // expenses.user_id
	Date      time.Time // expenses.date
	Type      string    // expenses.type
	Amount    float64   // expenses.amount
	Odometer  *float64  // expenses.odometer (nullable)
	Notes     string    // expenses.notes
	CreatedAt time.Time // expenses.created_at
}

// MaxNoteLength bounds the free-text notes field.
const MaxNoteLength = 200
