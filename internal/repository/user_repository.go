package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,username,email,password_hash,phone_number,role,daily_travel_target,last_odometer_reading,created_at"

// Create hashes the password and inserts the user, returning the new ID.
// Unique-key violations are mapped to ErrEmailExists/ErrUsernameExists by
// sniffing the constraint name out of the MySQL 1062 error text.
func (r *UserRepo) Create(ctx context.Context, username, email, password, phone string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, phone_number) VALUES (?,?,?,?)",
		username, email, hash, phone)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "1062") {
			if strings.Contains(msg, "uq_users_username") {
				return 0, ErrUsernameExists
			}
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.PhoneNumber,
		&u.Role, &u.DailyTravelTarget, &u.LastOdometerReading, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.PhoneNumber,
		&u.Role, &u.DailyTravelTarget, &u.LastOdometerReading, &u.CreatedAt)
	return u, err
}

// UpdateSettings overwrites the user's travel target and/or stored odometer
// reading.  Nil pointers leave the current value untouched.
func (r *UserRepo) UpdateSettings(ctx context.Context, id uint64, target, odometer *float64) error {
	if target == nil && odometer == nil {
		return nil
	}
	set := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	if target != nil {
		set = append(set, "daily_travel_target=?")
		args = append(args, *target)
	}
	if odometer != nil {
		set = append(set, "last_odometer_reading=?")
		args = append(args, *odometer)
	}
	args = append(args, id)
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(set, ", ")+" WHERE id=?", args...)
	return err
}

// RaiseOdometerTx lifts last_odometer_reading to reading when the stored
// value is lower.  Runs inside the caller's transaction so the expense
// insert and the side effect commit together.
func (r *UserRepo) RaiseOdometerTx(ctx context.Context, tx *sql.Tx, id uint64, reading float64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE users SET last_odometer_reading=? WHERE id=? AND last_odometer_reading < ?",
		reading, id, reading)
	return err
}
