package database

import (
	"context"
	"database/sql"
)

// schemaStatements creates all tables the service needs.  Statements are
// idempotent so EnsureSchema can run on every startup.  The composite index
// on (latitude, longitude) keeps the bounding-box prefilter used by the
// nearest-station query off a full table scan.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		phone_number VARCHAR(15) NOT NULL DEFAULT '',
		role VARCHAR(16) NOT NULL DEFAULT 'user',
		daily_travel_target DOUBLE NOT NULL DEFAULT 50,
		last_odometer_reading DOUBLE NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email),
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_refresh_tokens_hash (token_hash),
		CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS stations (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(120) NOT NULL,
		latitude DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL,
		address VARCHAR(255) NOT NULL DEFAULT '',
		type ENUM('petrol','diesel','cng','ev') NOT NULL,
		brand VARCHAR(60) NOT NULL DEFAULT '',
		contact_phone VARCHAR(20) NOT NULL DEFAULT '',
		logo_url VARCHAR(512) NOT NULL DEFAULT '',
		current_wait_time INT NOT NULL DEFAULT 0,
		available_slots INT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_stations_lat_lng (latitude, longitude),
		KEY idx_stations_type_brand (type, brand)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		station_id BIGINT UNSIGNED NOT NULL,
		fuel_type ENUM('petrol','diesel','cng','ev') NOT NULL,
		vehicle_type ENUM('car','bike','auto','truck','other') NOT NULL,
		quantity DOUBLE NOT NULL,
		time_slot VARCHAR(16) NOT NULL,
		booking_date DATETIME NOT NULL,
		token_number VARCHAR(20) NOT NULL,
		estimated_wait_time INT NOT NULL DEFAULT 0,
		status ENUM('pending','confirmed','completed','cancelled') NOT NULL DEFAULT 'pending',
		payment_status ENUM('pending','paid','failed') NOT NULL DEFAULT 'pending',
		payment_amount DOUBLE NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_bookings_token (token_number),
		KEY idx_bookings_user_created (user_id, created_at),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_bookings_station FOREIGN KEY (station_id) REFERENCES stations (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS expenses (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		date DATETIME NOT NULL,
		type ENUM('petrol','diesel','cng','ev') NOT NULL,
		amount DOUBLE NOT NULL,
		odometer DOUBLE NULL,
		notes VARCHAR(200) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_expenses_user_date (user_id, date, created_at),
		CONSTRAINT fk_expenses_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables.  It is safe to call repeatedly.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
