package repository

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/geo"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
)

// StationRepo provides station persistence and the proximity query backing
// the nearest-station endpoint.  Coordinates live in two indexed DOUBLE
// columns; proximity is answered with a bounding-box SQL prefilter followed
// by an exact great-circle pass in Go, so results are always filtered by
// true Haversine distance and sorted ascending before the result cap.
type StationRepo struct {
	db *sql.DB
}

// NewStationRepo returns a StationRepo bound to the given database.
func NewStationRepo(db *sql.DB) *StationRepo { return &StationRepo{db: db} }

// NearestLimit caps the number of results returned by FindNearest.
const NearestLimit = 10

// DefaultRadiusKm applies when the caller gives no maxDistance.
const DefaultRadiusKm = 100.0

const stationColumns = "id,name,latitude,longitude,address,type,brand,contact_phone,logo_url,current_wait_time,available_slots,created_at,updated_at"

func scanStation(row interface{ Scan(...interface{}) error }) (model.Station, error) {
	var s model.Station
	err := row.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.Address, &s.Type,
		&s.Brand, &s.ContactPhone, &s.LogoURL, &s.CurrentWaitTime, &s.AvailableSlots,
		&s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// StationFilter narrows List and FindNearest results.  Empty or "all"
// values disable the corresponding filter.
type StationFilter struct {
	Type  string
	Brand string
}

func (f StationFilter) where() (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}
	if f.Type != "" && f.Type != "all" {
		conds = append(conds, "type=?")
		args = append(args, f.Type)
	}
	if f.Brand != "" && f.Brand != "all" {
		conds = append(conds, "brand=?")
		args = append(args, f.Brand)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns all stations matching the optional equality filters.
func (r *StationRepo) List(ctx context.Context, f StationFilter) ([]model.Station, error) {
	cond, args := f.where()
	rows, err := r.db.QueryContext(ctx, "SELECT "+stationColumns+" FROM stations"+cond+" ORDER BY id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Station, 0)
	for rows.Next() {
		s, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches one station; ErrStationNotFound when absent.
func (r *StationRepo) GetByID(ctx context.Context, id uint64) (model.Station, error) {
	s, err := scanStation(r.db.QueryRowContext(ctx,
		"SELECT "+stationColumns+" FROM stations WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return s, ErrStationNotFound
	}
	return s, err
}

// Create inserts a station and returns its ID.
func (r *StationRepo) Create(ctx context.Context, s model.Station) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stations (name, latitude, longitude, address, type, brand, contact_phone, logo_url, current_wait_time, available_slots)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		s.Name, s.Latitude, s.Longitude, s.Address, s.Type, s.Brand,
		s.ContactPhone, s.LogoURL, s.CurrentWaitTime, s.AvailableSlots)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update overwrites all mutable station fields.  ErrStationNotFound when the
// ID does not exist.
func (r *StationRepo) Update(ctx context.Context, s model.Station) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE stations SET name=?, latitude=?, longitude=?, address=?, type=?, brand=?,
		 contact_phone=?, logo_url=?, current_wait_time=?, available_slots=? WHERE id=?`,
		s.Name, s.Latitude, s.Longitude, s.Address, s.Type, s.Brand,
		s.ContactPhone, s.LogoURL, s.CurrentWaitTime, s.AvailableSlots, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is 0 both for a missing row and for a no-op update;
		// distinguish with an existence probe.
		var exists int
		if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM stations WHERE id=? LIMIT 1", s.ID).Scan(&exists); err == sql.ErrNoRows {
			return ErrStationNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a station; ErrStationNotFound when absent.
func (r *StationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM stations WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStationNotFound
	}
	return nil
}

// StationDistance pairs a station with its computed great-circle distance
// from the query point for display and ordering.
type StationDistance struct {
	Station    model.Station
	DistanceKm float64
}

// FindNearest returns at most NearestLimit stations within radiusKm of
// (lat, lng), filtered by the optional type/brand equality filters and
// sorted ascending by exact Haversine distance.
func (r *StationRepo) FindNearest(ctx context.Context, lat, lng, radiusKm float64, f StationFilter) ([]StationDistance, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	minLat, maxLat, minLng, maxLng := geo.BoundingBox(lat, lng, radiusKm)

	query := "SELECT " + stationColumns + " FROM stations WHERE latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?"
	args := []interface{}{minLat, maxLat, minLng, maxLng}
	if f.Type != "" && f.Type != "all" {
		query += " AND type=?"
		args = append(args, f.Type)
	}
	if f.Brand != "" && f.Brand != "all" {
		query += " AND brand=?"
		args = append(args, f.Brand)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	candidates := make([]model.Station, 0)
	for rows.Next() {
		s, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rankByDistance(candidates, lat, lng, radiusKm, NearestLimit), nil
}

// rankByDistance applies the exact great-circle filter, sorts ascending by
// distance (ID breaks ties for deterministic output) and truncates to limit.
// The sort happens before the cap so the closest stations always survive.
func rankByDistance(stations []model.Station, lat, lng, radiusKm float64, limit int) []StationDistance {
	ranked := make([]StationDistance, 0, len(stations))
	for _, s := range stations {
		d := geo.DistanceKm(lat, lng, s.Latitude, s.Longitude)
		if d <= radiusKm {
			ranked = append(ranked, StationDistance{Station: s, DistanceKm: d})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm == ranked[j].DistanceKm {
			return ranked[i].Station.ID < ranked[j].Station.ID
		}
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
