package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/repository"
)

// StationHandler serves station browsing and the proximity search, plus the
// admin-only CRUD operations.
type StationHandler struct {
	Stations *repository.StationRepo
}

func NewStationHandler(s *repository.StationRepo) *StationHandler {
	if s == nil {
		panic("nil repository passed to NewStationHandler")
	}
	return &StationHandler{Stations: s}
}

// geoPoint renders coordinates in the GeoJSON convention clients already
// consume: longitude first.
type geoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type stationResp struct {
	ID              uint64   `json:"id"`
	Name            string   `json:"name"`
	Location        geoPoint `json:"location"`
	Address         string   `json:"address"`
	Type            string   `json:"type"`
	Brand           string   `json:"brand"`
	ContactPhone    string   `json:"contactPhone"`
	LogoURL         string   `json:"logoUrl"`
	CurrentWaitTime int      `json:"currentWaitTime"`
	AvailableSlots  int      `json:"availableSlots"`

	// DistanceKm is only populated by the nearest endpoint.
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

func toStationResp(s model.Station) stationResp {
	return stationResp{
		ID:              s.ID,
		Name:            s.Name,
		Location:        geoPoint{Type: "Point", Coordinates: [2]float64{s.Longitude, s.Latitude}},
		Address:         s.Address,
		Type:            s.Type,
		Brand:           s.Brand,
		ContactPhone:    s.ContactPhone,
		LogoURL:         s.LogoURL,
		CurrentWaitTime: s.CurrentWaitTime,
		AvailableSlots:  s.AvailableSlots,
	}
}

// List handles GET /api/stations?type=&brand=.
func (h *StationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f := repository.StationFilter{Type: c.QueryParam("type"), Brand: c.QueryParam("brand")}
	stations, err := h.Stations.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch stations failed"})
	}
	out := make([]stationResp, 0, len(stations))
	for _, s := range stations {
		out = append(out, toStationResp(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": len(out), "data": out})
}

// Get handles GET /api/stations/:id.
func (h *StationHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Stations.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrStationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch station failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toStationResp(s)})
}

// Nearest handles GET /api/stations/nearest?lat=&lng=&maxDistance=&type=&brand=.
// Results are filtered to the radius by true great-circle distance, sorted
// ascending by that distance and capped at ten.
func (h *StationHandler) Nearest(c echo.Context) error {
	latStr, lngStr := c.QueryParam("lat"), c.QueryParam("lng")
	if latStr == "" || lngStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "please provide latitude and longitude"})
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coordinates"})
	}
	radius := repository.DefaultRadiusKm
	if md := c.QueryParam("maxDistance"); md != "" {
		r, err := strconv.ParseFloat(md, 64)
		if err != nil || r <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid maxDistance"})
		}
		radius = r
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f := repository.StationFilter{Type: c.QueryParam("type"), Brand: c.QueryParam("brand")}
	ranked, err := h.Stations.FindNearest(ctx, lat, lng, radius, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "nearest query failed"})
	}
	out := make([]stationResp, 0, len(ranked))
	for _, r := range ranked {
		resp := toStationResp(r.Station)
		d := r.DistanceKm
		resp.DistanceKm = &d
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": len(out), "data": out})
}

// ----- admin CRUD -----

type stationReq struct {
	Name            string   `json:"name"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Address         string   `json:"address"`
	Type            string   `json:"type"`
	Brand           string   `json:"brand"`
	ContactPhone    string   `json:"contactPhone"`
	LogoURL         string   `json:"logoUrl"`
	CurrentWaitTime *int     `json:"currentWaitTime"`
	AvailableSlots  *int     `json:"availableSlots"`
}

func (r stationReq) validate() string {
	if r.Name == "" {
		return "name is required"
	}
	if r.Latitude == nil || r.Longitude == nil {
		return "latitude and longitude are required"
	}
	if *r.Latitude < -90 || *r.Latitude > 90 || *r.Longitude < -180 || *r.Longitude > 180 {
		return "coordinates out of range"
	}
	if !model.ValidFuelType(r.Type) {
		return "type must be one of petrol, diesel, cng, ev"
	}
	if r.CurrentWaitTime != nil && *r.CurrentWaitTime < 0 {
		return "currentWaitTime cannot be negative"
	}
	if r.AvailableSlots != nil && *r.AvailableSlots < 0 {
		return "availableSlots cannot be negative"
	}
	return ""
}

func (r stationReq) toModel() model.Station {
	s := model.Station{
		Name:         r.Name,
		Latitude:     *r.Latitude,
		Longitude:    *r.Longitude,
		Address:      r.Address,
		Type:         r.Type,
		Brand:        r.Brand,
		ContactPhone: r.ContactPhone,
		LogoURL:      r.LogoURL,
	}
	if r.CurrentWaitTime != nil {
		s.CurrentWaitTime = *r.CurrentWaitTime
	}
	if r.AvailableSlots != nil {
		s.AvailableSlots = *r.AvailableSlots
	}
	return s
}

// Create handles POST /api/stations (admin only).
func (h *StationHandler) Create(c echo.Context) error {
	var req stationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Stations.Create(ctx, req.toModel())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create station failed"})
	}
	s, err := h.Stations.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load station failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": toStationResp(s)})
}

// Update handles PUT /api/stations/:id (admin only).
func (h *StationHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	var req stationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := req.toModel()
	s.ID = id
	if err := h.Stations.Update(ctx, s); err != nil {
		if err == repository.ErrStationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update station failed"})
	}
	updated, err := h.Stations.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load station failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toStationResp(updated)})
}

// Delete handles DELETE /api/stations/:id (admin only).
func (h *StationHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Stations.Delete(ctx, id); err != nil {
		if err == repository.ErrStationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete station failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "station deleted successfully"})
}
