package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/repository"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/service"
)

// BookingHandler serves slot booking and booking management endpoints.
type BookingHandler struct {
	Bookings  *repository.BookingRepo
	Publisher *service.QueuePublisher
}

func NewBookingHandler(b *repository.BookingRepo, pub *service.QueuePublisher) *BookingHandler {
	if b == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Publisher: pub}
}

type createBookingReq struct {
	StationID     uint64   `json:"stationId"`
	FuelType      string   `json:"fuelType"`
	VehicleType   string   `json:"vehicleType"`
	Quantity      *float64 `json:"quantity"`
	TimeSlot      string   `json:"timeSlot"`
	BookingDate   string   `json:"bookingDate"`
	PaymentAmount *float64 `json:"paymentAmount"`
}

func (r createBookingReq) validate() string {
	if r.StationID == 0 {
		return "stationId is required"
	}
	if !model.ValidFuelType(r.FuelType) {
		return "fuelType must be one of petrol, diesel, cng, ev"
	}
	if !model.ValidVehicleType(r.VehicleType) {
		return "vehicleType must be one of car, bike, auto, truck, other"
	}
	if r.Quantity == nil || *r.Quantity <= 0 {
		return "quantity must be positive"
	}
	if r.TimeSlot == "" {
		return "timeSlot is required"
	}
	if r.BookingDate == "" {
		return "bookingDate is required"
	}
	if r.PaymentAmount == nil || *r.PaymentAmount <= 0 {
		return "paymentAmount must be positive"
	}
	return ""
}

// Create handles POST /api/bookings. It reserves a slot at the station
// atomically and mints the queue token; on success a confirmation event is
// published best-effort.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookingDate must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b := &model.Booking{
		UserID:        userID,
		StationID:     req.StationID,
		FuelType:      req.FuelType,
		VehicleType:   req.VehicleType,
		Quantity:      *req.Quantity,
		TimeSlot:      req.TimeSlot,
		BookingDate:   bookingDate,
		PaymentAmount: *req.PaymentAmount,
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		switch err {
		case repository.ErrStationNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		case repository.ErrNoSlots:
			return c.JSON(http.StatusConflict, echo.Map{"error": "no slots available at this station"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
		}
	}

	detail, err := h.Bookings.GetByID(ctx, b.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}
	if h.Publisher != nil {
		h.Publisher.PublishBookingConfirmed(ctx, detail)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "booking confirmed",
		"data":    detail,
	})
}

// ListUser handles GET /api/bookings/user: the caller's bookings, newest first.
func (h *BookingHandler) ListUser(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch bookings failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": len(bookings), "data": bookings})
}

// Get handles GET /api/bookings/:id. Owners and admins only.
func (h *BookingHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	detail, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch booking failed"})
	}
	if detail.UserID != userID && currentRole(c) != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": detail})
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidBookingStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be one of confirmed, completed, cancelled"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.UpdateStatus(ctx, id, userID, currentRole(c), req.Status); err != nil {
		switch err {
		case repository.ErrBookingNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update booking failed"})
		}
	}
	detail, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": detail})
}

// Delete handles DELETE /api/bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Delete(ctx, id, userID, currentRole(c)); err != nil {
		switch err {
		case repository.ErrBookingNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete booking failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "booking deleted successfully"})
}
