package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/repository"
)

// UserHandler exposes the authenticated user's profile and travel settings.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(u *repository.UserRepo) *UserHandler {
	if u == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: u}
}

type settingsReq struct {
	DailyTravelTarget   *float64 `json:"dailyTravelTarget"`
	LastOdometerReading *float64 `json:"lastOdometerReading"`
}

// Me returns the caller's profile including travel settings.  The password
// digest never leaves the repository layer.
func (h *UserHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toUserPart(u)})
}

// UpdateSettings overwrites the daily travel target and/or the stored
// odometer reading.  Absent fields keep their current values.
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req settingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.DailyTravelTarget == nil && req.LastOdometerReading == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}
	if req.DailyTravelTarget != nil && *req.DailyTravelTarget <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dailyTravelTarget must be positive"})
	}
	if req.LastOdometerReading != nil && *req.LastOdometerReading < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lastOdometerReading cannot be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.UpdateSettings(ctx, uid, req.DailyTravelTarget, req.LastOdometerReading); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update settings failed"})
	}
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "settings updated", "data": toUserPart(u)})
}
