package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/analytics"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/repository"
)

// ExpenseHandler serves the expense ledger and the derived spending summary.
type ExpenseHandler struct {
	Expenses *repository.ExpenseRepo
	Users    *repository.UserRepo
}

func NewExpenseHandler(e *repository.ExpenseRepo, u *repository.UserRepo) *ExpenseHandler {
	if e == nil || u == nil {
		panic("nil repository passed to NewExpenseHandler")
	}
	return &ExpenseHandler{Expenses: e, Users: u}
}

type expenseReq struct {
	Date     string   `json:"date"`
	Type     string   `json:"type"`
	Amount   *float64 `json:"amount"`
	Odometer *float64 `json:"odometer"`
	Notes    string   `json:"notes"`
}

func (r expenseReq) validate() string {
	if r.Date == "" {
		return "date is required"
	}
	if !model.ValidFuelType(r.Type) {
		return "type must be one of petrol, diesel, cng, ev"
	}
	if r.Amount == nil || *r.Amount <= 0 {
		return "amount must be positive"
	}
	if r.Odometer != nil && *r.Odometer < 0 {
		return "odometer cannot be negative"
	}
	if len(r.Notes) > model.MaxNoteLength {
		return "notes cannot exceed 200 characters"
	}
	return ""
}

type expenseResp struct {
	ID        uint64    `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Odometer  *float64  `json:"odometer,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toExpenseResp(e model.Expense) expenseResp {
	return expenseResp{
		ID:        e.ID,
		Date:      e.Date,
		Type:      e.Type,
		Amount:    e.Amount,
		Odometer:  e.Odometer,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

// Create handles POST /api/expenses.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e := &model.Expense{
		UserID:   userID,
		Date:     date,
		Type:     req.Type,
		Amount:   *req.Amount,
		Odometer: req.Odometer,
		Notes:    req.Notes,
	}
	if err := h.Expenses.Create(ctx, e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create expense failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": toExpenseResp(*e)})
}

// ListUser handles GET /api/expenses: the caller's expenses, newest first.
func (h *ExpenseHandler) ListUser(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	expenses, err := h.Expenses.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch expenses failed"})
	}
	out := make([]expenseResp, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResp(e))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": len(out), "data": out})
}

// Get handles GET /api/expenses/:id. Owners and admins only.
func (h *ExpenseHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expense id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Expenses.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrExpenseNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "expense not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch expense failed"})
	}
	if e.UserID != userID && currentRole(c) != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toExpenseResp(e)})
}

// Update handles PUT /api/expenses/:id. Owner only.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expense id"})
	}
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e := &model.Expense{
		ID:       id,
		Date:     date,
		Type:     req.Type,
		Amount:   *req.Amount,
		Odometer: req.Odometer,
		Notes:    req.Notes,
	}
	if err := h.Expenses.Update(ctx, e, userID); err != nil {
		switch err {
		case repository.ErrExpenseNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "expense not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update expense failed"})
		}
	}
	updated, err := h.Expenses.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load expense failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toExpenseResp(updated)})
}

// Delete handles DELETE /api/expenses/:id. Owner only.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expense id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Expenses.Delete(ctx, id, userID); err != nil {
		switch err {
		case repository.ErrExpenseNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "expense not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete expense failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "expense deleted successfully"})
}

// Summary handles GET /api/expenses/summary: total spend over the last 30
// days plus the driving-habit derivations against the user's daily target.
func (h *ExpenseHandler) Summary(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch user failed"})
	}
	expenses, err := h.Expenses.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch expenses failed"})
	}
	summary := analytics.Summarize(expenses, user.DailyTravelTarget, time.Now().UTC())
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": summary})
}
