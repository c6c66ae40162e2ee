package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// newJSONContext builds an echo context carrying the given JSON body,
// optionally authenticated as user 1.
func newJSONContext(t *testing.T, method, target, body string, authed bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authed {
		c.Set("user_id", uint64(1))
		c.Set("role", "user")
	}
	return c, rec
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	h := &AuthHandler{}
	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"email":"a@b.com"}`},
		{"bad email", `{"username":"sai","email":"not-an-email","password":"secret1"}`},
		{"short password", `{"username":"sai","email":"sai@example.com","password":"abc"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/api/auth/signup", tc.body, false)
			if err := h.Signup(c); err != nil {
				t.Fatalf("Signup returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestNearestRequiresCoordinates(t *testing.T) {
	h := &StationHandler{}
	cases := []struct {
		name   string
		target string
	}{
		{"no params", "/api/stations/nearest"},
		{"lat only", "/api/stations/nearest?lat=28.6"},
		{"non numeric", "/api/stations/nearest?lat=abc&lng=77.2"},
		{"lat out of range", "/api/stations/nearest?lat=99&lng=77.2"},
		{"bad maxDistance", "/api/stations/nearest?lat=28.6&lng=77.2&maxDistance=-5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodGet, tc.target, "", false)
			if err := h.Nearest(c); err != nil {
				t.Fatalf("Nearest returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCreateBookingValidation(t *testing.T) {
	h := &BookingHandler{}
	cases := []struct {
		name string
		body string
	}{
		{"missing station", `{"fuelType":"petrol","vehicleType":"car","quantity":5,"timeSlot":"14:30","bookingDate":"2026-09-01","paymentAmount":500}`},
		{"bad fuel type", `{"stationId":1,"fuelType":"kerosene","vehicleType":"car","quantity":5,"timeSlot":"14:30","bookingDate":"2026-09-01","paymentAmount":500}`},
		{"bad vehicle type", `{"stationId":1,"fuelType":"petrol","vehicleType":"tank","quantity":5,"timeSlot":"14:30","bookingDate":"2026-09-01","paymentAmount":500}`},
		{"zero quantity", `{"stationId":1,"fuelType":"petrol","vehicleType":"car","quantity":0,"timeSlot":"14:30","bookingDate":"2026-09-01","paymentAmount":500}`},
		{"bad date", `{"stationId":1,"fuelType":"petrol","vehicleType":"car","quantity":5,"timeSlot":"14:30","bookingDate":"01-09-2026","paymentAmount":500}`},
		{"missing amount", `{"stationId":1,"fuelType":"petrol","vehicleType":"car","quantity":5,"timeSlot":"14:30","bookingDate":"2026-09-01"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/api/bookings", tc.body, true)
			if err := h.Create(c); err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCreateBookingRequiresAuth(t *testing.T) {
	h := &BookingHandler{}
	c, rec := newJSONContext(t, http.MethodPost, "/api/bookings", `{}`, false)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestExpenseValidation(t *testing.T) {
	h := &ExpenseHandler{}
	longNotes := strings.Repeat("x", 201)
	cases := []struct {
		name string
		body string
	}{
		{"missing date", `{"type":"petrol","amount":100}`},
		{"bad type", `{"date":"2026-08-30","type":"water","amount":100}`},
		{"zero amount", `{"date":"2026-08-30","type":"petrol","amount":0}`},
		{"negative odometer", `{"date":"2026-08-30","type":"petrol","amount":100,"odometer":-5}`},
		{"notes too long", `{"date":"2026-08-30","type":"petrol","amount":100,"notes":"` + longNotes + `"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/api/expenses", tc.body, true)
			if err := h.Create(c); err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestStationRequestValidate(t *testing.T) {
	lat, lng := 28.6, 77.2
	badLat := 95.0
	wait := -1
	cases := []struct {
		name string
		req  stationReq
		ok   bool
	}{
		{"valid", stationReq{Name: "S", Latitude: &lat, Longitude: &lng, Type: "petrol"}, true},
		{"missing name", stationReq{Latitude: &lat, Longitude: &lng, Type: "petrol"}, false},
		{"missing coords", stationReq{Name: "S", Type: "petrol"}, false},
		{"lat out of range", stationReq{Name: "S", Latitude: &badLat, Longitude: &lng, Type: "petrol"}, false},
		{"bad type", stationReq{Name: "S", Latitude: &lat, Longitude: &lng, Type: "hydrogen"}, false},
		{"negative wait", stationReq{Name: "S", Latitude: &lat, Longitude: &lng, Type: "petrol", CurrentWaitTime: &wait}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.req.validate()
			if ok := msg == ""; ok != tc.ok {
				t.Fatalf("validate() = %q, want ok=%v", msg, tc.ok)
			}
		})
	}
}
