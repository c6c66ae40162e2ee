package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
)

func expense(day int, amount float64, odometer *float64) model.Expense {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return model.Expense{
		Date:      base.AddDate(0, 0, day),
		Type:      model.FuelPetrol,
		Amount:    amount,
		Odometer:  odometer,
		CreatedAt: base.AddDate(0, 0, day),
	}
}

func odo(v float64) *float64 { return &v }

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, 50, time.Now())
	if s.TotalSpentLast30Days != 0 || s.AvgDailyTravelKm != 0 || s.AvgMileage != 0 {
		t.Fatalf("empty ledger should derive zeros, got %+v", s)
	}
	if s.Notification != nil {
		t.Fatalf("empty ledger should have no advisory, got %+v", s.Notification)
	}
}

func TestTotalSpentWindow(t *testing.T) {
	now := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	exps := []model.Expense{
		{Date: now.AddDate(0, 0, -5), Amount: 100},
		{Date: now.AddDate(0, 0, -29), Amount: 200},
		{Date: now.AddDate(0, 0, -31), Amount: 400}, // outside the window
	}
	s := Summarize(exps, 50, now)
	if s.TotalSpentLast30Days != 300 {
		t.Fatalf("TotalSpentLast30Days = %v, want 300", s.TotalSpentLast30Days)
	}
}

func TestAvgDailyTravelTwoReadingsTenDaysApart(t *testing.T) {
	// Odometers 1000 and 1500 ten days apart -> 50 km/day.
	exps := []model.Expense{
		expense(0, 500, odo(1000)),
		expense(10, 600, odo(1500)),
	}
	s := Summarize(exps, 50, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if s.AvgDailyTravelKm != 50 {
		t.Fatalf("AvgDailyTravelKm = %v, want 50", s.AvgDailyTravelKm)
	}
}

func TestAvgDailyTravelSameDayReadings(t *testing.T) {
	exps := []model.Expense{
		expense(0, 500, odo(1000)),
		expense(0, 600, odo(1060)),
	}
	s := Summarize(exps, 200, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if s.AvgDailyTravelKm != 60 {
		t.Fatalf("same-day readings should divide by one day, got %v", s.AvgDailyTravelKm)
	}
}

func TestAvgDailyTravelNonIncreasingOdometer(t *testing.T) {
	exps := []model.Expense{
		expense(0, 500, odo(1500)),
		expense(10, 600, odo(1000)),
	}
	s := Summarize(exps, 50, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if s.AvgDailyTravelKm != 0 {
		t.Fatalf("decreasing odometer should floor at 0, got %v", s.AvgDailyTravelKm)
	}
}

func TestAvgMileageAttributesDeltaToLaterExpense(t *testing.T) {
	// 5000 then 5200: delta 200 km attributed to the later expense's amount.
	exps := []model.Expense{
		expense(0, 999, odo(5000)), // first amount must not enter the mileage total
		expense(7, 100, odo(5200)),
	}
	s := Summarize(exps, 50, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if math.Abs(s.AvgMileage-2.0) > 1e-9 {
		t.Fatalf("AvgMileage = %v, want 200/100 = 2", s.AvgMileage)
	}
}

func TestAvgMileageSkipsNonIncreasingPairs(t *testing.T) {
	exps := []model.Expense{
		expense(0, 100, odo(5000)),
		expense(3, 100, odo(5000)), // no travel, skipped
		expense(6, 50, odo(5100)),
	}
	s := Summarize(exps, 50, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if math.Abs(s.AvgMileage-2.0) > 1e-9 {
		t.Fatalf("AvgMileage = %v, want 100/50 = 2", s.AvgMileage)
	}
}

func TestAvgMileageIgnoresExpensesWithoutOdometer(t *testing.T) {
	exps := []model.Expense{
		expense(0, 100, odo(5000)),
		expense(2, 9999, nil), // no reading, must not contribute
		expense(4, 100, odo(5300)),
	}
	s := Summarize(exps, 50, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if math.Abs(s.AvgMileage-3.0) > 1e-9 {
		t.Fatalf("AvgMileage = %v, want 300/100 = 3", s.AvgMileage)
	}
}

func TestSummarizeUnsortedInput(t *testing.T) {
	exps := []model.Expense{
		expense(10, 100, odo(1500)),
		expense(0, 500, odo(1000)),
	}
	s := Summarize(exps, 50, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if s.AvgDailyTravelKm != 50 {
		t.Fatalf("unsorted input should still derive 50 km/day, got %v", s.AvgDailyTravelKm)
	}
	if math.Abs(s.AvgMileage-5.0) > 1e-9 {
		t.Fatalf("AvgMileage = %v, want 500/100 = 5", s.AvgMileage)
	}
}

func TestTravelAdvisoryThresholds(t *testing.T) {
	cases := []struct {
		name      string
		avg       float64
		wantLevel string // "" means no advisory
	}{
		{"over-120pct", 61, "warning"},
		{"between-100-120", 55, "info"},
		{"exactly-target", 50, ""},
		{"between-80-100", 45, ""},
		{"under-80pct", 30, "success"},
		{"zero", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := travelAdvisory(tc.avg, 50)
			if tc.wantLevel == "" {
				if n != nil {
					t.Fatalf("want no advisory, got %+v", n)
				}
				return
			}
			if n == nil || n.Level != tc.wantLevel {
				t.Fatalf("advisory = %+v, want level %q", n, tc.wantLevel)
			}
		})
	}
}
