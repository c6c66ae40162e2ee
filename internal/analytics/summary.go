// Package analytics derives spend and travel figures from a user's expense
// ledger.  Nothing here is persisted; the summary endpoint recomputes on
// every call so both the server-rendered pages and the SPA consume one
// implementation instead of re-deriving the numbers client-side.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
)

// Summary bundles the derived figures for one user.
//
// Fields:
//  TotalSpentLast30Days – sum of expense amounts dated within 30 days of now.
//  AvgDailyTravelKm     – average distance per day between the first and last
//                         odometer readings; 0 with fewer than two readings.
//  AvgMileage           – kilometers traveled per currency unit spent.
//  Notification         – optional travel advisory against the user's target.
type Summary struct {
	TotalSpentLast30Days float64       `json:"totalSpentLast30Days"`
	AvgDailyTravelKm     float64       `json:"avgDailyTravelKm"`
	AvgMileage           float64       `json:"avgMileageKmPerCurrency"`
	Notification         *Notification `json:"notification,omitempty"`
}

// Notification is a threshold-based travel advisory.  Level is one of
// "warning", "info" or "success".
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Summarize computes the full summary from a user's expenses.  The slice may
// arrive in any order; expenses carrying odometer readings are sorted
// ascending by date (creation time breaks ties) before the travel figures
// are derived.
//
// Mileage pairs consecutive odometer-bearing expenses: for each pair where
// the later reading exceeds the earlier, the distance delta is attributed to
// the later expense's amount.  The user's stored last odometer reading is
// deliberately not used as a synthetic starting point, so an expense whose
// reading merely confirms the stored value contributes nothing.
func Summarize(expenses []model.Expense, dailyTravelTargetKm float64, now time.Time) Summary {
	var s Summary

	cutoff := now.AddDate(0, 0, -30)
	for _, e := range expenses {
		if !e.Date.Before(cutoff) {
			s.TotalSpentLast30Days += e.Amount
		}
	}

	withOdo := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Odometer != nil {
			withOdo = append(withOdo, e)
		}
	}
	sort.SliceStable(withOdo, func(i, j int) bool {
		if withOdo[i].Date.Equal(withOdo[j].Date) {
			return withOdo[i].CreatedAt.Before(withOdo[j].CreatedAt)
		}
		return withOdo[i].Date.Before(withOdo[j].Date)
	})

	s.AvgDailyTravelKm = avgDailyTravel(withOdo)
	s.AvgMileage = avgMileage(withOdo)
	s.Notification = travelAdvisory(s.AvgDailyTravelKm, dailyTravelTargetKm)
	return s
}

// avgDailyTravel needs at least two odometer readings.  The elapsed days
// between the first and last reading are rounded up and floored at one, so
// two readings on the same day still produce a finite rate.
func avgDailyTravel(withOdo []model.Expense) float64 {
	if len(withOdo) < 2 {
		return 0
	}
	first, last := withOdo[0], withOdo[len(withOdo)-1]
	deltaKm := *last.Odometer - *first.Odometer
	if deltaKm <= 0 {
		return 0
	}
	days := math.Ceil(math.Abs(last.Date.Sub(first.Date).Hours()) / 24)
	if days < 1 {
		days = 1
	}
	return deltaKm / days
}

// avgMileage walks consecutive reading pairs and accumulates distance against
// the later expense's amount.  Pairs where the odometer did not increase are
// skipped entirely.
func avgMileage(withOdo []model.Expense) float64 {
	var totalKm, totalAmount float64
	for i := 1; i < len(withOdo); i++ {
		prev, cur := *withOdo[i-1].Odometer, *withOdo[i].Odometer
		if cur > prev {
			totalKm += cur - prev
			totalAmount += withOdo[i].Amount
		}
	}
	if totalKm <= 0 || totalAmount <= 0 {
		return 0
	}
	return totalKm / totalAmount
}

// travelAdvisory compares the daily average against the user's target.
// Returns nil when no advisory applies (including a zero average or target).
func travelAdvisory(avgDailyKm, targetKm float64) *Notification {
	if targetKm <= 0 {
		return nil
	}
	switch {
	case avgDailyKm > targetKm*1.2:
		return &Notification{
			Level:   "warning",
			Message: fmt.Sprintf("You're traveling significantly more than your daily target (%.0f KM)! Consider a fuel stop soon.", targetKm),
		}
	case avgDailyKm > targetKm:
		return &Notification{
			Level:   "info",
			Message: fmt.Sprintf("Your daily travel is slightly above your target (%.0f KM). Keep an eye on your fuel!", targetKm),
		}
	case avgDailyKm > 0 && avgDailyKm < targetKm*0.8:
		return &Notification{
			Level:   "success",
			Message: fmt.Sprintf("Your daily travel is below your target (%.0f KM). Good for savings!", targetKm),
		}
	}
	return nil
}
