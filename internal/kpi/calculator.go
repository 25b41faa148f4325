// Package kpi derives the monthly hospitality metrics from booking rows.
// Everything here is pure: same bookings, inventory and period always yield
// the same series, and nothing touches the database or the filesystem.
package kpi

import (
	"fmt"
	"sort"
	"time"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
)

// nightBucket accumulates one calendar month while walking booking nights.
type nightBucket struct {
	nights int
	gross  float64
	comm   float64
}

// ComputeMonthly derives Occupancy and RevPAR per calendar month from
// booking-level rows and a constant room inventory.
//
// Each night of a stay is attributed to the month it falls in, so a stay that
// crosses a month boundary splits exactly: the attributed nights over all
// touched months sum to the stay's night count. Revenue and commission follow
// the nights using a per-night rate (total / nights). Nights on or after
// period.End are excluded, mirroring the calendar cap of the reporting window.
//
// Months between the first and last occupied night appear even when empty:
// an empty month is occupancy 0 and RevPAR 0, not an error.
func ComputeMonthly(bookings []domain.Booking, inventory int, period domain.Period) ([]domain.MonthlyKPI, error) {
	if inventory <= 0 {
		return nil, fmt.Errorf("%w: room inventory is %d", domain.ErrZeroInventory, inventory)
	}
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %v .. %v", domain.ErrInvalidPeriod, period.Start, period.End)
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("%w: no bookings in reporting period", domain.ErrEmptySeries)
	}

	buckets := make(map[time.Time]*nightBucket)
	var firstNight, lastNight time.Time

	for _, b := range bookings {
		checkIn := dateOnly(b.CheckIn)
		checkOut := dateOnly(b.CheckOut)
		nights := int(checkOut.Sub(checkIn).Hours() / 24)
		if nights <= 0 {
			// zero-night stay: contributes nothing
			continue
		}

		grossRate := b.RevenueGross / float64(nights)
		commRate := b.Commission / float64(nights)

		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			if !d.Before(period.End) {
				continue
			}
			m := monthOf(d)
			bucket := buckets[m]
			if bucket == nil {
				bucket = &nightBucket{}
				buckets[m] = bucket
			}
			bucket.nights++
			bucket.gross += grossRate
			bucket.comm += commRate

			if firstNight.IsZero() || d.Before(firstNight) {
				firstNight = d
			}
			if d.After(lastNight) {
				lastNight = d
			}
		}
	}

	if len(buckets) == 0 {
		return nil, fmt.Errorf("%w: no occupied nights in reporting period", domain.ErrEmptySeries)
	}

	series := make([]domain.MonthlyKPI, 0, len(buckets))
	for m := monthOf(firstNight); !m.After(monthOf(lastNight)); m = m.AddDate(0, 1, 0) {
		available := inventory * daysInMonth(m)

		row := domain.MonthlyKPI{Month: m, AvailableNights: available}
		if bucket := buckets[m]; bucket != nil {
			row.OccupiedNights = bucket.nights
			row.RevenueGross = bucket.gross
			row.Commission = bucket.comm
		}
		row.RevenueNet = row.RevenueGross - row.Commission
		row.Occupancy = float64(row.OccupiedNights) / float64(available)
		row.RevPARGross = row.RevenueGross / float64(available)
		row.RevPARNet = row.RevenueNet / float64(available)

		if row.Occupancy < 0 || row.Occupancy > 1 {
			return nil, fmt.Errorf("%w: month %s has occupancy %.4f (%d occupied / %d available)",
				domain.ErrOccupancyRange, m.Format("2006-01"), row.Occupancy, row.OccupiedNights, available)
		}

		series = append(series, row)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Month.Before(series[j].Month) })
	return series, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(month time.Time) int {
	// day 0 of the next month is the last day of this one
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
