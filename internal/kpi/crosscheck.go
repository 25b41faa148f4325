package kpi

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
)

// DefaultTolerance bounds the acceptable drift between the database view and
// the locally derived series.
const DefaultTolerance = 1e-6

// CrossCheck compares the derived monthly series against the precomputed view
// for every month present in both. A disagreement beyond the tolerance fails
// the run: the two sources claim the same truth, so drift means either the
// view or the local derivation is wrong and no report should ship.
//
// Months present in only one series are not compared; the view may cover a
// wider window than the bookings do.
func CrossCheck(derived []domain.MonthlyKPI, view []domain.ViewMonthlyKPI, tolerance float64) error {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	byMonth := make(map[time.Time]domain.MonthlyKPI, len(derived))
	for _, row := range derived {
		byMonth[monthOf(row.Month)] = row
	}

	var mismatches []string
	for _, v := range view {
		d, ok := byMonth[monthOf(v.Month)]
		if !ok {
			continue
		}
		if math.Abs(d.Occupancy-v.Occupancy) > tolerance {
			mismatches = append(mismatches, fmt.Sprintf("%s occupancy derived=%.8f view=%.8f",
				v.Month.Format("2006-01"), d.Occupancy, v.Occupancy))
		}
		if math.Abs(d.RevPARGross-v.RevPAR) > tolerance {
			mismatches = append(mismatches, fmt.Sprintf("%s revpar derived=%.8f view=%.8f",
				v.Month.Format("2006-01"), d.RevPARGross, v.RevPAR))
		}
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrKPIMismatch, strings.Join(mismatches, "; "))
	}
	return nil
}
