package kpi

import (
	"testing"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossCheck_AgreementWithinTolerance(t *testing.T) {
	bookings := []domain.Booking{
		{CheckIn: date(2024, 1, 10), CheckOut: date(2024, 1, 13), Nights: 3, RevenueGross: 300},
		{CheckIn: date(2024, 2, 5), CheckOut: date(2024, 2, 9), Nights: 4, RevenueGross: 480},
	}
	monthly, err := ComputeMonthly(bookings, 1, fullYear2024())
	require.NoError(t, err)

	// view rows carry the same figures the derivation produces
	view := []domain.ViewMonthlyKPI{
		{Month: date(2024, 1, 1), Occupancy: 3.0 / 31.0, RevPAR: 300.0 / 31.0},
		{Month: date(2024, 2, 1), Occupancy: 4.0 / 29.0, RevPAR: 480.0 / 29.0},
	}

	assert.NoError(t, CrossCheck(monthly, view, 1e-6))
}

func TestCrossCheck_MismatchSurfacesMonth(t *testing.T) {
	derived := []domain.MonthlyKPI{
		{Month: date(2024, 1, 1), Occupancy: 0.10, RevPARGross: 9.0},
	}
	view := []domain.ViewMonthlyKPI{
		{Month: date(2024, 1, 1), Occupancy: 0.25, RevPAR: 9.0},
	}

	err := CrossCheck(derived, view, 1e-6)
	require.ErrorIs(t, err, domain.ErrKPIMismatch)
	assert.Contains(t, err.Error(), "2024-01")
	assert.Contains(t, err.Error(), "occupancy")
}

func TestCrossCheck_ViewOnlyMonthsSkipped(t *testing.T) {
	derived := []domain.MonthlyKPI{
		{Month: date(2024, 1, 1), Occupancy: 0.10, RevPARGross: 9.0},
	}
	view := []domain.ViewMonthlyKPI{
		{Month: date(2024, 1, 1), Occupancy: 0.10, RevPAR: 9.0},
		{Month: date(2023, 12, 1), Occupancy: 0.99, RevPAR: 99.0},
	}

	assert.NoError(t, CrossCheck(derived, view, 1e-6))
}

func TestCrossCheck_ZeroToleranceFallsBackToDefault(t *testing.T) {
	derived := []domain.MonthlyKPI{
		{Month: date(2024, 1, 1), Occupancy: 0.1, RevPARGross: 9.0},
	}
	view := []domain.ViewMonthlyKPI{
		{Month: date(2024, 1, 1), Occupancy: 0.1 + 1e-9, RevPAR: 9.0},
	}

	assert.NoError(t, CrossCheck(derived, view, 0))
}
