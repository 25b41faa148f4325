package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/filipgodzsak/abies-report/internal/config"
	"github.com/filipgodzsak/abies-report/internal/report/domain"
)

func testRepo(t *testing.T) (domain.Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(
		`CREATE TABLE rpt_monthly_kpi (month DATETIME, occupancy REAL, revpar REAL)`,
	).Error)
	require.NoError(t, db.Exec(
		`CREATE TABLE abies_bookings_all (prichod DATETIME, odchod DATETIME, pocet_noci INTEGER, cena REAL, provizia REAL, portal TEXT)`,
	).Error)

	repo := Provide(config.Config{
		ViewMonthlyKPI:  "rpt_monthly_kpi",
		ViewBookingsAll: "abies_bookings_all",
	})
	return repo, db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func period(start, end time.Time) domain.Period {
	return domain.Period{Start: start, End: end}
}

func TestMonthlyKPIView_BoundedAndOrdered(t *testing.T) {
	repo, db := testRepo(t)
	ctx := context.Background()

	insert := `INSERT INTO rpt_monthly_kpi (month, occupancy, revpar) VALUES (?, ?, ?)`
	require.NoError(t, db.Exec(insert, day(2024, 2, 1), 0.2, 22.0).Error)
	require.NoError(t, db.Exec(insert, day(2024, 1, 1), 0.1, 11.0).Error)
	require.NoError(t, db.Exec(insert, day(2023, 12, 1), 0.9, 99.0).Error) // before window

	rows, err := repo.MonthlyKPIView(ctx, db, period(day(2024, 1, 1), day(2025, 1, 1)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, time.January, rows[0].Month.Month())
	assert.InDelta(t, 0.1, rows[0].Occupancy, 1e-12)
	assert.Equal(t, time.February, rows[1].Month.Month())
	assert.InDelta(t, 22.0, rows[1].RevPAR, 1e-12)
}

func TestBookings_FiltersMalformedRows(t *testing.T) {
	repo, db := testRepo(t)
	ctx := context.Background()

	insert := `INSERT INTO abies_bookings_all (prichod, odchod, pocet_noci, cena, provizia, portal) VALUES (?, ?, ?, ?, ?, ?)`
	// valid
	require.NoError(t, db.Exec(insert, day(2024, 1, 10), day(2024, 1, 13), 3, 300.0, 45.0, "booking.com").Error)
	// inverted stay
	require.NoError(t, db.Exec(insert, day(2024, 1, 20), day(2024, 1, 18), 2, 200.0, 0.0, "airbnb").Error)
	// zero nights
	require.NoError(t, db.Exec(insert, day(2024, 1, 25), day(2024, 1, 25), 0, 100.0, 0.0, "direct").Error)
	// outside window
	require.NoError(t, db.Exec(insert, day(2026, 3, 1), day(2026, 3, 4), 3, 330.0, 0.0, "direct").Error)
	// null commission defaults to zero
	require.NoError(t, db.Exec(
		`INSERT INTO abies_bookings_all (prichod, odchod, pocet_noci, cena, provizia, portal) VALUES (?, ?, ?, ?, NULL, NULL)`,
		day(2024, 2, 1), day(2024, 2, 3), 2, 240.0,
	).Error)

	bookings, err := repo.Bookings(ctx, db, period(day(2024, 1, 1), day(2025, 1, 1)))
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	first := bookings[0]
	assert.Equal(t, 3, first.Nights)
	assert.InDelta(t, 300.0, first.RevenueGross, 1e-12)
	assert.InDelta(t, 45.0, first.Commission, 1e-12)
	assert.Equal(t, "booking.com", first.Portal)

	second := bookings[1]
	assert.Zero(t, second.Commission)
	assert.Equal(t, "", second.Portal)
}

func TestQueries_MissingRelation(t *testing.T) {
	repo := Provide(config.Config{
		ViewMonthlyKPI:  "no_such_view",
		ViewBookingsAll: "no_such_table",
	})
	db, err := gorm.Open(sqlite.Open("file:missingrel?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ctx := context.Background()
	p := period(day(2024, 1, 1), day(2025, 1, 1))

	_, err = repo.MonthlyKPIView(ctx, db, p)
	assert.ErrorIs(t, err, domain.ErrQuery)

	_, err = repo.Bookings(ctx, db, p)
	assert.ErrorIs(t, err, domain.ErrQuery)
}

func TestQueries_InvalidPeriod(t *testing.T) {
	repo, db := testRepo(t)
	ctx := context.Background()

	_, err := repo.MonthlyKPIView(ctx, db, domain.Period{})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = repo.Bookings(ctx, db, domain.Period{})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
