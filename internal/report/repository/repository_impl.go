package repository

import (
	"context"
	"fmt"

	"github.com/filipgodzsak/abies-report/internal/config"
	"github.com/filipgodzsak/abies-report/internal/report/domain"
	"gorm.io/gorm"
)

type repo struct {
	viewMonthlyKPI  string
	viewBookingsAll string
}

func Provide(cfg config.Config) domain.Repository {
	return &repo{
		viewMonthlyKPI:  cfg.ViewMonthlyKPI,
		viewBookingsAll: cfg.ViewBookingsAll,
	}
}

func (r *repo) MonthlyKPIView(ctx context.Context, db *gorm.DB, period domain.Period) ([]domain.ViewMonthlyKPI, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: monthly kpi view query", domain.ErrInvalidPeriod)
	}

	var rows []domain.ViewMonthlyKPI
	// View names are an external schema contract, not user input.
	err := db.WithContext(ctx).Raw(
		fmt.Sprintf(`SELECT month, occupancy, revpar
		 FROM %s
		 WHERE month >= ? AND month < ?
		 ORDER BY month`, r.viewMonthlyKPI),
		period.Start,
		period.End,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrQuery, r.viewMonthlyKPI, err)
	}
	return rows, nil
}

func (r *repo) Bookings(ctx context.Context, db *gorm.DB, period domain.Period) ([]domain.Booking, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: bookings query", domain.ErrInvalidPeriod)
	}

	var bookings []domain.Booking
	// Malformed rows (inverted stays, zero nights) are dropped at the source,
	// same filter the reporting view applies upstream.
	err := db.WithContext(ctx).Raw(
		fmt.Sprintf(`SELECT
		   prichod AS check_in,
		   odchod AS check_out,
		   pocet_noci AS nights,
		   cena AS revenue_gross,
		   COALESCE(provizia, 0) AS commission,
		   COALESCE(portal, '') AS portal
		 FROM %s
		 WHERE prichod IS NOT NULL
		   AND odchod IS NOT NULL
		   AND odchod > prichod
		   AND pocet_noci > 0
		   AND prichod >= ? AND prichod < ?
		 ORDER BY prichod`, r.viewBookingsAll),
		period.Start,
		period.End,
	).Scan(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrQuery, r.viewBookingsAll, err)
	}
	return bookings, nil
}
