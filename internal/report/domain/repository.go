package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository reads the two relational sources the pipeline depends on. Both
// queries are read-only and bounded by the reporting period.
type Repository interface {
	MonthlyKPIView(ctx context.Context, db *gorm.DB, period Period) ([]ViewMonthlyKPI, error)
	Bookings(ctx context.Context, db *gorm.DB, period Period) ([]Booking, error)
}
