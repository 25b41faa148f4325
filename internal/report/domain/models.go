package domain

import "time"

// Period is a half-open reporting window: Start inclusive, End exclusive.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) Valid() bool {
	return !p.Start.IsZero() && !p.End.IsZero() && p.Start.Before(p.End)
}

// LastDay returns the last calendar day covered by the period.
func (p Period) LastDay() time.Time {
	return p.End.AddDate(0, 0, -1)
}

// Booking is one reservation row from the bookings view. Read-only within a run.
type Booking struct {
	CheckIn      time.Time `gorm:"column:check_in"`
	CheckOut     time.Time `gorm:"column:check_out"`
	Nights       int       `gorm:"column:nights"`
	RevenueGross float64   `gorm:"column:revenue_gross"`
	Commission   float64   `gorm:"column:commission"`
	Portal       string    `gorm:"column:portal"`
}

// MonthlyKPI is one computed month. Month is the first day of the month, UTC.
type MonthlyKPI struct {
	Month           time.Time
	AvailableNights int
	OccupiedNights  int
	RevenueGross    float64
	Commission      float64
	RevenueNet      float64
	Occupancy       float64
	RevPARGross     float64
	RevPARNet       float64
}

// ViewMonthlyKPI is one row of the precomputed monthly KPI view. It serves as a
// cross-check against the locally derived series, never as the rendered source.
type ViewMonthlyKPI struct {
	Month     time.Time `gorm:"column:month"`
	Occupancy float64   `gorm:"column:occupancy"`
	RevPAR    float64   `gorm:"column:revpar"`
}

type YearlyKPI struct {
	Year         int
	RevenueGross float64
	RevenueNet   float64
	Commission   float64
	NightsSold   int
	Bookings     int
	ADR          float64
}

type PortalKPI struct {
	Portal        string
	RevenueGross  float64
	RevenueNet    float64
	Commission    float64
	CommissionPct float64
	NightsSold    int
	Bookings      int
	ADR           float64
}

// Summary feeds the executive-summary grid on the first report page.
type Summary struct {
	RevenueGross float64
	RevenueNet   float64
	Commission   float64
	NightsSold   int
	Bookings     int
	ADR          float64
	AvgOccupancy float64
	AvgRevPAR    float64
	TopPortal    string
}

// Insights are the derived talking points on the closing report page.
type Insights struct {
	BestMonth          time.Time
	BestRevPAR         float64
	PriciestPortal     string
	PriciestCommission float64
}
