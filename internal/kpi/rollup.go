package kpi

import (
	"sort"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
)

// ComputeYearly rolls the monthly series up to calendar years. Nights and
// revenue come from the already-apportioned monthly rows; booking counts are
// assigned to the year of check-in.
func ComputeYearly(monthly []domain.MonthlyKPI, bookings []domain.Booking) []domain.YearlyKPI {
	byYear := make(map[int]*domain.YearlyKPI)

	for _, m := range monthly {
		year := m.Month.Year()
		row := byYear[year]
		if row == nil {
			row = &domain.YearlyKPI{Year: year}
			byYear[year] = row
		}
		row.RevenueGross += m.RevenueGross
		row.RevenueNet += m.RevenueNet
		row.Commission += m.Commission
		row.NightsSold += m.OccupiedNights
	}

	for _, b := range bookings {
		if row := byYear[b.CheckIn.Year()]; row != nil {
			row.Bookings++
		}
	}

	years := make([]domain.YearlyKPI, 0, len(byYear))
	for _, row := range byYear {
		if row.NightsSold > 0 {
			row.ADR = row.RevenueGross / float64(row.NightsSold)
		}
		years = append(years, *row)
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })
	return years
}

// ComputePortal totals bookings per distribution channel, most valuable first.
func ComputePortal(bookings []domain.Booking) []domain.PortalKPI {
	byPortal := make(map[string]*domain.PortalKPI)

	for _, b := range bookings {
		portal := b.Portal
		if portal == "" {
			portal = "direct"
		}
		row := byPortal[portal]
		if row == nil {
			row = &domain.PortalKPI{Portal: portal}
			byPortal[portal] = row
		}
		row.RevenueGross += b.RevenueGross
		row.Commission += b.Commission
		row.RevenueNet += b.RevenueGross - b.Commission
		row.NightsSold += b.Nights
		row.Bookings++
	}

	portals := make([]domain.PortalKPI, 0, len(byPortal))
	for _, row := range byPortal {
		if row.RevenueGross > 0 {
			row.CommissionPct = 100.0 * row.Commission / row.RevenueGross
		}
		if row.NightsSold > 0 {
			row.ADR = row.RevenueGross / float64(row.NightsSold)
		}
		portals = append(portals, *row)
	}
	sort.Slice(portals, func(i, j int) bool {
		if portals[i].RevenueGross != portals[j].RevenueGross {
			return portals[i].RevenueGross > portals[j].RevenueGross
		}
		return portals[i].Portal < portals[j].Portal
	})
	return portals
}

// Summarize condenses the whole reporting window into the executive-summary
// figures shown on the first report page.
func Summarize(monthly []domain.MonthlyKPI, portals []domain.PortalKPI, bookings []domain.Booking) domain.Summary {
	var s domain.Summary
	s.Bookings = len(bookings)

	for _, m := range monthly {
		s.RevenueGross += m.RevenueGross
		s.RevenueNet += m.RevenueNet
		s.Commission += m.Commission
		s.NightsSold += m.OccupiedNights
		s.AvgOccupancy += m.Occupancy
		s.AvgRevPAR += m.RevPARGross
	}
	if len(monthly) > 0 {
		s.AvgOccupancy /= float64(len(monthly))
		s.AvgRevPAR /= float64(len(monthly))
	}
	if s.NightsSold > 0 {
		s.ADR = s.RevenueGross / float64(s.NightsSold)
	}

	var bestNet float64
	for _, p := range portals {
		if s.TopPortal == "" || p.RevenueNet > bestNet {
			s.TopPortal = p.Portal
			bestNet = p.RevenueNet
		}
	}
	return s
}

// DeriveInsights picks the talking points for the closing report page: the
// strongest month by RevPAR and the most commission-heavy channel.
func DeriveInsights(monthly []domain.MonthlyKPI, portals []domain.PortalKPI) domain.Insights {
	var ins domain.Insights
	for _, m := range monthly {
		if ins.BestMonth.IsZero() || m.RevPARGross > ins.BestRevPAR {
			ins.BestMonth = m.Month
			ins.BestRevPAR = m.RevPARGross
		}
	}
	for _, p := range portals {
		if ins.PriciestPortal == "" || p.CommissionPct > ins.PriciestCommission {
			ins.PriciestPortal = p.Portal
			ins.PriciestCommission = p.CommissionPct
		}
	}
	return ins
}
