// Package export writes the computed KPI tables as CSV files and as a single
// XLSX workbook. Output is deterministic: identical inputs produce
// byte-identical CSV files across runs.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
)

func WriteMonthlyCSV(path string, rows []domain.MonthlyKPI) error {
	records := [][]string{{
		"month", "available_nights", "occupied_nights",
		"revenue_gross", "commission", "revenue_net",
		"occupancy", "revpar_gross", "revpar_net",
	}}
	for _, r := range rows {
		records = append(records, []string{
			r.Month.Format("2006-01-02"),
			strconv.Itoa(r.AvailableNights),
			strconv.Itoa(r.OccupiedNights),
			formatFloat(r.RevenueGross),
			formatFloat(r.Commission),
			formatFloat(r.RevenueNet),
			formatFloat(r.Occupancy),
			formatFloat(r.RevPARGross),
			formatFloat(r.RevPARNet),
		})
	}
	return writeCSV(path, records)
}

func WriteYearlyCSV(path string, rows []domain.YearlyKPI) error {
	records := [][]string{{
		"year", "revenue_gross", "revenue_net", "commission",
		"nights_sold", "bookings", "adr_weighted",
	}}
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.Year),
			formatFloat(r.RevenueGross),
			formatFloat(r.RevenueNet),
			formatFloat(r.Commission),
			strconv.Itoa(r.NightsSold),
			strconv.Itoa(r.Bookings),
			formatFloat(r.ADR),
		})
	}
	return writeCSV(path, records)
}

func WritePortalCSV(path string, rows []domain.PortalKPI) error {
	records := [][]string{{
		"portal", "revenue_gross", "revenue_net", "commission",
		"commission_pct", "nights_sold", "bookings", "adr_weighted",
	}}
	for _, r := range rows {
		records = append(records, []string{
			r.Portal,
			formatFloat(r.RevenueGross),
			formatFloat(r.RevenueNet),
			formatFloat(r.Commission),
			formatFloat(r.CommissionPct),
			strconv.Itoa(r.NightsSold),
			strconv.Itoa(r.Bookings),
			formatFloat(r.ADR),
		})
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrExport, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrExport, path, err)
	}
	return nil
}

// formatFloat uses the shortest round-trip representation so that equal
// float64 inputs always serialize to equal bytes.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
