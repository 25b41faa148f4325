package export

import (
	"fmt"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes the three KPI tables into one XLSX workbook, one sheet
// per table, for ad-hoc analysis outside the PDF.
func WriteWorkbook(path string, monthly []domain.MonthlyKPI, yearly []domain.YearlyKPI, portals []domain.PortalKPI) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Monthly"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExport, err)
	}
	for _, name := range []string{"Yearly", "Portal"} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrExport, err)
		}
	}

	monthlyRows := [][]any{{
		"month", "available_nights", "occupied_nights",
		"revenue_gross", "commission", "revenue_net",
		"occupancy", "revpar_gross", "revpar_net",
	}}
	for _, r := range monthly {
		monthlyRows = append(monthlyRows, []any{
			r.Month.Format("2006-01"), r.AvailableNights, r.OccupiedNights,
			r.RevenueGross, r.Commission, r.RevenueNet,
			r.Occupancy, r.RevPARGross, r.RevPARNet,
		})
	}
	if err := writeSheet(f, "Monthly", monthlyRows); err != nil {
		return err
	}

	yearlyRows := [][]any{{
		"year", "revenue_gross", "revenue_net", "commission",
		"nights_sold", "bookings", "adr_weighted",
	}}
	for _, r := range yearly {
		yearlyRows = append(yearlyRows, []any{
			r.Year, r.RevenueGross, r.RevenueNet, r.Commission,
			r.NightsSold, r.Bookings, r.ADR,
		})
	}
	if err := writeSheet(f, "Yearly", yearlyRows); err != nil {
		return err
	}

	portalRows := [][]any{{
		"portal", "revenue_gross", "revenue_net", "commission",
		"commission_pct", "nights_sold", "bookings", "adr_weighted",
	}}
	for _, r := range portals {
		portalRows = append(portalRows, []any{
			r.Portal, r.RevenueGross, r.RevenueNet, r.Commission,
			r.CommissionPct, r.NightsSold, r.Bookings, r.ADR,
		})
	}
	if err := writeSheet(f, "Portal", portalRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrExport, path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrExport, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%w: sheet %s row %d: %v", domain.ErrExport, sheet, i+1, err)
		}
	}
	return nil
}
