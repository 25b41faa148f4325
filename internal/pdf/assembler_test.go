package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filipgodzsak/abies-report/internal/chart"
	"github.com/filipgodzsak/abies-report/internal/report/domain"
)

func sampleData(t *testing.T, dir string) ReportData {
	t.Helper()

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	monthly := []domain.MonthlyKPI{
		{Month: jan, AvailableNights: 31, OccupiedNights: 12, RevenueGross: 1440, RevenueNet: 1224, Occupancy: 12.0 / 31.0, RevPARGross: 1440.0 / 31.0},
		{Month: jan.AddDate(0, 1, 0), AvailableNights: 29, OccupiedNights: 8, RevenueGross: 960, RevenueNet: 816, Occupancy: 8.0 / 29.0, RevPARGross: 960.0 / 29.0},
	}

	charts, err := chart.NewRenderer().RenderAll(monthly, dir)
	require.NoError(t, err)

	return ReportData{
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Period:      domain.Period{Start: jan, End: jan.AddDate(1, 0, 0)},
		LogoPath:    filepath.Join(dir, "no_logo.jpg"),
		Monthly:     monthly,
		Yearly: []domain.YearlyKPI{
			{Year: 2024, RevenueGross: 2400, RevenueNet: 2040, Commission: 360, NightsSold: 20, Bookings: 9, ADR: 120},
		},
		Portals: []domain.PortalKPI{
			{Portal: "booking.com", RevenueGross: 1500, RevenueNet: 1275, Commission: 225, CommissionPct: 15, NightsSold: 12, Bookings: 5, ADR: 125},
			{Portal: "direct", RevenueGross: 900, RevenueNet: 900, NightsSold: 8, Bookings: 4, ADR: 112.5},
		},
		Summary: domain.Summary{
			RevenueGross: 2400, RevenueNet: 2040, Commission: 360,
			NightsSold: 20, Bookings: 9, ADR: 120,
			AvgOccupancy: 0.33, AvgRevPAR: 39.8, TopPortal: "booking.com",
		},
		Insights: domain.Insights{
			BestMonth: jan, BestRevPAR: 1440.0 / 31.0,
			PriciestPortal: "booking.com", PriciestCommission: 15,
		},
		Charts: charts,
	}
}

func TestBuild_WritesReport(t *testing.T) {
	dir := t.TempDir()
	data := sampleData(t, dir)

	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, NewAssembler().Build(data, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, []byte("%PDF"), raw[:4])
}

func TestBuild_MissingChartEntry(t *testing.T) {
	dir := t.TempDir()
	data := sampleData(t, dir)
	delete(data.Charts, chart.MetricRevPAR)

	err := NewAssembler().Build(data, filepath.Join(dir, "report.pdf"))
	assert.ErrorIs(t, err, domain.ErrMissingChart)
}

func TestBuild_ChartFileRemoved(t *testing.T) {
	dir := t.TempDir()
	data := sampleData(t, dir)
	require.NoError(t, os.Remove(data.Charts[chart.MetricOccupancy]))

	err := NewAssembler().Build(data, filepath.Join(dir, "report.pdf"))
	assert.ErrorIs(t, err, domain.ErrMissingChart)
}
