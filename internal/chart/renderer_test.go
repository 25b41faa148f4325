package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() []domain.MonthlyKPI {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var rows []domain.MonthlyKPI
	for i := 0; i < 6; i++ {
		m := jan.AddDate(0, i, 0)
		rows = append(rows, domain.MonthlyKPI{
			Month:        m,
			RevenueGross: 1000 + float64(i)*120,
			Occupancy:    0.3 + float64(i)*0.05,
			RevPARGross:  30 + float64(i)*4,
		})
	}
	return rows
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()

	paths, err := NewRenderer().RenderAll(sampleSeries(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for _, metric := range []string{MetricRevenue, MetricOccupancy, MetricRevPAR} {
		path, ok := paths[metric]
		require.True(t, ok, metric)
		assert.Equal(t, dir, filepath.Dir(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), raw[:4])
	}
}

func TestRenderAll_SingleMonth(t *testing.T) {
	dir := t.TempDir()
	series := []domain.MonthlyKPI{
		{
			Month:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			RevenueGross: 1440,
			Occupancy:    12.0 / 31.0,
			RevPARGross:  1440.0 / 31.0,
		},
	}

	paths, err := NewRenderer().RenderAll(series, dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for metric, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err, metric)
		assert.Greater(t, info.Size(), int64(0), metric)
	}
}

func TestRenderAll_FlatSeries(t *testing.T) {
	dir := t.TempDir()
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var series []domain.MonthlyKPI
	for i := 0; i < 4; i++ {
		series = append(series, domain.MonthlyKPI{
			Month:        jan.AddDate(0, i, 0),
			RevenueGross: 500,
			Occupancy:    0.25,
			RevPARGross:  16.5,
		})
	}

	_, err := NewRenderer().RenderAll(series, dir)
	require.NoError(t, err)
}

func TestRenderAll_EmptySeries(t *testing.T) {
	_, err := NewRenderer().RenderAll(nil, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrRender)
}

func TestRenderAll_UnwritableDir(t *testing.T) {
	_, err := NewRenderer().RenderAll(sampleSeries(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, domain.ErrRender)
}
