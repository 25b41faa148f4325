// Package chart renders the monthly KPI series as PNG line charts for the
// report. One file per metric, deterministic names, month on the x-axis.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
	chart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/fx"
)

// Module provides the chart renderer.
var Module = fx.Provide(NewRenderer)

// Metric keys used for chart filenames and for referencing charts during
// report assembly.
const (
	MetricRevenue   = "revenue"
	MetricOccupancy = "occupancy"
	MetricRevPAR    = "revpar"
)

var filenames = map[string]string{
	MetricRevenue:   "chart_monthly_revenue.png",
	MetricOccupancy: "chart_occupancy.png",
	MetricRevPAR:    "chart_revpar.png",
}

type Renderer struct {
	width  int
	height int
}

func NewRenderer() *Renderer {
	return &Renderer{width: 1280, height: 512}
}

// RenderAll writes the three trend charts into outDir and returns the written
// path per metric. Occupancy is plotted in percent, money metrics in euro.
func (r *Renderer) RenderAll(series []domain.MonthlyKPI, outDir string) (map[string]string, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: empty monthly series", domain.ErrRender)
	}

	months := make([]time.Time, len(series))
	revenue := make([]float64, len(series))
	occupancy := make([]float64, len(series))
	revpar := make([]float64, len(series))
	for i, row := range series {
		months[i] = row.Month
		revenue[i] = row.RevenueGross
		occupancy[i] = 100.0 * row.Occupancy
		revpar[i] = row.RevPARGross
	}

	paths := make(map[string]string, 3)
	for metric, def := range map[string]struct {
		title  string
		values []float64
	}{
		MetricRevenue:   {"Mesačné tržby (gross)", revenue},
		MetricOccupancy: {"Obsadenosť % (mesačne)", occupancy},
		MetricRevPAR:    {"RevPAR (gross) (mesačne)", revpar},
	} {
		path := filepath.Join(outDir, filenames[metric])
		if err := r.render(def.title, months, def.values, path); err != nil {
			return nil, err
		}
		paths[metric] = path
	}
	return paths, nil
}

func (r *Renderer) render(title string, months []time.Time, values []float64, path string) error {
	// go-chart refuses a zero-delta axis range, which a legitimate series can
	// produce: a one-month window, or a flat metric. A single month plots as a
	// flat line across that month; a flat line gets an explicit y-range.
	if len(months) == 1 {
		months = append(months, months[0].AddDate(0, 1, -1))
		values = append(values, values[0])
	}

	yAxis := chart.YAxis{}
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if minV == maxV {
		yAxis.Range = &chart.ContinuousRange{Min: minV - 1, Max: maxV + 1}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    title,
				XValues: months,
				YValues: values,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrRender, path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("%w: render %s: %v", domain.ErrRender, path, err)
	}
	return nil
}
