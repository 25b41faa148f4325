// Package pipeline sequences one report run: load, derive, cross-check,
// export, render, assemble. Strictly linear; the first failure aborts the
// rest so a run never leaves a partially assembled report behind.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/filipgodzsak/abies-report/internal/chart"
	"github.com/filipgodzsak/abies-report/internal/config"
	"github.com/filipgodzsak/abies-report/internal/export"
	"github.com/filipgodzsak/abies-report/internal/kpi"
	"github.com/filipgodzsak/abies-report/internal/pdf"
	"github.com/filipgodzsak/abies-report/internal/report/domain"
)

// Artifact filenames within the output directory.
const (
	MonthlyCSV  = "monthly_kpi.csv"
	YearlyCSV   = "yearly_kpi.csv"
	PortalCSV   = "portal_kpi.csv"
	WorkbookXLS = "abies_report.xlsx"
	ReportPDF   = "abies_report.pdf"
)

type Params struct {
	fx.In

	Config    config.Config
	DB        *gorm.DB
	Repo      domain.Repository
	Charts    *chart.Renderer
	Assembler *pdf.Assembler
	Logger    *zap.Logger
}

type Runner struct {
	cfg       config.Config
	db        *gorm.DB
	repo      domain.Repository
	charts    *chart.Renderer
	assembler *pdf.Assembler
	logger    *zap.Logger

	now func() time.Time
}

func New(p Params) *Runner {
	return &Runner{
		cfg:       p.Config,
		db:        p.DB,
		repo:      p.Repo,
		charts:    p.Charts,
		assembler: p.Assembler,
		logger:    p.Logger,
		now:       time.Now,
	}
}

// Run executes the whole pipeline once and returns the first error hit.
func (r *Runner) Run(ctx context.Context) error {
	period := r.cfg.Period()

	viewRows, err := r.repo.MonthlyKPIView(ctx, r.db, period)
	if err != nil {
		return fmt.Errorf("load monthly kpi view: %w", err)
	}
	bookings, err := r.repo.Bookings(ctx, r.db, period)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}
	r.logger.Info("loaded source data",
		zap.Int("view_rows", len(viewRows)),
		zap.Int("bookings", len(bookings)),
	)

	monthly, err := kpi.ComputeMonthly(bookings, r.cfg.RoomCount, period)
	if err != nil {
		return fmt.Errorf("compute monthly kpi: %w", err)
	}
	if err := kpi.CrossCheck(monthly, viewRows, r.cfg.KPITolerance); err != nil {
		return fmt.Errorf("cross-check against %s: %w", r.cfg.ViewMonthlyKPI, err)
	}

	yearly := kpi.ComputeYearly(monthly, bookings)
	portals := kpi.ComputePortal(bookings)
	summary := kpi.Summarize(monthly, portals, bookings)
	insights := kpi.DeriveInsights(monthly, portals)
	r.logger.Info("derived kpi series",
		zap.Int("months", len(monthly)),
		zap.Int("years", len(yearly)),
		zap.Int("portals", len(portals)),
	)

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("%w: output dir %s: %v", domain.ErrExport, r.cfg.OutputDir, err)
	}

	if err := export.WriteMonthlyCSV(filepath.Join(r.cfg.OutputDir, MonthlyCSV), monthly); err != nil {
		return err
	}
	if err := export.WriteYearlyCSV(filepath.Join(r.cfg.OutputDir, YearlyCSV), yearly); err != nil {
		return err
	}
	if err := export.WritePortalCSV(filepath.Join(r.cfg.OutputDir, PortalCSV), portals); err != nil {
		return err
	}
	if err := export.WriteWorkbook(filepath.Join(r.cfg.OutputDir, WorkbookXLS), monthly, yearly, portals); err != nil {
		return err
	}

	chartPaths, err := r.charts.RenderAll(monthly, r.cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	r.logger.Info("rendered charts", zap.Int("count", len(chartPaths)))

	pdfPath := filepath.Join(r.cfg.OutputDir, ReportPDF)
	err = r.assembler.Build(pdf.ReportData{
		GeneratedAt: r.now(),
		Period:      period,
		LogoPath:    r.cfg.LogoPath,
		Monthly:     monthly,
		Yearly:      yearly,
		Portals:     portals,
		Summary:     summary,
		Insights:    insights,
		Charts:      chartPaths,
	}, pdfPath)
	if err != nil {
		return fmt.Errorf("assemble report: %w", err)
	}

	r.logger.Info("report complete", zap.String("pdf", pdfPath))
	return nil
}
