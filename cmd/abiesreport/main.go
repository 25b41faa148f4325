package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/filipgodzsak/abies-report/internal/chart"
	"github.com/filipgodzsak/abies-report/internal/config"
	"github.com/filipgodzsak/abies-report/internal/pdf"
	"github.com/filipgodzsak/abies-report/internal/pipeline"
	"github.com/filipgodzsak/abies-report/pkg/db"
	"github.com/filipgodzsak/abies-report/pkg/log"
)

func main() {
	var (
		runner *pipeline.Runner
		logger *zap.Logger
	)

	app := fx.New(
		// Core Infrastructure
		config.Module,
		log.Module,
		db.Module,

		// Report pipeline
		chart.Module,
		pdf.Module,
		pipeline.Module,

		fx.NopLogger,
		fx.Populate(&runner, &logger),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "abies-report: %v\n", err)
		os.Exit(1)
	}

	runErr := runner.Run(ctx)
	if runErr != nil {
		logger.Error("report generation failed", zap.Error(runErr))
	}

	if err := app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "abies-report: shutdown: %v\n", err)
		os.Exit(1)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
