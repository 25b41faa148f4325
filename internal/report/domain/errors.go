package domain

import "errors"

var (
	ErrConnection     = errors.New("database_unreachable")
	ErrQuery          = errors.New("query_failed")
	ErrInvalidPeriod  = errors.New("invalid_period")
	ErrZeroInventory  = errors.New("zero_inventory")
	ErrOccupancyRange = errors.New("occupancy_out_of_range")
	ErrEmptySeries    = errors.New("empty_series")
	ErrKPIMismatch    = errors.New("kpi_mismatch")
	ErrRender         = errors.New("chart_render_failed")
	ErrMissingChart   = errors.New("missing_chart")
	ErrAssembly       = errors.New("report_assembly_failed")
	ErrExport         = errors.New("export_failed")
)
