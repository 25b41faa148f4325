package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/filipgodzsak/abies-report/internal/report/domain"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides the environment-backed configuration.
var Module = fx.Provide(Load)

// Config holds application configuration. Credentials and period bounds come
// from the environment (or a local .env); nothing here is mutated after Load.
type Config struct {
	AppName string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ViewMonthlyKPI  string
	ViewBookingsAll string

	FilterStart   time.Time
	FilterEndExcl time.Time

	OutputDir string
	LogoPath  string

	RoomCount    int
	KPITolerance float64
}

func Load() (Config, error) {
	// .env is a local convenience; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	roomCount, err := getenvInt("REPORT_ROOM_COUNT", 1)
	if err != nil {
		return Config{}, err
	}
	tolerance, err := getenvFloat("KPI_TOLERANCE", 1e-6)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppName:         getenv("APP_NAME", "abies-report"),
		DBHost:          getenv("PG_HOST", "localhost"),
		DBPort:          getenv("PG_PORT", "5432"),
		DBName:          os.Getenv("PG_DATABASE"),
		DBUser:          os.Getenv("PG_USER"),
		DBPassword:      os.Getenv("PG_PASSWORD"),
		DBSSLMode:       getenv("PG_SSLMODE", "disable"),
		ViewMonthlyKPI:  getenv("VIEW_MONTHLY_KPI", "rpt_monthly_kpi"),
		ViewBookingsAll: getenv("VIEW_BOOKINGS_ALL", "abies_bookings_all"),
		OutputDir:       getenv("REPORT_OUTPUT_DIR", "report_outputs"),
		LogoPath:        getenv("ABIES_LOGO_PATH", "assets/abies_logo.jpg"),
		RoomCount:       roomCount,
		KPITolerance:    tolerance,
	}

	for name, v := range map[string]string{
		"PG_USER":     cfg.DBUser,
		"PG_PASSWORD": cfg.DBPassword,
		"PG_DATABASE": cfg.DBName,
	} {
		if strings.TrimSpace(v) == "" {
			return Config{}, fmt.Errorf("missing required configuration %s", name)
		}
	}

	if cfg.FilterStart, err = parseDate(getenv("FILTER_START", "2021-01-01")); err != nil {
		return Config{}, fmt.Errorf("FILTER_START: %w", err)
	}
	if cfg.FilterEndExcl, err = parseDate(getenv("FILTER_END_EXCL", "2026-01-01")); err != nil {
		return Config{}, fmt.Errorf("FILTER_END_EXCL: %w", err)
	}
	if !cfg.Period().Valid() {
		return Config{}, fmt.Errorf("%w: FILTER_START %s must precede FILTER_END_EXCL %s",
			domain.ErrInvalidPeriod,
			cfg.FilterStart.Format("2006-01-02"),
			cfg.FilterEndExcl.Format("2006-01-02"))
	}

	return cfg, nil
}

// Period returns the half-open reporting window [FilterStart, FilterEndExcl).
func (c Config) Period() domain.Period {
	return domain.Period{Start: c.FilterStart, End: c.FilterEndExcl}
}

func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), time.UTC)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return parsed, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return parsed, nil
}
