package db

import (
	"fmt"

	"github.com/filipgodzsak/abies-report/internal/config"
	"github.com/filipgodzsak/abies-report/internal/report/domain"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Module provides the gorm connection used by the pipeline.
var Module = fx.Provide(Open)

// Open dials PostgreSQL with the injected configuration. The pipeline only
// ever reads, so the session is kept plain: no prepared-statement cache, no
// gorm query logging.
func Open(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s@%s:%s/%s: %v",
			domain.ErrConnection, cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName, err)
	}
	return gdb, nil
}
