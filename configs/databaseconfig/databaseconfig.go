package databaseconfig

import (
	"fmt"
	"time"

	"github.com/vitoraqdev/SalesOrderManagement/configs/envconfig"
	"github.com/vitoraqdev/SalesOrderManagement/configs/logconfig"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config captures the connection parameters for the Postgres instance.
// DATABASE_URL wins over the discrete fields when set.
type Config struct {
	URL      string
	User     string
	Password string
	Host     string
	Port     string
	Database string
	SSLMode  string
}

// FromEnv populates a Config with defaults that can be overridden via
// environment variables.
func FromEnv() Config {
	return Config{
		URL:      envconfig.String("DATABASE_URL", ""),
		User:     envconfig.String("DB_USER", "postgres"),
		Password: envconfig.String("DB_PASSWORD", "postgres"),
		Host:     envconfig.String("DB_HOST", "127.0.0.1"),
		Port:     envconfig.String("DB_PORT", "5432"),
		Database: envconfig.String("DB_NAME", "sales_order_management"),
		SSLMode:  envconfig.String("DB_SSLMODE", "disable"),
	}
}

func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// Connect opens a gorm DB using the provided configuration and sane pool
// limits. Callers own the returned handle; there is no package-global DB.
func Connect(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logconfig.Log.Warn("Could not acquire sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logconfig.Log.Warn("Database close failed", zap.Error(err))
	}
}
