package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	StoreDB   *pgxpool.Pool
	StoreGorm *gorm.DB
)

// InitDB opens the pgx pool and the GORM handle on the storefront database.
func InitDB() error {
	dsn := storeURL()
	if err := initPgx(dsn); err != nil {
		return err
	}
	return initGORM(dsn)
}

func storeURL() string {
	if url := os.Getenv("STORE_DB_URL"); url != "" {
		return url
	}
	Log.Warn("STORE_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "modeva_storefront"),
	)
}

func initPgx(dsn string) error {
	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect storefront database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("ping storefront database: %w", err)
	}
	StoreDB = pool
	Log.Info("storefront database connected", zap.String("driver", "pgx"))
	return nil
}

func initGORM(dsn string) error {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("open storefront database with gorm: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	StoreGorm = db
	Log.Info("storefront database connected", zap.String("driver", "gorm"))
	return nil
}

func CloseDB() {
	if StoreDB != nil {
		StoreDB.Close()
		Log.Info("storefront database connection closed", zap.String("driver", "pgx"))
	}
	if StoreGorm != nil {
		if sqlDB, _ := StoreGorm.DB(); sqlDB != nil {
			sqlDB.Close()
			Log.Info("storefront database connection closed", zap.String("driver", "gorm"))
		}
	}
}

// WithTimeout returns a context with a 10s timeout (cold starts on hosted Postgres)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
