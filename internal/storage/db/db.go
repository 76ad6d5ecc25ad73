package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DanRulev/vocabdrill/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	if driver == config.DriverSQLite {
		// single writer
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return db, nil
}

func dataSource(cfg config.DBConfig) (string, string, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		dsn := fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
		return config.DriverPostgres, dsn, nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Path); dir != "." && cfg.Path != ":memory:" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", "", fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		return config.DriverSQLite, cfg.Path + "?_foreign_keys=on", nil
	default:
		return "", "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
