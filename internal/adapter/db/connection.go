package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"tasktracker/internal/config"
)

const defaultParams = "parseTime=true&multiStatements=true"

// ConnectDB opens the MySQL backend and makes sure the kv_entries table exists.
func ConnectDB(ctx context.Context, conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "mysql", DSN(conf.DbUser, conf.DbPassword, conf.DbHost, conf.DbPort, conf.DbName, conf.DbParams))
	if err != nil {
		return nil, fmt.Errorf("connect to mysql at %s:%s: %w", conf.DbHost, conf.DbPort, err)
	}

	// One process, one writer: a small pool is plenty.
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// DSN builds a go-sql-driver DSN. An empty database selects none.
func DSN(user, password, host, port, database, params string) string {
	if params == "" {
		params = defaultParams
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}
