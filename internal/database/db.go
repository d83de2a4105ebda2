package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tires and orders tables when they do not exist
// yet, so a fresh database is usable without separate tooling.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tires (
			id         BIGINT PRIMARY KEY,
			brand      VARCHAR(100) NOT NULL,
			size       VARCHAR(50)  NOT NULL,
			quantity   INT          NOT NULL DEFAULT 0,
			price      DOUBLE       NOT NULL,
			notes      TEXT,
			created_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id             BIGINT PRIMARY KEY,
			placed_at      DATETIME     NOT NULL,
			customer_name  VARCHAR(200) NOT NULL,
			customer_email VARCHAR(200) NOT NULL,
			customer_phone VARCHAR(50)  NOT NULL,
			order_type     VARCHAR(50)  NOT NULL,
			items          JSON         NOT NULL,
			address        JSON,
			total          DOUBLE       NOT NULL,
			notes          TEXT,
			status         VARCHAR(50)  NOT NULL DEFAULT 'pending',
			created_at     DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at     DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
