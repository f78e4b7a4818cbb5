package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	_ "modernc.org/sqlite"
)

var (
	ErrNotFound = errors.New("not found in database")
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		name TEXT PRIMARY KEY,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
}

// NewConnection opens the embedded store and creates the schema. The default
// DSN is ":memory:", so all data lives and dies with the process. A single
// connection keeps the in-memory database shared and writes serialized.
func NewConnection(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("unable to create schema: %w", err)
		}
	}
	return conn, nil
}

// Seed loads the fixed boot data: three known users and three sample
// comments. Comment ids are set explicitly so the next assigned id is 4.
func Seed(ctx context.Context, conn *sql.DB) error {
	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	users := builder.
		Insert("users").
		Columns("name", "password").
		Values("steve", "steve123").
		Values("john", "john123").
		Values("brandon", "brandon123")
	query, args, err := users.ToSql()
	if err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unable to seed users: %w", err)
	}

	comments := builder.
		Insert("comments").
		Columns("id", "author", "text", "created_at").
		Values(1, "steve", "This is a sample comment from Steve!", time.Date(2025, time.November, 6, 10, 30, 0, 0, time.Local)).
		Values(2, "john", "Awesome.", time.Date(2025, time.November, 6, 14, 15, 0, 0, time.Local)).
		Values(3, "brandon", "Hello Troy!", time.Date(2025, time.November, 7, 9, 45, 0, 0, time.Local))
	query, args, err = comments.ToSql()
	if err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unable to seed comments: %w", err)
	}
	return nil
}
