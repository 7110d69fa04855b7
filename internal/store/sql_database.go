// Package store implements the relational persistence layer of the gallery
// API. Repositories are thin query wrappers; all domain rules live in the
// service layer.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/Alianda23/art-exhibit-hub-72/internal/config"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the raw connection pool together with the placeholder-aware
// statement builder matching the configured driver.
type DB struct {
	*sql.DB

	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewConnect opens a connection to the configured database (PostgreSQL via
// pgx, or an embedded SQLite file), verifies it with a ping, and returns a
// DB ready for repository use.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("driver", cfg.Driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if cfg.Driver == "pgx" {
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("driver", cfg.Driver).Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		builder: builder,
		logger:  log,
	}, nil
}

// isUniqueViolation reports whether err is a unique-constraint failure for
// either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
