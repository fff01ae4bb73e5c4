package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// MigrateFS applies SQL migrations embedded in the given filesystem,
// tracking versions in a per-module table so every bounded-context module
// can own its schema independently of the others.
//
// The pgx pool is bridged to database/sql since goose expects the
// standard library interface; the wrapper shares the underlying
// connections.
func MigrateFS(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, dir, versionTable string, log logger) error {
	if versionTable == "" {
		return errors.Join(ErrFailedToApplyMigrations, errors.New("version table name required"))
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close migration db handle", "error", err)
		}
	}(db)

	// goose keeps global state for dialect, base FS, table name and
	// logging; migrations already run strictly sequentially during the
	// single-threaded composition phase, so this is safe.
	goose.SetLogger(newSlogAdapter(ctx, log))
	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetTableName(versionTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	return nil
}

// logger is the minimal structured-logging surface migrations need.
// Compatible with slog.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// slogAdapter bridges goose's Printf-style logging to structured logging.
type slogAdapter struct {
	ctx context.Context
	log logger
}

func newSlogAdapter(ctx context.Context, log logger) *slogAdapter {
	return &slogAdapter{ctx: ctx, log: log}
}

func (a *slogAdapter) Printf(format string, v ...any) {
	a.log.InfoContext(a.ctx, fmt.Sprintf(format, v...))
}

func (a *slogAdapter) Fatalf(format string, v ...any) {
	a.log.ErrorContext(a.ctx, fmt.Sprintf(format, v...))
}
