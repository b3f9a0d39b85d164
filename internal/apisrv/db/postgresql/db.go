// Package postgresql implements the store against PostgreSQL using the pgx
// stdlib driver. Every tenant-scoped query carries an explicit tenant_id
// predicate; the only lookups without one are the by-id reads feeding the
// isolation guard, which compares ownership in code.
package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

// SQLSTATE codes treated as transient: query_canceled fires on
// statement_timeout, lock_not_available on lock_timeout.
const (
	sqlstateQueryCanceled    = "57014"
	sqlstateLockNotAvailable = "55P03"
)

type Store struct {
	db *sql.DB
}

func New(ctx context.Context, dsn string) (*Store, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to open db")
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to ping db")
		return nil, err
	}
	// Bound statement and lock waits so a stuck query surfaces as a transient
	// error instead of holding the request open.
	for _, stmt := range []string{
		"SET statement_timeout = '5s'",
		"SET lock_timeout = '5s'",
	} {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to set session timeout")
			return nil, err
		}
	}
	return &Store{db: sqlDB}, nil
}

func (s *Store) Ping(ctx context.Context) apperrors.Error {
	if err := s.db.PingContext(ctx); err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (s *Store) Close() {
	s.db.Close()
}

// classify maps driver errors onto the dberror sentinels.
func classify(ctx context.Context, err error) apperrors.Error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return dberror.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateQueryCanceled, sqlstateLockNotAvailable:
			log.Ctx(ctx).Warn().Str("sqlstate", pgErr.Code).Msg("transient db error")
			return dberror.ErrTransient.Err(err)
		}
	}
	log.Ctx(ctx).Error().Err(err).Msg("db error")
	return dberror.ErrDatabase.Err(err)
}
