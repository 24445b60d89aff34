package closer

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"seqkit/seqs"
)

// ErrNotCloseable is returned by OnClose when target has no close operation the
// requested type can be wrapped around.
var ErrNotCloseable = errors.New("no recognized close operation")

// UnexpectedHookError reports a close hook that failed with an error outside of the
// native failures of database resources. It is kept apart so callers can still single
// out the expected teardown failures.
type UnexpectedHookError struct {
	Family Family
	Err    error
}

func (err *UnexpectedHookError) Error() string {
	return fmt.Sprintf("unexpected error from %s close hook: %s", err.Family, err.Err)
}

func (err *UnexpectedHookError) Unwrap() error {
	return err.Err
}

// MarshalZerologObject implements zerolog object marshalling.
func (err *UnexpectedHookError) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("family", err.Family).Err(err.Err)
}

type nativeError struct {
	error
}

func (err nativeError) Unwrap() error {
	return err.error
}

// Native marks err as a native failure of the resource, so a close hook returning it has
// it propagated unchanged.
func Native(err error) error {
	if err == nil {
		return nil
	}
	return nativeError{err}
}

// IsNative reports whether err belongs to the native failures of database resources:
// errors marked with Native, driver errors of database/sql, pgx and the MySQL driver, and
// failures already wrapped into a *seqs.ResourceError.
func IsNative(err error) bool {
	var (
		marked     nativeError
		pgErr      *pgconn.PgError
		connErr    *pgconn.ConnectError
		mysqlErr   *mysql.MySQLError
		wrapped    *seqs.ResourceError
		unexpected *UnexpectedHookError
	)
	switch {
	case err == nil:
		return false
	case errors.As(err, &unexpected):
		return false
	case errors.As(err, &marked),
		errors.As(err, &pgErr),
		errors.As(err, &connErr),
		errors.As(err, &mysqlErr),
		errors.As(err, &wrapped):
		return true
	}

	for _, target := range nativeSentinels {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var nativeSentinels = []error{
	driver.ErrBadConn,
	driver.ErrSkip,
	sql.ErrConnDone,
	sql.ErrTxDone,
	sql.ErrNoRows,
	mysql.ErrInvalidConn,
	mysql.ErrMalformPkt,
	pgx.ErrNoRows,
	pgx.ErrTxClosed,
}

// classify returns a native hook failure unchanged and wraps any other one.
func classify(family Family, err error) error {
	if !IsNative(err) {
		var unexpected *UnexpectedHookError
		if errors.As(err, &unexpected) {
			return err
		}
		return &UnexpectedHookError{Family: family, Err: err}
	}
	if marked, ok := err.(nativeError); ok {
		return marked.error
	}
	return err
}
