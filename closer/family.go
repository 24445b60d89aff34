package closer

import (
	"context"
	"database/sql"
	"io"

	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -destination=../mocks/mock_closer.go -package=mocks seqkit/closer Cursor,Statement,Connection,PooledConnection

// Family tags the kind of resource a value is, which decides what its close-shaped
// operation is and what a close hook wrapper has to forward.
type Family int

const (
	FamilyNone Family = iota
	FamilyCursor
	FamilyStatement
	FamilyConnection
	FamilyCloser
)

func (f Family) String() string {
	switch f {
	case FamilyCursor:
		return "cursor"
	case FamilyStatement:
		return "statement"
	case FamilyConnection:
		return "connection"
	case FamilyCloser:
		return "closer"
	default:
		return "none"
	}
}

// Cursor is a row cursor in the shape of *sql.Rows.
type Cursor interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Statement is a prepared statement in the shape of *sql.Stmt.
type Statement interface {
	ExecContext(ctx context.Context, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, args ...any) *sql.Row
	Close() error
}

// Connection is a single database connection in the shape of *sql.Conn.
type Connection interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	Close() error
}

// PooledConnection is a connection borrowed from a pool in the shape of *pgxpool.Conn.
// Release is its close-shaped operation.
type PooledConnection interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Release()
}

// FamilyOf reports the family of v. When v belongs to more than one family the most
// specific one wins: cursors, statements and connections before plain closers.
func FamilyOf(v any) Family {
	switch v.(type) {
	case nil:
		return FamilyNone
	case pgx.Rows, Cursor:
		return FamilyCursor
	case Statement:
		return FamilyStatement
	case Connection, PooledConnection:
		return FamilyConnection
	case io.Closer:
		return FamilyCloser
	default:
		return FamilyNone
	}
}
