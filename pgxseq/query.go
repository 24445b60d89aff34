package pgxseq

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"seqkit/closer"
	"seqkit/seqs"
)

//go:generate mockgen -destination=../mocks/mock_pgxseq.go -package=mocks seqkit/pgxseq Pool
//go:generate mockgen -destination=../mocks/mock_pgx.go -package=mocks github.com/jackc/pgx/v5 Rows

// ErrNilRows is the cause of the failure returned when a QueryFunc returns neither rows
// nor an error.
var ErrNilRows = errors.New("query returned no rows")

// Conn is a connection borrowed from a pool, satisfied by *pgxpool.Conn.
type Conn = closer.PooledConnection

// Pool lends connections. Every connection must be released by the caller.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
}

type PoolFunc func(ctx context.Context) (Conn, error)

func (f PoolFunc) Acquire(ctx context.Context) (Conn, error) {
	return f(ctx)
}

// FromPool returns a Pool borrowing connections from p.
func FromPool(p *pgxpool.Pool) Pool {
	return PoolFunc(func(ctx context.Context) (Conn, error) {
		conn, err := p.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return conn, nil
	})
}

// QueryFunc opens rows on conn.
type QueryFunc func(ctx context.Context, conn Conn) (pgx.Rows, error)

// Text runs query with args as is.
func Text(query string, args ...any) QueryFunc {
	return func(ctx context.Context, conn Conn) (pgx.Rows, error) {
		return conn.Query(ctx, query, args...)
	}
}

// Select runs the query built by builder. Question mark placeholders are rewritten to the
// numbered form postgres expects, so builders need not set sq.Dollar themselves.
func Select(builder sq.Sqlizer) QueryFunc {
	return func(ctx context.Context, conn Conn) (pgx.Rows, error) {
		query, args, err := builder.ToSql()
		if err != nil {
			return nil, err
		}
		query, err = sq.Dollar.ReplacePlaceholders(query)
		if err != nil {
			return nil, err
		}
		return conn.Query(ctx, query, args...)
	}
}

// Query borrows a connection from p, runs query on it and returns the rows as a
// sequence. Closing the sequence closes the rows, then releases the connection.
//
// When Query fails nothing stays borrowed: the rows, if any, are closed and the
// connection, if any, is released before the error is returned. The error is always a
// *seqs.ResourceError carrying the original cause.
func Query(ctx context.Context, p Pool, query QueryFunc, opts ...Option) (*seqs.Sequence[pgx.Rows], error) {
	cfg := newConfig(opts)
	var chain closer.Chain

	conn, err := p.Acquire(ctx)
	if err != nil {
		return nil, seqs.WrapResourceError(err)
	}
	hookedConn, err := closer.OnClose(conn, cfg.connHooks...)
	if err != nil {
		closer.Quietly(conn)
		return nil, seqs.WrapResourceError(err)
	}
	chain.Push(hookedConn)

	r, err := query(ctx, hookedConn)
	if err != nil {
		closer.Quietly(r)
		chain.ReleaseQuietly()
		return nil, seqs.WrapResourceError(err)
	}

	s, err := newSequence(&chain, r, cfg)
	if err != nil {
		chain.ReleaseQuietly()
		return nil, seqs.WrapResourceError(err)
	}
	return s, nil
}

// QueryScan is Query with every row decoded by fn, as Scan does.
func QueryScan[T any](ctx context.Context, p Pool, query QueryFunc, fn pgx.RowToFunc[T], opts ...Option) (*seqs.Sequence[T], error) {
	s, err := Query(ctx, p, query, opts...)
	if err != nil {
		return nil, err
	}
	return seqs.TryMap(s, decoder(fn)), nil
}

func newSequence(chain *closer.Chain, r pgx.Rows, cfg *config) (*seqs.Sequence[pgx.Rows], error) {
	if r == nil {
		return nil, seqs.NewResourceError(ErrNilRows.Error(), ErrNilRows)
	}
	hooked, err := closer.OnClose(r, cfg.rowsHooks...)
	if err != nil {
		chain.Push(r)
		return nil, err
	}
	chain.Push(hooked)

	s := rows(hooked)
	for _, hook := range cfg.closeHooks {
		if hook != nil {
			s.OnClose(hook)
		}
	}
	return s.OnClose(chain.Close), nil
}
