package sqlseq

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"seqkit/closer"
	"seqkit/seqs"
)

//go:generate mockgen -destination=../mocks/mock_sqlseq.go -package=mocks seqkit/sqlseq Provider

// ErrNilCursor is the cause of the failure returned when a QueryFunc returns neither a
// cursor nor an error.
var ErrNilCursor = errors.New("query returned no cursor")

// Conn is the connection a query runs on, satisfied by *sql.Conn.
type Conn = closer.Connection

// Provider hands out connections. Each connection is owned by the caller, which must
// close it.
type Provider interface {
	Connect(ctx context.Context) (Conn, error)
}

type ProviderFunc func(ctx context.Context) (Conn, error)

func (f ProviderFunc) Connect(ctx context.Context) (Conn, error) {
	return f(ctx)
}

// DB returns a Provider taking dedicated connections from db.
func DB(db *sql.DB) Provider {
	return ProviderFunc(func(ctx context.Context) (Conn, error) {
		conn, err := db.Conn(ctx)
		if err != nil {
			return nil, err
		}
		return conn, nil
	})
}

// QueryFunc opens a cursor on conn.
type QueryFunc func(ctx context.Context, conn Conn) (Cursor, error)

// Text runs query with args as is.
func Text(query string, args ...any) QueryFunc {
	return func(ctx context.Context, conn Conn) (Cursor, error) {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil || rows == nil {
			return nil, err
		}
		return rows, nil
	}
}

// Select runs the query built by builder.
func Select(builder sq.Sqlizer) QueryFunc {
	return func(ctx context.Context, conn Conn) (Cursor, error) {
		query, args, err := builder.ToSql()
		if err != nil {
			return nil, err
		}
		return Text(query, args...)(ctx, conn)
	}
}

// Prepare prepares query on the connection and runs it with args. The statement is closed
// after the cursor.
func Prepare(query string, args ...any) QueryFunc {
	return func(ctx context.Context, conn Conn) (Cursor, error) {
		stmt, err := conn.PrepareContext(ctx, query)
		if err != nil {
			return nil, err
		}
		rows, err := stmt.QueryContext(ctx, args...)
		if err != nil {
			closer.Quietly(stmt)
			return nil, err
		}
		return &stmtCursor{Cursor: rows, stmt: stmt}, nil
	}
}

type stmtCursor struct {
	Cursor
	stmt closer.Statement
}

func (c *stmtCursor) Close() error {
	return errors.Join(c.Cursor.Close(), c.stmt.Close())
}

// Query acquires a connection from p, opens a cursor on it with query and returns the
// rows as a sequence. Closing the sequence releases the cursor, then the connection.
//
// Nothing stays acquired when Query fails: if the connection cannot be acquired there is
// nothing to release, if the query fails the connection is released, and if the sequence
// cannot be built the cursor and then the connection are released. These releases are
// quiet so that the returned error, always a *seqs.ResourceError, is the original cause.
func Query(ctx context.Context, p Provider, query QueryFunc, opts ...Option) (*seqs.Sequence[Cursor], error) {
	cfg := newConfig(opts)
	var chain closer.Chain

	conn, err := p.Connect(ctx)
	if err != nil {
		return nil, seqs.WrapResourceError(err)
	}
	hookedConn, err := closer.OnClose(conn, cfg.connHooks...)
	if err != nil {
		closer.Quietly(conn)
		return nil, seqs.WrapResourceError(err)
	}
	chain.Push(hookedConn)

	cursor, err := query(ctx, hookedConn)
	if err != nil {
		closer.Quietly(cursor)
		chain.ReleaseQuietly()
		return nil, seqs.WrapResourceError(err)
	}

	s, err := newSequence(&chain, cursor, cfg)
	if err != nil {
		chain.ReleaseQuietly()
		return nil, seqs.WrapResourceError(err)
	}
	return s, nil
}

// QueryScan is Query with every row mapped by mapper, as Scan does.
func QueryScan[T any](ctx context.Context, p Provider, query QueryFunc, mapper func(Cursor) (T, error), opts ...Option) (*seqs.Sequence[T], error) {
	s, err := Query(ctx, p, query, opts...)
	if err != nil {
		return nil, err
	}
	return seqs.TryMap(s, wrapMapper(mapper)), nil
}

func newSequence(chain *closer.Chain, cursor Cursor, cfg *config) (*seqs.Sequence[Cursor], error) {
	if cursor == nil {
		return nil, seqs.NewResourceError(ErrNilCursor.Error(), ErrNilCursor)
	}
	hooked, err := closer.OnClose(cursor, cfg.cursorHooks...)
	if err != nil {
		chain.Push(cursor)
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
