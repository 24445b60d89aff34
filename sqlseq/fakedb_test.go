package sqlseq_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
)

// table is what the fake driver answers to one query text.
type table struct {
	columns []string
	rows    [][]driver.Value
	// err is reported by the cursor after rows were read.
	err error
}

type fakeConnector struct {
	tables map[string]table
	stmts  atomic.Int32
}

// newFakeDB returns a database answering the queries of tables, and the connector
// tracking the statements left open.
func newFakeDB(tables map[string]table) (*sql.DB, *fakeConnector) {
	c := &fakeConnector{tables: tables}
	return sql.OpenDB(c), c
}

func openFakeDB(t testing.TB, tables map[string]table) (*sql.DB, *fakeConnector) {
	db, c := newFakeDB(tables)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, c
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{connector: c}, nil
}

func (c *fakeConnector) Driver() driver.Driver {
	return fakeDriver{c}
}

type fakeDriver struct {
	connector *fakeConnector
}

func (d fakeDriver) Open(string) (driver.Conn, error) {
	return d.connector.Connect(context.Background())
}

type fakeConn struct {
	connector *fakeConnector
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	if _, ok := c.connector.tables[query]; !ok {
		return nil, fmt.Errorf("unknown query %q", query)
	}
	c.connector.stmts.Add(1)
	return &fakeStmt{conn: c, query: query}, nil
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions are not supported")
}

type fakeStmt struct {
	conn   *fakeConn
	query  string
	closed bool
}

func (s *fakeStmt) Close() error {
	if !s.closed {
		s.closed = true
		s.conn.connector.stmts.Add(-1)
	}
	return nil
}

func (s *fakeStmt) NumInput() int {
	return -1
}

func (s *fakeStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("exec is not supported")
}

func (s *fakeStmt) Query([]driver.Value) (driver.Rows, error) {
	return &fakeRows{table: s.conn.connector.tables[s.query]}, nil
}

type fakeRows struct {
	table table
	pos   int
}

func (r *fakeRows) Columns() []string {
	return r.table.columns
}

func (r *fakeRows) Close() error {
	return nil
}

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.table.rows) {
		if r.table.err != nil {
			return r.table.err
		}
		return io.EOF
	}
	copy(dest, r.table.rows[r.pos])
	r.pos++
	return nil
}
