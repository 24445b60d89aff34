package closer

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/jackc/pgx/v5"

	"seqkit/internal/logging"
)

// Hook is a callback run when a resource is closed.
type Hook func() error

// OnClose returns target wrapped so that hooks run, once and in order, the first time its
// close-shaped operation is invoked. The real close still runs afterwards, even if a hook
// failed, and its failure is reported too.
//
// The wrapper forwards every other method to target. The close-shaped operation depends on
// the family of target: Close for cursors, statements, connections and plain closers,
// Release for pooled connections. T should be the interface the caller holds target as;
// if no wrapper for target's family implements T, target is returned with ErrNotCloseable.
//
// Without hooks (or with only nil ones) target itself is returned.
//
// Hook failures are classified: native failures (see IsNative) are returned as they are,
// anything else is returned as an *UnexpectedHookError. Families whose close operation has
// no error result (pgx.Rows, PooledConnection) can only log hook failures.
func OnClose[T any](target T, hooks ...Hook) (T, error) {
	fns := slices.DeleteFunc(slices.Clone(hooks), func(h Hook) bool { return h == nil })
	if len(fns) == 0 {
		return target, nil
	}

	v := any(target)
	for _, wrap := range wrappers {
		w, ok := wrap(v, fns)
		if !ok {
			continue
		}
		if t, ok := w.(T); ok {
			return t, nil
		}
	}
	return target, fmt.Errorf("%w: %T", ErrNotCloseable, v)
}

// wrappers are tried in the order FamilyOf resolves families.
var wrappers = []func(v any, fns []Hook) (any, bool){
	func(v any, fns []Hook) (any, bool) {
		if r, ok := v.(pgx.Rows); ok {
			return &hookedRows{Rows: r, hooks: newHooks(FamilyCursor, fns)}, true
		}
		return nil, false
	},
	func(v any, fns []Hook) (any, bool) {
		if c, ok := v.(Cursor); ok {
			return &hookedCursor{Cursor: c, hooks: newHooks(FamilyCursor, fns)}, true
		}
		return nil, false
	},
	func(v any, fns []Hook) (any, bool) {
		if s, ok := v.(Statement); ok {
			return &hookedStatement{Statement: s, hooks: newHooks(FamilyStatement, fns)}, true
		}
		return nil, false
	},
	func(v any, fns []Hook) (any, bool) {
		if c, ok := v.(Connection); ok {
			return &hookedConnection{Connection: c, hooks: newHooks(FamilyConnection, fns)}, true
		}
		return nil, false
	},
	func(v any, fns []Hook) (any, bool) {
		if c, ok := v.(PooledConnection); ok {
			return &hookedPooledConnection{PooledConnection: c, hooks: newHooks(FamilyConnection, fns)}, true
		}
		return nil, false
	},
	func(v any, fns []Hook) (any, bool) {
		if c, ok := v.(io.Closer); ok {
			return &hookedCloser{Closer: c, hooks: newHooks(FamilyCloser, fns)}, true
		}
		return nil, false
	},
}

type hooks struct {
	family Family
	fns    []Hook
	fired  bool
}

func newHooks(family Family, fns []Hook) *hooks {
	return &hooks{family: family, fns: fns}
}

func (h *hooks) fire() error {
	if h.fired {
		return nil
	}
	h.fired = true

	var errs []error
	for _, fn := range h.fns {
		if err := fn(); err != nil {
			errs = append(errs, classify(h.family, err))
		}
	}
	return join(errs...)
}

func (h *hooks) close(closeFn func() error) error {
	hookErr := h.fire()
	return join(hookErr, closeFn())
}

func (h *hooks) closeWithoutResult(closeFn func(), operation string) {
	err := h.fire()
	closeFn()
	if err != nil {
		logging.Warn().Err(err).
			Stringer("family", h.family).
			Str("operation", operation).
			Msg("close hook failed on an operation without error result")
	}
}

// join returns the only non-nil error as is, or all of them joined.
func join(errs ...error) error {
	errs = slices.DeleteFunc(errs, func(err error) bool { return err == nil })
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

type hookedRows struct {
	pgx.Rows
	hooks *hooks
}

func (r *hookedRows) Close() {
	r.hooks.closeWithoutResult(r.Rows.Close, "Close")
}

type hookedCursor struct {
	Cursor
	hooks *hooks
}

func (c *hookedCursor) Close() error {
	return c.hooks.close(c.Cursor.Close)
}

type hookedStatement struct {
	Statement
	hooks *hooks
}

func (s *hookedStatement) Close() error {
	return s.hooks.close(s.Statement.Close)
}

type hookedConnection struct {
	Connection
	hooks *hooks
}

func (c *hookedConnection) Close() error {
	return c.hooks.close(c.Connection.Close)
}

type hookedPooledConnection struct {
	PooledConnection
	hooks *hooks
}

func (c *hookedPooledConnection) Release() {
	c.hooks.closeWithoutResult(c.PooledConnection.Release, "Release")
}

type hookedCloser struct {
	io.Closer
	hooks *hooks
}

func (c *hookedCloser) Close() error {
	return c.hooks.close(c.Closer.Close)
}
