package sqlseq

import (
	"seqkit/closer"
	"seqkit/seqs"
)

// Cursor is the row cursor a sequence reads from, satisfied by *sql.Rows.
type Cursor = closer.Cursor

// Rows returns a sequence over the rows of c. Every element is c itself, positioned on the
// current row; read it before pulling the next element.
//
// A failure to advance c ends the sequence with a *seqs.ResourceError. Closing the
// sequence closes c quietly: a failure to close a cursor the caller is done with is logged
// and dropped.
func Rows(c Cursor) *seqs.Sequence[Cursor] {
	return rows(c).OnClose(func() error {
		closer.Quietly(c)
		return nil
	})
}

// Map returns a sequence of mapper applied to every row of c.
func Map[T any](c Cursor, mapper func(Cursor) T) *seqs.Sequence[T] {
	return seqs.Map(Rows(c), mapper)
}

// Scan returns a sequence of mapper applied to every row of c. A mapper failure, typically
// from Cursor.Scan, ends the sequence with a *seqs.ResourceError.
func Scan[T any](c Cursor, mapper func(Cursor) (T, error)) *seqs.Sequence[T] {
	return seqs.TryMap(Rows(c), wrapMapper(mapper))
}

// rows is Rows without any release action.
func rows(c Cursor) *seqs.Sequence[Cursor] {
	return seqs.Generate[Cursor](seqs.GeneratorFunc[Cursor](func() (Cursor, bool, error) {
		if c.Next() {
			return c, true, nil
		}
		if err := c.Err(); err != nil {
			return nil, false, seqs.WrapResourceError(err)
		}
		return nil, false, nil
	}))
}

func wrapMapper[C, T any](mapper func(C) (T, error)) func(C) (T, error) {
	return func(c C) (T, error) {
		v, err := mapper(c)
		if err != nil {
			return v, seqs.WrapResourceError(err)
		}
		return v, nil
	}
}
