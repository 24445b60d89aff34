package pgxseq

import (
	"github.com/jackc/pgx/v5"

	"seqkit/closer"
	"seqkit/seqs"
)

// Rows returns a sequence over r. Every element is r itself, positioned on the current
// row. A failure reported by r ends the sequence with a *seqs.ResourceError; closing the
// sequence closes r.
func Rows(r pgx.Rows) *seqs.Sequence[pgx.Rows] {
	return rows(r).OnClose(func() error {
		closer.Quietly(r)
		return nil
	})
}

// Map returns a sequence of mapper applied to every row of r.
func Map[T any](r pgx.Rows, mapper func(pgx.Rows) T) *seqs.Sequence[T] {
	return seqs.Map(Rows(r), mapper)
}

// Scan returns a sequence of the rows of r decoded by fn, which can be one of pgx's row
// functions such as pgx.RowTo[int64] or pgx.RowToStructByName[User]. A decoding failure
// ends the sequence with a *seqs.ResourceError.
func Scan[T any](r pgx.Rows, fn pgx.RowToFunc[T]) *seqs.Sequence[T] {
	return seqs.TryMap(Rows(r), decoder(fn))
}

func rows(r pgx.Rows) *seqs.Sequence[pgx.Rows] {
	return seqs.Generate[pgx.Rows](seqs.GeneratorFunc[pgx.Rows](func() (pgx.Rows, bool, error) {
		if r.Next() {
			return r, true, nil
		}
		if err := r.Err(); err != nil {
			return nil, false, seqs.WrapResourceError(err)
		}
		return nil, false, nil
	}))
}

func decoder[T any](fn pgx.RowToFunc[T]) func(pgx.Rows) (T, error) {
	return func(r pgx.Rows) (T, error) {
		v, err := fn(r)
		if err != nil {
			return v, seqs.WrapResourceError(err)
		}
		return v, nil
	}
}
