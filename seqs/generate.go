package seqs

import (
	"iter"
)

type sliceGenerator[T any] struct {
	values []T
	pos    int
}

func (g *sliceGenerator[T]) Generate() (T, bool, error) {
	if g.pos >= len(g.values) {
		return End[T]()
	}
	v := g.values[g.pos]
	g.pos++
	return v, true, nil
}

func (g *sliceGenerator[T]) SizeHint() int {
	return len(g.values) - g.pos
}

// Of returns a sequence over the given values.
func Of[T any](values ...T) *Sequence[T] {
	return FromSlice(values)
}

// FromSlice returns a sequence over s. The slice is not copied.
func FromSlice[T any](s []T) *Sequence[T] {
	return Generate[T](&sliceGenerator[T]{values: s})
}

// Range generates integers from start (inclusive) to end (exclusive) by step.
// A zero step yields an empty sequence.
func Range(start, end, step int) *Sequence[int] {
	i := start
	return Generate[int](Func(func() (int, bool) {
		if step == 0 || step > 0 && i >= end || step < 0 && i <= end {
			return 0, false
		}
		v := i
		i += step
		return v, true
	}))
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) *Sequence[T] {
	n := 0
	return Generate[T](Func(func() (T, bool) {
		if n >= count {
			var zero T
			return zero, false
		}
		n++
		return value, true
	}))
}

// FromSeq adapts a push iterator. Closing the sequence stops the iterator.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	next, stop := iter.Pull(seq)
	s := Generate[T](Func(next))
	return s.OnClose(func() error {
		stop()
		return nil
	})
}

// FromSeq2 adapts a push iterator of (value, error) pairs, such as the one returned by
// Sequence.All. The first non-nil error fails the sequence.
func FromSeq2[T any](seq iter.Seq2[T, error]) *Sequence[T] {
	next, stop := iter.Pull2(seq)
	s := Generate[T](GeneratorFunc[T](func() (T, bool, error) {
		v, err, ok := next()
		if !ok {
			return End[T]()
		}
		if err != nil {
			var zero T
			return zero, false, err
		}
		return v, true, nil
	}))
	return s.OnClose(func() error {
		stop()
		return nil
	})
}
