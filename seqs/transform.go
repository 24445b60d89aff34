package seqs

import "errors"

// Concat yields the elements of each sequence in turn.
// Closing the result closes every part, in order, whether it was reached or not.
func Concat[T any](parts ...*Sequence[T]) *Sequence[T] {
	i := 0
	s := Generate[T](GeneratorFunc[T](func() (T, bool, error) {
		for i < len(parts) {
			v, ok, err := parts[i].Generate()
			if err != nil || ok {
				return v, ok, err
			}
			i++
		}
		return End[T]()
	}))
	return s.OnClose(func() error {
		var errs []error
		for _, p := range parts {
			if err := p.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// FlatMap yields the elements of the sequence f returns for each element of src. Each
// inner sequence is closed as soon as it is exhausted; the current one is also closed when
// the result is.
func FlatMap[S, T any](src *Sequence[S], f func(S) *Sequence[T]) *Sequence[T] {
	var inner *Sequence[T]
	s := derive(src, func() (T, bool, error) {
		for {
			if inner == nil {
				v, ok, err := src.Generate()
				if !ok {
					return fail[T](err)
				}
				inner = f(v)
			}
			v, ok, err := inner.Generate()
			if ok || err != nil {
				return v, ok, err
			}
			if err := inner.Close(); err != nil {
				inner = nil
				return fail[T](err)
			}
			inner = nil
		}
	})
	return s.OnClose(func() error {
		if inner == nil {
			return nil
		}
		return inner.Close()
	})
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs the elements of two sequences and ends with the shorter one.
// Closing the result closes both.
func Zip[T1, T2 any](s1 *Sequence[T1], s2 *Sequence[T2]) *Sequence[Pair[T1, T2]] {
	s := derive(s1, func() (Pair[T1, T2], bool, error) {
		v1, ok, err := s1.Generate()
		if !ok {
			return fail[Pair[T1, T2]](err)
		}
		v2, ok, err := s2.Generate()
		if !ok {
			return fail[Pair[T1, T2]](err)
		}
		return Pair[T1, T2]{v1, v2}, true, nil
	})
	return s.OnClose(s2.Close)
}

// Enumerate pairs each element with its zero-based position.
func Enumerate[T any](src *Sequence[T]) *Sequence[Pair[int, T]] {
	index := 0
	return derive(src, func() (Pair[int, T], bool, error) {
		v, ok, err := src.Generate()
		if !ok {
			return fail[Pair[int, T]](err)
		}
		p := Pair[int, T]{index, v}
		index++
		return p, true, nil
	})
}
