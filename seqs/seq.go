package seqs

// Filter yields only the elements of src that satisfy predicate.
func Filter[T any](src *Sequence[T], predicate func(T) bool) *Sequence[T] {
	return derive(src, func() (T, bool, error) {
		for {
			v, ok, err := src.Generate()
			if !ok {
				return v, false, err
			}
			if predicate(v) {
				return v, true, nil
			}
		}
	})
}

// Map applies transform to each element of src.
func Map[T, R any](src *Sequence[T], transform func(T) R) *Sequence[R] {
	return derive(src, func() (R, bool, error) {
		v, ok, err := src.Generate()
		if !ok {
			return fail[R](err)
		}
		return transform(v), true, nil
	})
}

// TryMap applies a fallible transform to each element of src.
// The first error returned by transform ends the sequence and is reported by Err.
func TryMap[T, R any](src *Sequence[T], transform func(T) (R, error)) *Sequence[R] {
	return derive(src, func() (R, bool, error) {
		v, ok, err := src.Generate()
		if !ok {
			return fail[R](err)
		}
		res, err := transform(v)
		if err != nil {
			return fail[R](err)
		}
		return res, true, nil
	})
}

// Peek performs action on each element as it passes through.
// It is useful for debugging (e.g., logging) or counting pulls.
func Peek[T any](src *Sequence[T], action func(T)) *Sequence[T] {
	return derive(src, func() (T, bool, error) {
		v, ok, err := src.Generate()
		if ok {
			action(v)
		}
		return v, ok, err
	})
}

// Reduce aggregates the remaining elements of src, starting from initial.
func Reduce[T, R any](src *Sequence[T], initial R, reducer func(R, T) R) (R, error) {
	acc := initial
	for v, err := range src.All() {
		if err != nil {
			return acc, err
		}
		acc = reducer(acc, v)
	}
	return acc, nil
}

// TryReduce is Reduce with a reducer that can fail; its first error is returned immediately.
func TryReduce[T, R any](src *Sequence[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for v, err := range src.All() {
		if err != nil {
			return acc, err
		}
		if acc, err = reducer(acc, v); err != nil {
			return acc, err
		}
	}
	return acc, nil
}
