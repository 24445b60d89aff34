package seqs

// Take yields at most n elements of src. It never pulls the element after the n-th.
func Take[T any](src *Sequence[T], n int) *Sequence[T] {
	count := 0
	return derive(src, func() (T, bool, error) {
		if count >= n {
			return End[T]()
		}
		v, ok, err := src.Generate()
		if !ok {
			return v, false, err
		}
		count++
		return v, true, nil
	})
}

// Skip discards the first n elements of src.
func Skip[T any](src *Sequence[T], n int) *Sequence[T] {
	skipped := 0
	return derive(src, func() (T, bool, error) {
		for skipped < n {
			if _, ok, err := src.Generate(); !ok {
				return fail[T](err)
			}
			skipped++
		}
		return src.Generate()
	})
}

// TakeWhile yields elements of src as long as predicate holds.
//
// Each element is pulled from src before it is tested, so the element that fails the
// predicate has already been produced (a cursor advanced, a side effect happened) when the
// sequence decides to end. That element is discarded. Nothing after it is pulled: for a
// prefix of k matching elements src is pulled exactly k+1 times.
func TakeWhile[T any](src *Sequence[T], predicate func(T) bool) *Sequence[T] {
	return derive(src, func() (T, bool, error) {
		v, ok, err := src.Generate()
		if !ok {
			return v, false, err
		}
		if !predicate(v) {
			return End[T]()
		}
		return v, true, nil
	})
}

// TakeWhileInclusive is like TakeWhile but also yields the first element that fails the
// predicate, exactly once, before ending.
func TakeWhileInclusive[T any](src *Sequence[T], predicate func(T) bool) *Sequence[T] {
	stopped := false
	return derive(src, func() (T, bool, error) {
		if stopped {
			return End[T]()
		}
		v, ok, err := src.Generate()
		if !ok {
			return v, false, err
		}
		if !predicate(v) {
			stopped = true
		}
		return v, true, nil
	})
}

// DropWhile skips elements of src as long as predicate holds, then yields the rest.
func DropWhile[T any](src *Sequence[T], predicate func(T) bool) *Sequence[T] {
	dropping := true
	return derive(src, func() (T, bool, error) {
		for {
			v, ok, err := src.Generate()
			if !ok {
				return v, false, err
			}
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			return v, true, nil
		}
	})
}

// fail ends a generator, with err when it is not nil.
func fail[T any](err error) (T, bool, error) {
	var zero T
	return zero, false, err
}
