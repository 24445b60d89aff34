package seqs

// Batch groups the elements of src into slices of size elements.
// The last group may be smaller if there are not enough elements.
func Batch[T any](src *Sequence[T], size int) *Sequence[[]T] {
	return BatchFunc(src, func() int { return size })
}

// BatchFunc groups the elements of src into slices whose size is asked from size at the
// start of every group, so consecutive groups may differ in size.
//
// A group is emitted once it is full. If src ends in the middle of a group the partial
// group is emitted as the last element; an empty trailing group is never emitted.
// A size of zero (or less) produces an endless sequence of empty groups without pulling
// from src at all; bound it or avoid it.
//
// Closing the returned sequence closes src.
func BatchFunc[T any](src *Sequence[T], size func() int) *Sequence[[]T] {
	exhausted := false
	return derive(src, func() ([]T, bool, error) {
		if exhausted {
			return End[[]T]()
		}

		n := size()
		batch := make([]T, 0, max(n, 0))
		for len(batch) < n {
			v, ok, err := src.Generate()
			if err != nil {
				return nil, false, err
			}
			if !ok {
				exhausted = true
				if len(batch) == 0 {
					return End[[]T]()
				}
				return batch, true, nil
			}
			batch = append(batch, v)
		}
		return batch, true, nil
	})
}
