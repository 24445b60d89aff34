package seqs

// Collect drains src into a slice. On failure the elements collected so far are returned
// along with the error. Collect does not close src.
func Collect[T any](src *Sequence[T]) ([]T, error) {
	var out []T
	if n := src.SizeHint(); n > 0 {
		out = make([]T, 0, n)
	}
	for v, err := range src.All() {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ForEach calls action for each remaining element of src.
func ForEach[T any](src *Sequence[T], action func(T)) error {
	for v, err := range src.All() {
		if err != nil {
			return err
		}
		action(v)
	}
	return nil
}

func First[T any](src *Sequence[T]) (T, bool, error) {
	return src.Generate()
}

func Count[T any](src *Sequence[T]) (int, error) {
	count := 0
	for _, err := range src.All() {
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func Any[T any](src *Sequence[T], predicate func(T) bool) (bool, error) {
	for v, err := range src.All() {
		if err != nil {
			return false, err
		}
		if predicate(v) {
			return true, nil
		}
	}
	return false, nil
}
