package seqs

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

func Sum[T Number](src *Sequence[T]) (T, error) {
	return Reduce(src, T(0), func(total, v T) T { return total + v })
}

func Min[T Number](src *Sequence[T]) (T, bool, error) {
	return extreme(src, func(a, b T) bool { return a < b })
}

func Max[T Number](src *Sequence[T]) (T, bool, error) {
	return extreme(src, func(a, b T) bool { return a > b })
}

func extreme[T Number](src *Sequence[T], better func(a, b T) bool) (T, bool, error) {
	var best T
	found := false
	for v, err := range src.All() {
		if err != nil {
			return best, found, err
		}
		if !found || better(v, best) {
			best = v
			found = true
		}
	}
	return best, found, nil
}
