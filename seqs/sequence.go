package seqs

import (
	"errors"
	"io"
	"iter"
)

// Unbounded is the size hint of a sequence whose length is not known in advance.
const Unbounded = -1

// Generator is a pull-based value source.
//
// Each call to Generate either yields exactly one element (v, true, nil), signals
// end-of-data (zero, false, nil), or reports a failure of the source (zero, false, err).
// End-of-data is not an error. What happens when Generate is called again after the end
// was signalled is up to the source; a Sequence never does that.
type Generator[T any] interface {
	Generate() (T, bool, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc[T any] func() (T, bool, error)

func (f GeneratorFunc[T]) Generate() (T, bool, error) {
	return f()
}

// Func adapts a source that cannot fail.
func Func[T any](f func() (T, bool)) GeneratorFunc[T] {
	return func() (T, bool, error) {
		v, ok := f()
		return v, ok, nil
	}
}

// Supply adapts a source that never ends. Sequences built from it are infinite and must be
// bounded by an operator such as Take or TakeWhile.
func Supply[T any](f func() T) GeneratorFunc[T] {
	return func() (T, bool, error) {
		return f(), true, nil
	}
}

// Value is the return of a Generator yielding v.
func Value[T any](v T) (T, bool, error) {
	return v, true, nil
}

// End is the return of a Generator that has no more elements.
func End[T any]() (T, bool, error) {
	var zero T
	return zero, false, nil
}

type sizer interface {
	SizeHint() int
}

// Sequence is a lazy, ordered, single-pass view over a Generator plus the release actions
// that must run when the consumer is done with it.
//
// Elements are produced on demand: the generator is called once per element and never
// again after it signalled the end or failed. A Sequence is not closed when it is
// exhausted; Close must always be called, typically with defer.
//
// A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	gen     Generator[T]
	onClose []func() error

	current T
	err     error
	done    bool
	closed  bool
}

// Generate returns a sequence pulling its elements from g. If g also implements io.Closer,
// closing the sequence closes g.
func Generate[T any](g Generator[T]) *Sequence[T] {
	s := &Sequence[T]{gen: g}
	if c, ok := g.(io.Closer); ok {
		s.onClose = append(s.onClose, c.Close)
	}
	return s
}

// derive builds a sequence on top of src whose close cascades to src.
func derive[S, T any](src *Sequence[S], gen GeneratorFunc[T]) *Sequence[T] {
	return &Sequence[T]{
		gen:     gen,
		onClose: []func() error{src.Close},
	}
}

// Generate pulls the next element. It makes a Sequence usable as the Generator of another
// one, which is how every operator of this package composes.
func (s *Sequence[T]) Generate() (T, bool, error) {
	var zero T
	if s.err != nil {
		return zero, false, s.err
	}
	if s.done || s.closed {
		return zero, false, nil
	}

	v, ok, err := s.gen.Generate()
	if err != nil {
		s.err = err
		s.done = true
		return zero, false, err
	}
	if !ok {
		s.done = true
		return zero, false, nil
	}
	return v, true, nil
}

// Next advances to the next element, making it available through Value. It returns false
// when the sequence ended or failed; Err tells the two apart.
func (s *Sequence[T]) Next() bool {
	v, ok, _ := s.Generate()
	s.current = v
	return ok
}

// Value returns the element the last successful call to Next advanced to.
func (s *Sequence[T]) Value() T {
	return s.current
}

// Err returns the failure that ended the sequence, if any.
func (s *Sequence[T]) Err() error {
	return s.err
}

// SizeHint returns the number of remaining elements when the source knows it, Unbounded
// otherwise.
func (s *Sequence[T]) SizeHint() int {
	if s.done || s.closed {
		return 0
	}
	if sz, ok := s.gen.(sizer); ok {
		return sz.SizeHint()
	}
	return Unbounded
}

// All returns an iterator over the remaining elements. A failure is yielded once as the
// last pair, with the zero value of T.
func (s *Sequence[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, ok, err := s.Generate()
			if err != nil {
				yield(v, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}

// Values returns an iterator over the remaining elements. It stops silently on failure;
// check Err afterwards.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok, _ := s.Generate()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// OnClose registers a release action. Actions run in registration order when the sequence
// is closed for the first time. An action registered on an already closed sequence runs
// immediately and its failure is discarded, since no Close is left to report it.
func (s *Sequence[T]) OnClose(fn func() error) *Sequence[T] {
	if s.closed {
		_ = fn()
		return s
	}
	s.onClose = append(s.onClose, fn)
	return s
}

// Close runs the release actions of the sequence, cascading to the sequences it was built
// from. Only the first call has an effect. Every action runs even if an earlier one fails;
// the failures are joined.
func (s *Sequence[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for _, fn := range s.onClose {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	s.onClose = nil
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
