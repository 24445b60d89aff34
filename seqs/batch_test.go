package seqs_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"seqkit/seqs"
)

func TestBatch(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want int
	}{
		{"exact multiple", 1000, 10, 100},
		{"fewer than one group", 5, 10, 1},
		{"partial last group", 7, 3, 3},
		{"group of one", 4, 1, 4},
		{"empty source", 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seqs.Batch(seqs.Range(0, tt.n, 1), tt.size)
			defer s.Close()

			groups, err := seqs.Collect(s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(groups) != tt.want {
				t.Fatalf("got %d groups, want %d", len(groups), tt.want)
			}

			var flat []int
			for i, g := range groups {
				if i < len(groups)-1 && len(g) != tt.size {
					t.Errorf("group %d has %d elements, want %d", i, len(g), tt.size)
				}
				flat = append(flat, g...)
			}
			if tt.n > 0 {
				if last := groups[len(groups)-1]; tt.n%tt.size != 0 && len(last) != tt.n%tt.size {
					t.Errorf("last group has %d elements, want %d", len(last), tt.n%tt.size)
				}
			}
			want, _ := seqs.Collect(seqs.Range(0, tt.n, 1))
			if !slices.Equal(flat, want) {
				t.Errorf("concatenated groups do not reconstruct the source")
			}
		})
	}
}

func TestBatchSmallSource(t *testing.T) {
	groups, err := seqs.Collect(seqs.Batch(seqs.Of(0, 1, 2, 3, 4), 10))
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || !slices.Equal(groups[0], []int{0, 1, 2, 3, 4}) {
		t.Errorf("got %v", groups)
	}
}

func TestBatchFuncAsksSizePerGroup(t *testing.T) {
	sizes := []int{1, 2, 3}
	asked := 0
	s := seqs.BatchFunc(seqs.Range(0, 10, 1), func() int {
		n := sizes[asked%len(sizes)]
		asked++
		return n
	})
	defer s.Close()

	groups, err := seqs.Collect(s)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0}, {1, 2}, {3, 4, 5}, {6}, {7, 8}, {9}}
	if !slices.EqualFunc(groups, want, slices.Equal) {
		t.Errorf("got %v, want %v", groups, want)
	}
	if asked != len(want) {
		t.Errorf("size asked %d times, want %d", asked, len(want))
	}
}

func TestBatchPullsLazily(t *testing.T) {
	gen := &countingGen{limit: 100}
	s := seqs.Batch(seqs.Generate[int](gen), 10)
	defer s.Close()

	if _, ok, _ := s.Generate(); !ok {
		t.Fatal("expected a group")
	}
	if gen.calls != 10 {
		t.Errorf("first group pulled %d elements, want 10", gen.calls)
	}
}

func TestBatchFailure(t *testing.T) {
	boom := errors.New("boom")
	src := seqs.Concat(seqs.Of(1, 2, 3, 4), seqs.Generate[int](seqs.GeneratorFunc[int](func() (int, bool, error) {
		return 0, false, boom
	})))
	s := seqs.Batch(src, 3)
	defer s.Close()

	groups, err := seqs.Collect(s)
	if !errors.Is(err, boom) {
		t.Fatalf("expected failure, got %v", err)
	}
	if len(groups) != 1 || !slices.Equal(groups[0], []int{1, 2, 3}) {
		t.Errorf("got %v", groups)
	}
}

func TestBatchZeroSize(t *testing.T) {
	gen := &countingGen{limit: 5}
	s := seqs.Take(seqs.Batch(seqs.Generate[int](gen), 0), 3)
	defer s.Close()

	groups, err := seqs.Collect(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	for _, g := range groups {
		if len(g) != 0 {
			t.Errorf("expected empty group, got %v", g)
		}
	}
	if gen.calls != 0 {
		t.Errorf("zero sized groups pulled %d elements", gen.calls)
	}
}

func BenchmarkBatch(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			for b.Loop() {
				s := seqs.Batch(seqs.Range(0, 10_000, 1), size)
				for range s.Values() {
				}
				s.Close()
			}
		})
	}
}
