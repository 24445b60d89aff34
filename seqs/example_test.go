package seqs_test

import (
	"fmt"

	"seqkit/seqs"
)

func ExampleBatch() {
	s := seqs.Batch(seqs.Range(0, 7, 1), 3)
	defer s.Close()

	for batch, err := range s.All() {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(batch)
	}

	// Output:
	// [0 1 2]
	// [3 4 5]
	// [6]
}

func ExampleTakeWhile() {
	n := 0
	naturals := seqs.Generate[int](seqs.Supply(func() int {
		n++
		return n
	}))

	squares := seqs.TakeWhile(seqs.Map(naturals, func(v int) int { return v * v }),
		func(v int) bool { return v < 50 })
	defer squares.Close()

	got, _ := seqs.Collect(squares)
	fmt.Println(got)
	fmt.Println("generated:", n)

	// Output:
	// [1 4 9 16 25 36 49]
	// generated: 8
}

func ExampleSequence_Next() {
	s := seqs.Map(seqs.Of("a", "b"), func(v string) string { return v + v })
	defer s.Close()

	for s.Next() {
		fmt.Println(s.Value())
	}
	if err := s.Err(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// aa
	// bb
}
