package sortego_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/sortego"
	"github.com/hupe1980/sortego/term"
)

// Example demonstrates basic ordered-set usage.
func Example() {
	set, err := sortego.New(1000, 500) // expected items, max bucket size
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range []any{3, 1, "banana", 2, "apple"} {
		if _, err := set.Add(v); err != nil {
			log.Fatal(err)
		}
	}

	list, err := set.ToList()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(list)
	// Output: [1 2 3 apple banana]
}

// ExampleSet_Add shows duplicate detection.
func ExampleSet_Add() {
	set, err := sortego.Empty(500)
	if err != nil {
		log.Fatal(err)
	}

	first, _ := set.Add("key")
	second, _ := set.Add("key")

	fmt.Println(first.Duplicate, second.Duplicate, first.Index == second.Index)
	// Output: false true true
}

// ExampleSet_AppendBucket shows the bulk-load fast path for pre-sorted
// data.
func ExampleSet_AppendBucket() {
	set, err := sortego.Empty(3)
	if err != nil {
		log.Fatal(err)
	}

	if err := set.AppendBucket([]any{10, 20, 30}); err != nil {
		log.Fatal(err)
	}

	// Payloads longer than the max bucket size are rejected whole.
	err = set.AppendBucket([]any{40, 50, 60, 70})
	var full *sortego.ErrMaxBucketSizeExceeded
	fmt.Println(errors.As(err, &full))

	size, _ := set.Size()
	fmt.Println(size)
	// Output:
	// true
	// 3
}

// ExampleSet_Slice shows ranged retrieval across bucket boundaries.
func ExampleSet_Slice() {
	set, err := sortego.New(100, 4)
	if err != nil {
		log.Fatal(err)
	}
	for v := 0; v < 10; v++ {
		if _, err := set.Add(v); err != nil {
			log.Fatal(err)
		}
	}

	window, _ := set.Slice(6, 10) // clipped at the end
	fmt.Println(window)
	// Output: [6 7 8 9]
}

// Example_tuples demonstrates composite values: tuples sort by arity, then
// elementwise.
func Example_tuples() {
	set, err := sortego.Empty(500)
	if err != nil {
		log.Fatal(err)
	}

	set.Add(term.TupleValue{"user", 2})
	set.Add(term.TupleValue{"user", 1})
	set.Add(term.TupleValue{"admin"})

	list, _ := set.ToList()
	for _, v := range list {
		fmt.Println(v)
	}
	// Output:
	// [admin]
	// [user 1]
	// [user 2]
}
