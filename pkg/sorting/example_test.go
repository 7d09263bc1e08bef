package sorting_test

import (
	"fmt"

	"github.com/matzehuels/seatsort/pkg/sorting"
)

func ExampleSort() {
	s := []int{19, -4, 7, 7, 0, 33, 2}
	_ = sorting.Sort(sorting.Heap, s)
	fmt.Println(s)
	// Output: [-4 0 2 7 7 19 33]
}

func ExampleInsertOrdered() {
	even := []int{2, 6, 8}
	even = sorting.InsertOrdered(even, 4)
	fmt.Println(even)
	// Output: [2 4 6 8]
}
