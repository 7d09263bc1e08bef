// Package sorting provides the in-place comparison sorts used on the odd
// and even partitions.
//
// Two algorithms are available, both unstable (equal elements may be
// reordered, callers must not depend on their relative order):
//
//   - [Quick]: quicksort with a median-of-three pivot. Ranges shorter than
//     [InsertionThreshold] elements fall back to insertion sort. After each
//     partition the smaller side is recursed into and the larger side is
//     handled by the enclosing loop, bounding stack depth to O(log n).
//   - [Heap]: in-place heapsort. A max-heap is built bottom-up by sifting
//     down every non-leaf index, then the root is repeatedly swapped with
//     the last unsorted element. O(n log n) in every case, no extra memory.
//
// [InsertOrdered] supports incremental maintenance of an already sorted
// sequence with a linear shift-and-insert.
package sorting
