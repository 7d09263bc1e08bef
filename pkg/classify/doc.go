// Package classify splits integer sequences into odd and even partitions.
//
// Three interchangeable strategies are provided. They all produce a correct
// split by parity; they differ in ordering guarantees and memory use:
//
//   - [Stable] scans the input twice, first collecting odd values and then
//     even values. Relative input order is preserved inside each partition.
//     O(2n) time, O(n) extra space.
//   - [Partition] is a Lomuto-style single pass over a working copy that
//     swaps every odd value into a growing prefix. Order inside each
//     partition is not preserved. O(n) time, O(1) space beyond the copy.
//   - [TwoPointer] converges a left cursor (skipping odd values) and a right
//     cursor (skipping even values), swapping when both stall. Same output
//     contract as Partition but with fewer swaps on nearly classified input.
//
// # Parity
//
// A value is odd iff its lowest bit is set. With two's-complement integers
// this classifies negative odd values (-1, -3, ...) as odd without a special
// case, and zero as even.
//
// # Usage
//
//	odd, even, err := classify.Apply(classify.Stable, []int{5, 2, 7, 4})
//	// odd = [5 7], even = [2 4]
package classify
