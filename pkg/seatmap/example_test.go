package seatmap_test

import (
	"fmt"

	"github.com/matzehuels/seatsort/pkg/seatmap"
)

func ExampleGenerate() {
	cfg := seatmap.Config{Rows: 2, Cols: 4, Mode: seatmap.LeftRight, OddSide: seatmap.First}

	g, err := seatmap.Generate([]int{1, 3, 5}, []int{2, 4, 6, 8}, cfg)
	if err != nil {
		panic(err)
	}
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Occupied {
				fmt.Printf("%3d", cell.Value)
			} else {
				fmt.Print("  .")
			}
		}
		fmt.Println()
	}
	fmt.Println("dropped:", g.Dropped())
	// Output:
	//   1  3  2  4
	//   5  .  6  8
	// dropped: 0
}
