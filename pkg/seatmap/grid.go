package seatmap

// Cell is one seat. Value is meaningful only when Occupied is set, so zero
// and negative values can be seated.
type Cell struct {
	Value    int  `json:"value"`
	Occupied bool `json:"occupied"`
}

// Grid is the result of one seating run. It is not modified after
// Generate returns.
type Grid struct {
	Config Config   `json:"config"`
	Cells  [][]Cell `json:"cells"`

	OddPlaced   int `json:"odd_placed"`
	EvenPlaced  int `json:"even_placed"`
	OddDropped  int `json:"odd_dropped"`
	EvenDropped int `json:"even_dropped"`
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return len(g.Cells) }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// At returns the cell at row r, column c. Out-of-range positions read as
// empty.
func (g *Grid) At(r, c int) Cell {
	if r < 0 || r >= g.Rows() || c < 0 || c >= g.Cols() {
		return Cell{}
	}
	return g.Cells[r][c]
}

// Placed returns the number of occupied cells.
func (g *Grid) Placed() int { return g.OddPlaced + g.EvenPlaced }

// Dropped returns the number of values that did not fit.
func (g *Grid) Dropped() int { return g.OddDropped + g.EvenDropped }

// Values returns the occupied values in row-major order.
func (g *Grid) Values() []int {
	out := make([]int, 0, g.Placed())
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Occupied {
				out = append(out, cell.Value)
			}
		}
	}
	return out
}

// newGrid allocates a rows x cols grid of empty cells.
func newGrid(cfg Config) *Grid {
	cells := make([][]Cell, cfg.Rows)
	backing := make([]Cell, cfg.Rows*cfg.Cols)
	for r := range cells {
		cells[r], backing = backing[:cfg.Cols:cfg.Cols], backing[cfg.Cols:]
	}
	return &Grid{Config: cfg, Cells: cells}
}
