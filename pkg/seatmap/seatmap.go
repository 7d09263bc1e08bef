package seatmap

// cursor reads a sequence front to back and never rewinds.
type cursor struct {
	seq []int
	pos int
}

func (c *cursor) done() bool { return c.pos >= len(c.seq) }

func (c *cursor) next() int {
	v := c.seq[c.pos]
	c.pos++
	return v
}

func (c *cursor) remaining() int { return len(c.seq) - c.pos }

// Generate seats the sorted odd and even sequences according to cfg.
//
// Missing dimensions are derived from len(odd)+len(even). The returned
// grid records the resolved configuration. Values that do not fit in their
// half of the grid are dropped and counted, not reported as an error. The
// only failure is INVALID_CONFIGURATION.
func Generate(odd, even []int, cfg Config) (*Grid, error) {
	cfg, err := cfg.Resolve(len(odd) + len(even))
	if err != nil {
		return nil, err
	}

	g := newGrid(cfg)
	oddCur := &cursor{seq: odd}
	evenCur := &cursor{seq: even}

	switch cfg.Mode {
	case LeftRight:
		fillLeftRight(g, oddCur, evenCur)
	case FrontBack:
		fillFrontBack(g, oddCur, evenCur)
	}

	g.OddPlaced, g.OddDropped = oddCur.pos, oddCur.remaining()
	g.EvenPlaced, g.EvenDropped = evenCur.pos, evenCur.remaining()
	return g, nil
}

// fillLeftRight walks the rows; in each row the odd half is filled before
// the even half.
func fillLeftRight(g *Grid, odd, even *cursor) {
	half := g.Config.Cols / 2
	oddStart, evenStart := 0, half
	if g.Config.OddSide == Second {
		oddStart, evenStart = half, 0
	}

	for r := range g.Cells {
		fillRun(g.Cells[r][oddStart:oddStart+half], odd)
		fillRun(g.Cells[r][evenStart:evenStart+half], even)
	}
}

// fillFrontBack fills the odd half of the rows row-major, then the even
// half.
func fillFrontBack(g *Grid, odd, even *cursor) {
	half := g.Config.Rows / 2
	oddStart, evenStart := 0, half
	if g.Config.OddSide == Second {
		oddStart, evenStart = half, 0
	}

	for r := oddStart; r < oddStart+half && !odd.done(); r++ {
		fillRun(g.Cells[r], odd)
	}
	for r := evenStart; r < evenStart+half && !even.done(); r++ {
		fillRun(g.Cells[r], even)
	}
}

// fillRun seats values from cur into cells left to right until either runs
// out.
func fillRun(cells []Cell, cur *cursor) {
	for i := 0; i < len(cells) && !cur.done(); i++ {
		cells[i] = Cell{Value: cur.next(), Occupied: true}
	}
}
