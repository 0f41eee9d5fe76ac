package game

// countAdjacentMines counts mine bits in the 8 cells around (x,y).
// Off-board neighbors land on border cells, which never carry the mine
// bit, so the scan needs no bounds checks.
func (g *Game) countAdjacentMines(x, y int) int {
	n := 0
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			if xx == x && yy == y {
				continue
			}
			if g.board.HasMine(xx, yy) {
				n++
			}
		}
	}
	return n
}

// countAdjacentFlags counts flagged cells in the 8 cells around (x,y),
// for the chord precondition.
func (g *Game) countAdjacentFlags(x, y int) int {
	n := 0
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			if xx == x && yy == y {
				continue
			}
			if g.board.IsFlagged(xx, yy) {
				n++
			}
		}
	}
	return n
}

// revealOne reveals a single cell. Already-revealed cells, border cells
// and flagged cells are no-ops, which is what makes the flood fill both
// idempotent and bounded: the visited bit is set here, synchronously,
// before the cell can possibly be enqueued, so no cell enters the queue
// twice.
func (g *Game) revealOne(x, y int) {
	i := index(x, y)
	c := g.board.cells[i]
	if c&maskVisit != 0 {
		return
	}
	switch c & maskData {
	case blkBorder, BlkFlag:
		return
	}

	g.revealed++
	n := g.countAdjacentMines(x, y)
	g.board.cells[i] = c&maskMine | maskVisit | byte(n)
	g.fe.RedrawCell(x, y)

	// Numbered cells stop the propagation; only blanks expand further.
	if n == 0 {
		g.queue.push(x, y)
	}
}

// floodFillReveal reveals (x,y) and, if it is blank, every connected
// blank cell plus the numbered ring around the region. Iterative on the
// bounded queue: worst-case regions approach the whole board and would
// not be safe to recurse over.
func (g *Game) floodFillReveal(x, y int) {
	g.queue.reset()
	g.revealOne(x, y)
	for !g.queue.empty() {
		x, y = g.queue.pop()
		g.revealOne(x-1, y-1)
		g.revealOne(x, y-1)
		g.revealOne(x+1, y-1)
		g.revealOne(x-1, y)
		g.revealOne(x+1, y)
		g.revealOne(x-1, y+1)
		g.revealOne(x, y+1)
		g.revealOne(x+1, y+1)
	}
}
