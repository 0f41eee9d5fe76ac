package game

// placeMines seeds the board with exactly n mines by rejection sampling:
// draw uniform cells and redraw on collision. Terminates because Validate
// guarantees the mine count stays below the playable cell count.
func (g *Game) placeMines(n int) {
	for ; n > 0; n-- {
		for {
			x := g.rnd.IntN(g.board.width) + 1
			y := g.rnd.IntN(g.board.height) + 1
			if !g.board.HasMine(x, y) {
				g.board.PlaceMine(x, y)
				break
			}
		}
	}
}

// relocateMine implements first-click safety: the mine under the player's
// very first reveal moves to the first mine-free cell in row-major order.
// O(width*height), runs at most once per game.
func (g *Game) relocateMine(x, y int) {
	for yy := 1; yy <= g.board.height; yy++ {
		for xx := 1; xx <= g.board.width; xx++ {
			if !g.board.HasMine(xx, yy) {
				g.board.RemoveMine(x, y)
				g.board.PlaceMine(xx, yy)
				return
			}
		}
	}
}
