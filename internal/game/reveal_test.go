package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloodQueue(t *testing.T) {
	t.Parallel()

	var q floodQueue
	assert.True(t, q.empty())

	q.push(1, 2)
	q.push(3, 4)
	assert.False(t, q.empty())

	x, y := q.pop()
	assert.Equal(t, [2]int{1, 2}, [2]int{x, y})
	x, y = q.pop()
	assert.Equal(t, [2]int{3, 4}, [2]int{x, y})
	assert.True(t, q.empty())

	// wrap: fill and drain past the capacity boundary
	for round := 0; round < 3; round++ {
		for i := 0; i < cellCount-1; i++ {
			q.push(i, i)
		}
		for i := 0; i < cellCount-1; i++ {
			x, _ := q.pop()
			assert.Equal(t, i, x)
		}
		assert.True(t, q.empty())
	}
}

func TestFloodFillRevealsWholeEmptyBoard(t *testing.T) {
	t.Parallel()

	// No mines at all: one click reveals every cell, and the reveal
	// count proves each cell was processed exactly once.
	g := newTestGame(t, 8, 8, nil)
	g.HandleCellClick(4, 4)

	assert.Equal(t, 64, g.Revealed())
	assert.Equal(t, Won, g.Status())
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			assert.True(t, g.board.IsVisited(x, y))
			assert.Equal(t, BlkBlank, g.VisualType(x, y))
		}
	}
}

func TestFloodFillCoverage(t *testing.T) {
	t.Parallel()

	// Mines down column 3 wall off the right side: the flood from (1,1)
	// must reveal exactly the left zero region plus its numbered border,
	// and nothing across the wall.
	g := newTestGame(t, 5, 5, [][2]int{
		{3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5},
	})
	g.HandleCellClick(1, 1)

	for y := 1; y <= 5; y++ {
		assert.True(t, g.board.IsVisited(1, y), "(1,%d)", y)
		assert.Equal(t, BlkBlank, g.VisualType(1, y))
		assert.True(t, g.board.IsVisited(2, y), "(2,%d)", y)
		assert.NotEqual(t, BlkBlank, g.VisualType(2, y), "column 2 borders the wall")
	}
	for y := 1; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			assert.False(t, g.board.IsVisited(x, y), "(%d,%d) is past the wall", x, y)
		}
	}
	assert.Equal(t, 10, g.Revealed())
	assert.Equal(t, Playing, g.Status())
}

func TestFloodFillSkipsFlaggedCells(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 4, 4, nil)
	g.ToggleCellMarker(2, 2)
	g.HandleCellClick(4, 4)

	assert.False(t, g.board.IsVisited(2, 2), "flagged cell excluded from reveal")
	assert.Equal(t, 15, g.Revealed())
	// 15 of 16 revealed, flag still down: not a win yet
	assert.Equal(t, Playing, g.Status())

	// unflagging and revealing the last cell wins
	g.ToggleCellMarker(2, 2)
	g.ToggleCellMarker(2, 2)
	g.HandleCellClick(2, 2)
	assert.Equal(t, Won, g.Status())
}

func TestCountAdjacentMines(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 3, 3, [][2]int{{1, 1}, {2, 1}, {3, 1}})

	tests := []struct {
		x, y int
		want int
	}{
		{2, 2, 3},
		{1, 2, 2},
		{3, 2, 2},
		{1, 3, 0},
		{2, 3, 0},
		{2, 1, 2}, // a mined cell counts its mined neighbors, not itself
	}
	for _, test := range tests {
		assert.Equal(t, test.want, g.countAdjacentMines(test.x, test.y),
			"(%d,%d)", test.x, test.y)
	}
}

func TestCountAdjacentFlags(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 3, 3, [][2]int{{1, 1}})
	g.ToggleCellMarker(1, 1)
	g.ToggleCellMarker(3, 3)

	assert.Equal(t, 2, g.countAdjacentFlags(2, 2))
	assert.Equal(t, 1, g.countAdjacentFlags(2, 1))
	assert.Equal(t, 0, g.countAdjacentFlags(1, 1), "a cell does not count its own flag")
}

func TestRevealOneOnBorderIsNoop(t *testing.T) {
	t.Parallel()

	// The reveal engine leans on the border sentinel instead of bounds
	// checks: stepping outside the playable area must change nothing.
	g := newTestGame(t, 3, 3, [][2]int{{2, 2}})
	g.revealOne(0, 0)
	g.revealOne(4, 2)
	g.revealOne(2, 0)

	assert.Equal(t, 0, g.Revealed())
	assert.True(t, g.queue.empty())
}
