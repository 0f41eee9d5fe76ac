package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vchernov/minesweeper-classic/internal/game"
)

func newCommandTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.PresetParams(game.Beginner), nil, nil)
	require.NoError(t, err)
	return g
}

func TestExecuteCommandErrors(t *testing.T) {
	t.Parallel()

	g := newCommandTestGame(t)

	for _, c := range []string{
		"z",       // unknown command
		"o 1",     // not enough arguments
		"o 1 2 3", // too many arguments
		"f one 1", // non-numeric x
		"f 1 one", // non-numeric y
		"o 0 1",   // out of range
		"o 1 100", // out of range
		"r 1 1",   // r takes no arguments
		"",        // empty line
	} {
		assert.Error(t, executeCommand(g, c), "command %q", c)
	}

	assert.Equal(t, game.NotStarted, g.Status(), "failed commands must not touch the game")
}

func TestExecuteCommandOpen(t *testing.T) {
	t.Parallel()

	g := newCommandTestGame(t)

	require.NoError(t, executeCommand(g, "o 5 5"))
	assert.Greater(t, g.Revealed(), 0)
	assert.NotEqual(t, game.Lost, g.Status(), "first open is always safe")
}

func TestExecuteCommandFlag(t *testing.T) {
	t.Parallel()

	g := newCommandTestGame(t)

	require.NoError(t, executeCommand(g, "f 3 3"))
	assert.Equal(t, game.BlkFlag, g.VisualType(3, 3))
	assert.Equal(t, g.Params().MineCount-1, g.RemainingMines())
}

func TestExecuteCommandForfeit(t *testing.T) {
	t.Parallel()

	g := newCommandTestGame(t)
	require.NoError(t, executeCommand(g, "o 5 5"))

	require.NoError(t, executeCommand(g, "r"))
	assert.Equal(t, game.Lost, g.Status())
}

func TestExecuteCommandNoop(t *testing.T) {
	t.Parallel()

	g := newCommandTestGame(t)

	require.NoError(t, executeCommand(g, "g"))
	assert.Equal(t, game.NotStarted, g.Status())
	assert.Equal(t, 0, g.Revealed())
}
