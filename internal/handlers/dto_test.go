package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vchernov/minesweeper-classic/internal/game"
)

func TestNewGameDTOPresets(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		difficulty string
		want       game.GameParams
	}{
		{"beginner", game.PresetParams(game.Beginner)},
		{"intermediate", game.PresetParams(game.Intermediate)},
		{"expert", game.PresetParams(game.Expert)},
	} {
		dto, err := ParseNewGameDTO(url.Values{"difficulty": {tc.difficulty}})
		require.NoError(t, err)

		params, err := dto.GameParams()
		require.NoError(t, err)
		assert.Equal(t, tc.want, params, tc.difficulty)
	}
}

func TestNewGameDTOCustomClamps(t *testing.T) {
	t.Parallel()

	dto, err := ParseNewGameDTO(url.Values{
		"width":      {"100"},
		"height":     {"1"},
		"mine_count": {"0"},
	})
	require.NoError(t, err)

	params, err := dto.GameParams()
	require.NoError(t, err)
	assert.Equal(t, game.Custom, params.Difficulty)
	assert.Equal(t, 30, params.Width)
	assert.Equal(t, 9, params.Height)
	assert.Equal(t, 10, params.MineCount)
	assert.NoError(t, params.Validate())
}

func TestNewGameDTOUnknownDifficulty(t *testing.T) {
	t.Parallel()

	dto, err := ParseNewGameDTO(url.Values{"difficulty": {"nightmare"}})
	require.NoError(t, err)

	_, err = dto.GameParams()
	assert.Error(t, err)
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	pos, err := ParsePosition(url.Values{"x": {"3"}, "y": {"7"}})
	require.NoError(t, err)
	assert.Equal(t, Position{X: 3, Y: 7}, pos)

	_, err = ParsePosition(url.Values{"x": {"3"}})
	assert.Error(t, err, "y is required")

	_, err = ParsePosition(url.Values{"x": {"three"}, "y": {"7"}})
	assert.Error(t, err)
}
