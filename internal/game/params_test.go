package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
		ok     bool
	}{
		{"beginner", PresetParams(Beginner), true},
		{"intermediate", PresetParams(Intermediate), true},
		{"expert", PresetParams(Expert), true},
		{"tiny", GameParams{Width: 2, Height: 1, MineCount: 1}, true},
		{"no mines", GameParams{Width: 9, Height: 9, MineCount: 0}, true},
		{"full of mines", GameParams{Width: 3, Height: 3, MineCount: 9}, false},
		{"too many mines", GameParams{Width: 3, Height: 3, MineCount: 100}, false},
		{"negative mines", GameParams{Width: 9, Height: 9, MineCount: -1}, false},
		{"zero width", GameParams{Width: 0, Height: 9, MineCount: 0}, false},
		{"too wide", GameParams{Width: 31, Height: 9, MineCount: 10}, false},
		{"too tall", GameParams{Width: 9, Height: 25, MineCount: 10}, false},
		{"max size", GameParams{Width: 30, Height: 24, MineCount: 667}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGameParamsClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   GameParams
		want GameParams
	}{
		{
			"in range",
			GameParams{Width: 16, Height: 16, MineCount: 40},
			GameParams{Width: 16, Height: 16, MineCount: 40},
		},
		{
			"too small",
			GameParams{Width: 1, Height: 1, MineCount: 0},
			GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			"too large",
			GameParams{Width: 99, Height: 99, MineCount: 9999},
			GameParams{Width: 30, Height: 24, MineCount: 667},
		},
		{
			"mines capped by area",
			GameParams{Width: 9, Height: 9, MineCount: 500},
			GameParams{Width: 9, Height: 9, MineCount: 64},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.in.Clamp()
			assert.Equal(t, test.want, got)
			assert.NoError(t, got.Validate(), "clamped params always validate")
		})
	}
}

func TestPresetParams(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, PresetParams(Beginner).MineCount)
	assert.Equal(t, 40, PresetParams(Intermediate).MineCount)
	assert.Equal(t, 99, PresetParams(Expert).MineCount)
	assert.Equal(t, Custom, PresetParams(Custom).Difficulty)
}

func TestMinePlacementCount(t *testing.T) {
	t.Parallel()

	// Rejection sampling places exactly the configured number of mines.
	for seed := uint64(0); seed < 10; seed++ {
		g, err := NewGame(PresetParams(Expert), nil,
			testRandSeeded(seed))
		if err != nil {
			t.Fatal(err)
		}
		mines := 0
		for y := 1; y <= g.Height(); y++ {
			for x := 1; x <= g.Width(); x++ {
				if g.board.HasMine(x, y) {
					mines++
				}
			}
		}
		assert.Equal(t, 99, mines, "seed %d", seed)
	}
}
