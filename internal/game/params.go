package game

import "fmt"

type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
	Custom
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	default:
		return "custom"
	}
}

// GameParams describes one game configuration.
type GameParams struct {
	Width      int
	Height     int
	MineCount  int
	Difficulty Difficulty
}

// The three preset difficulties.
var presets = map[Difficulty]GameParams{
	Beginner:     {Width: 9, Height: 9, MineCount: 10, Difficulty: Beginner},
	Intermediate: {Width: 16, Height: 16, MineCount: 40, Difficulty: Intermediate},
	Expert:       {Width: 30, Height: 16, MineCount: 99, Difficulty: Expert},
}

// PresetParams returns the configuration for a preset difficulty. Custom
// falls back to the beginner layout; callers building custom games should
// construct GameParams directly.
func PresetParams(d Difficulty) GameParams {
	if p, ok := presets[d]; ok {
		return p
	}
	p := presets[Beginner]
	p.Difficulty = Custom
	return p
}

// Validate rejects configurations the engine cannot play. The mine count
// bound is a hard precondition: placement uses rejection sampling and does
// not terminate when mines fill every playable cell.
func (p GameParams) Validate() error {
	if p.Width < 1 || p.Width > MaxWidth {
		return fmt.Errorf("width must be in 1..%d, got %d", MaxWidth, p.Width)
	}
	if p.Height < 1 || p.Height > MaxHeight {
		return fmt.Errorf("height must be in 1..%d, got %d", MaxHeight, p.Height)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("mine count must not be negative, got %d", p.MineCount)
	}
	if p.MineCount >= p.Width*p.Height {
		return fmt.Errorf("mine count %d must be less than cell count %d",
			p.MineCount, p.Width*p.Height)
	}
	return nil
}

// Clamp forces the configuration into the classic UI ranges (9..30 wide,
// 9..24 tall, 10..min(999,(w-1)*(h-1)) mines). Embedding layers that take
// free-form user input clamp before starting a game; Validate never fails
// on a clamped configuration.
func (p GameParams) Clamp() GameParams {
	p.Width = clamp(p.Width, 9, MaxWidth)
	p.Height = clamp(p.Height, 9, MaxHeight)
	maxMines := (p.Width - 1) * (p.Height - 1)
	if maxMines > 999 {
		maxMines = 999
	}
	p.MineCount = clamp(p.MineCount, 10, maxMines)
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
