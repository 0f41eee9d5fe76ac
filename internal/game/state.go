package game

import (
	"bytes"
	"encoding/gob"
)

// Serialization for session storage. The snapshot carries the packed cell
// array and the session counters; the frontend and random source are
// runtime wiring and are re-attached on decode.
type gameState struct {
	Params         GameParams
	Cells          []byte
	Status         Status
	Paused         bool
	TimerRunning   bool
	SuspendedTimer bool
	Revealed       int
	TargetRevealed int
	RemainingMines int
	Elapsed        int
	Marks          bool
	BestTimes      [3]int
}

// Bytes gob-encodes the game for persistence.
func (g *Game) Bytes() ([]byte, error) {
	state := gameState{
		Params:         g.params,
		Cells:          g.board.cells[:],
		Status:         g.status,
		Paused:         g.paused,
		TimerRunning:   g.timerRunning,
		SuspendedTimer: g.suspendedTimer,
		Revealed:       g.revealed,
		TargetRevealed: g.targetRevealed,
		RemainingMines: g.remainingMines,
		Elapsed:        g.elapsed,
		Marks:          g.marks,
		BestTimes:      g.bestTimes,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeGame restores a game from Bytes output. The decoded game plays
// silently until SetFrontend.
func DecodeGame(buf []byte) (*Game, error) {
	var state gameState
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&state); err != nil {
		return nil, err
	}
	g := &Game{
		params:         state.Params,
		status:         state.Status,
		paused:         state.Paused,
		timerRunning:   state.TimerRunning,
		suspendedTimer: state.SuspendedTimer,
		revealed:       state.Revealed,
		targetRevealed: state.TargetRevealed,
		remainingMines: state.RemainingMines,
		elapsed:        state.Elapsed,
		marks:          state.Marks,
		bestTimes:      state.BestTimes,
		cursorX:        -1,
		cursorY:        -1,
		fe:             NopFrontend{},
		rnd:            NewRand(),
	}
	g.board.width = state.Params.Width
	g.board.height = state.Params.Height
	copy(g.board.cells[:], state.Cells)
	return g, nil
}

// SetFrontend attaches a frontend, e.g. after DecodeGame. Nil restores
// the silent default.
func (g *Game) SetFrontend(fe Frontend) {
	if fe == nil {
		fe = NopFrontend{}
	}
	g.fe = fe
}
