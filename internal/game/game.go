// Package game implements the classic minesweeper board engine: a
// bit-packed grid, random mine placement with first-click safety, a
// bounded breadth-first reveal, and the win/loss state machine driving
// them. The engine is single-threaded and event-driven; every public
// operation runs to completion before the next one.
package game

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status int

const (
	NotStarted Status = iota
	Playing
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// The timer saturates here instead of wrapping.
const maxElapsed = 999

// Game owns one playthrough: the board, the flood queue, the session
// counters and the status flags. All mutation goes through its methods;
// frontends only ever read derived values.
//
// Operations on invalid, stale or already-resolved positions are silent
// no-ops, never errors: input may race game over in a UI and must be
// absorbed rather than reported.
type Game struct {
	params GameParams
	board  Board
	queue  floodQueue

	status       Status
	paused       bool
	timerRunning bool
	// timer state remembered across a suspend
	suspendedTimer bool

	revealed       int
	targetRevealed int
	remainingMines int // signed: goes negative when over-flagged
	elapsed        int

	// question-mark cycling enabled
	marks     bool
	bestTimes [3]int

	// pressed-cell visual tracking
	cursorX, cursorY int
	chordCursor      bool

	fe  Frontend
	rnd *rand.Rand
}

// NewRand returns a randomly seeded source suitable for mine placement.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewGame validates params and starts a fresh game. A nil frontend plays
// silently; a nil rnd gets a randomly seeded source.
func NewGame(params GameParams, fe Frontend, rnd *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if fe == nil {
		fe = NopFrontend{}
	}
	if rnd == nil {
		rnd = NewRand()
	}
	g := &Game{
		fe:        fe,
		rnd:       rnd,
		marks:     true,
		bestTimes: [3]int{maxElapsed, maxElapsed, maxElapsed},
	}
	g.start(params)
	return g, nil
}

// StartNewGame abandons the current game and starts a new one. The mine
// count precondition is checked before any board mutation: placement does
// not terminate on a fully mined board.
func (g *Game) StartNewGame(params GameParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	g.start(params)
	return nil
}

// Restart starts a new game with the current configuration.
func (g *Game) Restart() {
	g.start(g.params)
}

func (g *Game) start(params GameParams) {
	g.params = params
	g.board.Reset(params.Width, params.Height)
	g.placeMines(params.MineCount)

	g.status = NotStarted
	g.paused = false
	g.timerRunning = false
	g.elapsed = 0
	g.revealed = 0
	g.remainingMines = params.MineCount
	g.targetRevealed = params.Width*params.Height - params.MineCount
	g.cursorX, g.cursorY = -1, -1
	g.chordCursor = false

	g.fe.RedrawAll()
	g.fe.RedrawMineCounter()
	g.fe.RedrawTimer()

	Log.WithFields(logrus.Fields{
		"width":      params.Width,
		"height":     params.Height,
		"mines":      params.MineCount,
		"difficulty": params.Difficulty.String(),
	}).Debug("new game")
}

// HandleCellClick resolves a reveal action on (x,y). Clicks outside the
// board, on revealed cells or on flagged cells do nothing. The very first
// reveal of a game can never detonate: a mine under it is relocated first.
func (g *Game) HandleCellClick(x, y int) {
	if !g.playable(x, y) {
		return
	}
	g.firstAction()

	if g.board.HasMine(x, y) {
		if g.revealed == 0 {
			g.relocateMine(x, y)
			g.floodFillReveal(x, y)
			g.finishReveal()
			return
		}
		g.board.SetVisualType(x, y, BlkExplode)
		g.board.MarkVisited(x, y)
		g.fe.RedrawCell(x, y)
		g.endGame(false)
		return
	}

	g.floodFillReveal(x, y)
	g.finishReveal()
}

// HandleChordReveal reveals the 8 neighbors of a satisfied numbered cell
// in one action. The cell must be revealed, unflagged, showing 1..8, with
// exactly that many flagged neighbors; any mismatch is a silent no-op
// whose only effect is un-pressing provisionally pressed cells.
func (g *Game) HandleChordReveal(x, y int) {
	if g.over() || g.paused || !g.board.Valid(x, y) {
		return
	}

	blk := g.board.VisualType(x, y)
	if !g.board.IsVisited(x, y) ||
		g.board.IsFlagged(x, y) ||
		blk < 1 || blk > 8 ||
		g.countAdjacentFlags(x, y) != blk {
		g.releaseAround(x, y)
		return
	}

	exploded := false
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			if !g.board.IsFlagged(xx, yy) && g.board.HasMine(xx, yy) {
				exploded = true
				g.board.SetVisualType(xx, yy, BlkExplode)
				g.board.MarkVisited(xx, yy)
				g.fe.RedrawCell(xx, yy)
			} else {
				g.floodFillReveal(xx, yy)
			}
		}
	}

	if exploded {
		g.endGame(false)
		return
	}
	g.finishReveal()
}

// ToggleCellMarker cycles an unrevealed cell through unflagged, flagged
// and (when marks are enabled) questioned. Flag placement that completes
// the board wins the game, same as a reveal would.
func (g *Game) ToggleCellMarker(x, y int) {
	if g.over() || g.paused {
		return
	}
	if !g.board.Valid(x, y) || g.board.IsVisited(x, y) {
		return
	}

	switch {
	case g.board.IsFlagged(x, y):
		if g.marks {
			g.board.SetVisualType(x, y, BlkGuessUp)
		} else {
			g.board.SetVisualType(x, y, BlkBlankUp)
		}
		g.updateMineCount(+1)
	case g.board.IsMarked(x, y):
		g.board.SetVisualType(x, y, BlkBlankUp)
	default:
		g.board.SetVisualType(x, y, BlkFlag)
		g.updateMineCount(-1)
	}
	g.fe.RedrawCell(x, y)

	if g.board.IsFlagged(x, y) && g.revealed == g.targetRevealed {
		g.endGame(true)
	}
}

// OnTimerTick advances the clock by one second, saturating at 999. Ticks
// arriving while paused or after game over are absorbed.
func (g *Game) OnTimerTick() {
	if !g.timerRunning || g.elapsed >= maxElapsed {
		return
	}
	g.elapsed++
	g.fe.RedrawTimer()
	g.fe.PlaySound(SoundTick)
}

// Forfeit ends an unfinished game as a loss, exposing the mines.
func (g *Game) Forfeit() {
	if g.over() {
		return
	}
	g.endGame(false)
}

// Suspend freezes the timer without disturbing game state (host window
// minimized, menu open). Reveal and flag input is ignored until Resume.
func (g *Game) Suspend() {
	if !g.paused {
		g.suspendedTimer = g.timerRunning
	}
	g.timerRunning = false
	g.paused = true
}

// Resume restores the timer to its pre-suspend state.
func (g *Game) Resume() {
	if !g.paused {
		return
	}
	if g.status == Playing || g.status == NotStarted {
		g.timerRunning = g.suspendedTimer
	}
	g.paused = false
}

// playable reports whether a reveal action on (x,y) can proceed.
func (g *Game) playable(x, y int) bool {
	if g.over() || g.paused {
		return false
	}
	return g.board.Valid(x, y) &&
		!g.board.IsVisited(x, y) &&
		!g.board.IsFlagged(x, y)
}

func (g *Game) over() bool {
	return g.status == Won || g.status == Lost
}

// firstAction starts the clock on the first reveal of a game. The first
// second is counted immediately so the display never shows 0 mid-game.
func (g *Game) firstAction() {
	if g.revealed != 0 || g.elapsed != 0 {
		return
	}
	g.fe.PlaySound(SoundTick)
	g.elapsed = 1
	g.fe.RedrawTimer()
	g.timerRunning = true
	g.fe.StartTimer()
}

// finishReveal promotes a fresh game to Playing and checks the O(1)
// victory condition: every non-mine cell revealed.
func (g *Game) finishReveal() {
	if g.status == NotStarted {
		g.status = Playing
	}
	if g.revealed == g.targetRevealed {
		g.endGame(true)
	}
}

func (g *Game) updateMineCount(delta int) {
	g.remainingMines += delta
	g.fe.RedrawMineCounter()
}

// endGame stops the clock and settles the board. A loss exposes unflagged
// mines and crosses out wrong flags; a win flags every remaining mine and
// zeroes the counter. A won preset game that beats the session best time
// notifies the frontend for name entry.
func (g *Game) endGame(won bool) {
	g.timerRunning = false
	g.fe.StopTimer()

	if won {
		g.revealMines(BlkFlag)
	} else {
		g.revealMines(BlkMineDown)
	}

	if won {
		if g.remainingMines != 0 {
			g.updateMineCount(-g.remainingMines)
		}
		g.status = Won
		g.fe.PlaySound(SoundWin)
	} else {
		g.status = Lost
		g.fe.PlaySound(SoundLose)
	}

	d := g.params.Difficulty
	if won && d != Custom && g.elapsed < g.bestTimes[d] {
		g.bestTimes[d] = g.elapsed
		g.fe.NewBestTime(d, g.elapsed)
	}

	Log.WithFields(logrus.Fields{
		"status":  g.status.String(),
		"elapsed": g.elapsed,
	}).Debug("game over")
}

// revealMines settles every unrevealed cell at game over. Mines that were
// flagged stay flagged; the rest take mineBlk (flag on a win, exposed
// mine on a loss); flags on mine-free cells become wrong-flag markers.
func (g *Game) revealMines(mineBlk int) {
	for y := 1; y <= g.board.height; y++ {
		for x := 1; x <= g.board.width; x++ {
			if g.board.IsVisited(x, y) {
				continue
			}
			if g.board.HasMine(x, y) {
				if !g.board.IsFlagged(x, y) {
					g.board.SetVisualType(x, y, mineBlk)
				}
			} else if g.board.IsFlagged(x, y) {
				g.board.SetVisualType(x, y, BlkWrongFlag)
			}
		}
	}
	g.fe.RedrawAll()
}

// SetMarks toggles question-mark cycling for flag toggles.
func (g *Game) SetMarks(enabled bool) { g.marks = enabled }
func (g *Game) Marks() bool           { return g.marks }

// SetBestTime seeds the session best-time table (e.g. from persisted
// preferences). Custom games carry no best time.
func (g *Game) SetBestTime(d Difficulty, seconds int) {
	if d != Custom {
		g.bestTimes[d] = seconds
	}
}

func (g *Game) BestTime(d Difficulty) int {
	if d == Custom {
		return maxElapsed
	}
	return g.bestTimes[d]
}

// Query surface for rendering and display.

func (g *Game) Params() GameParams  { return g.params }
func (g *Game) Status() Status      { return g.status }
func (g *Game) Paused() bool        { return g.paused }
func (g *Game) Elapsed() int        { return g.elapsed }
func (g *Game) RemainingMines() int { return g.remainingMines }
func (g *Game) Revealed() int       { return g.revealed }
func (g *Game) Width() int          { return g.board.width }
func (g *Game) Height() int         { return g.board.height }

// VisualType returns the visual type of a playable cell for rendering.
func (g *Game) VisualType(x, y int) int { return g.board.VisualType(x, y) }

// VisualGrid returns the playable area's visual types in row-major order,
// width*height entries.
func (g *Game) VisualGrid() []int {
	grid := make([]int, 0, g.board.width*g.board.height)
	for y := 1; y <= g.board.height; y++ {
		for x := 1; x <= g.board.width; x++ {
			grid = append(grid, g.board.VisualType(x, y))
		}
	}
	return grid
}

func (g *Game) String() string { return g.board.String() }
