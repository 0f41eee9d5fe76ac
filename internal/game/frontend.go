package game

// Sound identifies an audio cue requested from the embedding layer.
type Sound int

const (
	SoundTick Sound = iota
	SoundWin
	SoundLose
)

func (s Sound) String() string {
	switch s {
	case SoundTick:
		return "tick"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Frontend receives fire-and-forget notifications from the engine. The
// engine never reads anything back through this interface; a frontend
// that ignores every call leaves the game fully playable.
//
// RedrawCell coordinates are playable (1-indexed). StartTimer asks the
// host for a 1-second tick source feeding Game.OnTimerTick; the engine
// stops consuming ticks on its own once the game ends, so StopTimer is
// advisory.
type Frontend interface {
	RedrawCell(x, y int)
	RedrawAll()
	RedrawMineCounter()
	RedrawTimer()
	PlaySound(s Sound)
	StartTimer()
	StopTimer()
	// NewBestTime fires when a won preset game beats the session's best
	// time for its difficulty (name entry, high score display).
	NewBestTime(d Difficulty, seconds int)
}

// NopFrontend discards every notification. It is the default when a Game
// is constructed without a frontend, and the base for frontends that only
// care about a subset of events.
type NopFrontend struct{}

var _ Frontend = NopFrontend{}

func (NopFrontend) RedrawCell(x, y int)                   {}
func (NopFrontend) RedrawAll()                            {}
func (NopFrontend) RedrawMineCounter()                    {}
func (NopFrontend) RedrawTimer()                          {}
func (NopFrontend) PlaySound(s Sound)                     {}
func (NopFrontend) StartTimer()                           {}
func (NopFrontend) StopTimer()                            {}
func (NopFrontend) NewBestTime(d Difficulty, seconds int) {}
