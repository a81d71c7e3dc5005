package runner

import "github.com/vovakirdan/tui-runner/internal/games/runner/sim"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCrashed     GameStateType = "crashed"
	StateCompleted   GameStateType = "completed"
	StatePausedSmall GameStateType = "paused_small_window"
	StateLoadError   GameStateType = "load_error"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Mode        string
	CourseID    string
	TotalReward int
	Moves       int
	Row         int
	Col         int
	LastReward  int
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		CourseID: g.course.ID,
		State:    StatePlaying,
	}

	switch {
	case g.loadErr != nil:
		snap.State = StateLoadError
		return snap
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.session.Outcome() == sim.OutcomeCrashed:
		snap.State = StateCrashed
	case g.session.Finished():
		snap.State = StateCompleted
	}

	snap.TotalReward = g.session.TotalReward()
	snap.Moves = g.session.Moves()
	if g.hasLast {
		snap.LastReward = g.lastReward
	}
	if !g.session.Finished() {
		pos := g.session.State().Position()
		snap.Row = pos.Row
		snap.Col = pos.Col
	}
	return snap
}
