package sim

// State is the simulation's state machine. It is either Active, holding
// the player position and the two-slice resolution window, or Terminal,
// holding only the final move's reward. Terminal is absorbing: the only
// operation defined on it is reading that reward.
//
// Each successful Move produces a fresh State with the window shifted by
// one slice; the old value is discarded. The queue is injected at
// construction and consumed by exactly this state chain, so independent
// simulations never interfere.
type State struct {
	queue    *MapQueue
	pos      Position
	window   Window
	terminal bool
	final    int
}

// NewState starts a simulation: it pulls the first two slices off the queue
// and places the player at start. A queue with no slices at all yields an
// immediately terminal state with final reward 0; course loaders reject
// empty courses, so that only arises from direct misuse of the library.
func NewState(queue *MapQueue, start Position) *State {
	window := Window{
		Resolution: queue.Next(true),
		Lookahead:  queue.Next(true),
	}
	if !window.Resolution.Present {
		return &State{terminal: true, final: RewardFatal}
	}
	return &State{
		queue:  queue,
		pos:    Position{Row: clampCoord(start.Row), Col: clampCoord(start.Col)},
		window: window,
	}
}

// Terminal reports whether the state machine has stopped.
func (s *State) Terminal() bool {
	return s.terminal
}

// FinalReward returns the reward of the move that ended the run.
// Only meaningful on a terminal state.
func (s *State) FinalReward() int {
	return s.final
}

// Position returns the player's current position. Active states only.
func (s *State) Position() Position {
	s.mustBeActive()
	return s.pos
}

// Window returns the current two-slice resolution window. Active states only.
func (s *State) Window() Window {
	s.mustBeActive()
	return s.window
}

// Move resolves one turn. It scores the action, then either stops the
// machine (collision, or course exhausted) or returns the successor state
// with the window shifted by one slice.
//
// Posture is transient: whatever the move did vertically, the successor
// stands (row 1) again; only the lane carries over. A fatal move consumes
// nothing; every surviving move consumes exactly one slice from the queue.
func (s *State) Move(a Action) (reward int, next *State) {
	s.mustBeActive()

	reward = Reward(a, s.pos, s.window.Resolution.Grid, s.window.Lookahead)

	candidate := s.pos.Apply(a)
	newPos := Position{Row: RowStand, Col: candidate.Col}

	if reward == RewardFatal {
		// Crash: the slice stays unconsumed, the run is over.
		return reward, &State{terminal: true, final: reward}
	}

	window := Window{
		Resolution: s.window.Lookahead,
		Lookahead:  s.queue.Next(true),
	}
	if !window.Resolution.Present {
		// Both window slots exhausted: course complete.
		return reward, &State{terminal: true, final: reward}
	}

	return reward, &State{
		queue:  s.queue,
		pos:    newPos,
		window: window,
	}
}

func (s *State) mustBeActive() {
	if s.terminal {
		panic("sim: operation on terminal state")
	}
}
