package sim

// Outcome classifies how a run stands or ended.
type Outcome string

const (
	OutcomeRunning   Outcome = "running"
	OutcomeCrashed   Outcome = "crashed"
	OutcomeCompleted Outcome = "completed"
)

// StepOutcome is what one resolved turn reports back to the driver.
type StepOutcome struct {
	Reward   int
	Terminal bool
	Outcome  Outcome
}

// Session drives one run of the simulation and keeps the score a human
// summary needs: accumulated reward and move count. It owns the queue and
// the active state chain; external code never touches either directly.
type Session struct {
	state       *State
	totalReward int
	moves       int
	outcome     Outcome
}

// NewSession builds a queue from the course slices and starts a run with
// the player at start.
func NewSession(slices []Grid, start Position) *Session {
	state := NewState(NewMapQueue(slices), start)
	s := &Session{state: state, outcome: OutcomeRunning}
	if state.Terminal() {
		s.outcome = OutcomeCompleted
	}
	return s
}

// Step resolves one turn with the given action. Stepping a finished session
// is a no-op that reports the terminal outcome again, so driver loops do not
// need a separate guard.
func (s *Session) Step(a Action) StepOutcome {
	if s.state.Terminal() {
		return StepOutcome{Reward: s.state.FinalReward(), Terminal: true, Outcome: s.outcome}
	}

	reward, next := s.state.Move(a)
	s.state = next
	s.totalReward += reward
	s.moves++

	if next.Terminal() {
		if reward == RewardFatal {
			s.outcome = OutcomeCrashed
		} else {
			s.outcome = OutcomeCompleted
		}
	}

	return StepOutcome{Reward: reward, Terminal: next.Terminal(), Outcome: s.outcome}
}

// State exposes the current state for read-only consumers (the renderer
// samples the window and position from it). It must not be mutated past
// the session's back.
func (s *Session) State() *State {
	return s.state
}

// Finished reports whether the run has ended.
func (s *Session) Finished() bool {
	return s.state.Terminal()
}

// Outcome returns the current run classification.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// TotalReward returns the reward accumulated over all resolved turns.
func (s *Session) TotalReward() int {
	return s.totalReward
}

// Moves returns how many turns have been resolved.
func (s *Session) Moves() int {
	return s.moves
}
