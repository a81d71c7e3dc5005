// Package batch runs many headless simulations concurrently and aggregates
// their outcomes. Useful for sanity-checking course difficulty and comparing
// simple policies.
package batch

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// Policy chooses the next action for an active simulation state.
type Policy interface {
	// Name identifies the policy in reports.
	Name() string
	// Choose picks an action. The state is guaranteed to be active.
	Choose(state *sim.State) sim.Action
}

// RandomPolicy picks a uniformly random action each turn.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a random policy with its own seeded RNG.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPolicy) Name() string { return "random" }

func (p *RandomPolicy) Choose(state *sim.State) sim.Action {
	actions := sim.Actions()
	return actions[p.rng.Intn(len(actions))]
}

// GreedyPolicy picks the action with the highest immediate reward.
// Ties break in the fixed action order, so the choice is deterministic.
type GreedyPolicy struct{}

// NewGreedyPolicy creates a greedy policy.
func NewGreedyPolicy() *GreedyPolicy { return &GreedyPolicy{} }

func (p *GreedyPolicy) Name() string { return "greedy" }

func (p *GreedyPolicy) Choose(state *sim.State) sim.Action {
	window := state.Window()
	pos := state.Position()

	best := sim.ActionLeft
	bestReward := -1
	for _, a := range sim.Actions() {
		r := sim.Reward(a, pos, window.Resolution.Grid, window.Lookahead)
		if r > bestReward {
			best = a
			bestReward = r
		}
	}
	return best
}

// NewPolicy constructs a policy by name. The seed only affects random
// policies.
func NewPolicy(name string, seed int64) (Policy, bool) {
	switch name {
	case "random":
		return NewRandomPolicy(seed), true
	case "greedy":
		return NewGreedyPolicy(), true
	default:
		return nil, false
	}
}
