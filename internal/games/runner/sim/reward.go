package sim

// Rewards a single move can earn.
const (
	RewardFatal    = 0 // the move collides with the current slice
	RewardSurvive  = 1 // the move survives, but no continuation does
	RewardSafePath = 2 // the move survives and some continuation survives too
)

// Reward scores taking the action from the position against the resolution
// slice, with a one-slice lookahead bonus.
//
// The candidate position is the action's delta applied with per-axis
// clamping. A collision with the resolution grid is fatal (0). Surviving is
// worth 1. If a lookahead slice exists and any of the five follow-up moves
// from the candidate avoids collision there, the move earns 2: the bonus
// rewards keeping at least one way out alive, regardless of which one.
//
// Reward is a pure function; identical inputs always score identically.
func Reward(a Action, pos Position, resolution Grid, lookahead Slot) int {
	candidate := pos.Apply(a)
	if Collides(candidate, resolution) {
		return RewardFatal
	}
	if !lookahead.Present {
		// The course ends at this slice; surviving it is all there is.
		return RewardSurvive
	}
	for _, next := range Actions() {
		if !Collides(candidate.Apply(next), lookahead.Grid) {
			return RewardSafePath
		}
	}
	return RewardSurvive
}
