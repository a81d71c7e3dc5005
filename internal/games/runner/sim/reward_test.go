package sim

import "testing"

func mustGrid(t *testing.T, rows ...string) Grid {
	t.Helper()
	g, err := ParseGrid(rows)
	if err != nil {
		t.Fatalf("bad test grid: %v", err)
	}
	return g
}

func TestCollidesStandingSpansTwoCells(t *testing.T) {
	// Obstacle only at the bottom row of lane 1.
	g := mustGrid(t,
		"000",
		"000",
		"010")

	if !Collides(Position{RowStand, 1}, g) {
		t.Error("standing player should collide via the cell below standing height")
	}
	if Collides(Position{RowJump, 1}, g) {
		t.Error("airborne player should not collide with a bottom-row obstacle")
	}
	if !Collides(Position{RowDuck, 1}, g) {
		t.Error("ducking player occupies the bottom cell and should collide")
	}

	// Obstacle only at standing height of lane 2.
	g = mustGrid(t,
		"000",
		"001",
		"000")
	if !Collides(Position{RowStand, 2}, g) {
		t.Error("standing player should collide at its own cell")
	}
	if Collides(Position{RowDuck, 2}, g) {
		t.Error("ducking player should pass under a standing-height obstacle")
	}
}

func TestRewardFatalOnResolutionCollision(t *testing.T) {
	// Scenario A: obstacle at (1,1), player standing center, STAY.
	resolution := mustGrid(t,
		"000",
		"010",
		"000")
	lookahead := PresentSlot(mustGrid(t, "000", "000", "000"))

	got := Reward(ActionStay, Position{RowStand, 1}, resolution, lookahead)
	if got != RewardFatal {
		t.Errorf("Reward = %d, expected %d (fatal)", got, RewardFatal)
	}
}

func TestRewardBonusWhenContinuationExists(t *testing.T) {
	// Scenario B: open resolution slice, lookahead blocks only lane 0 at
	// standing height. STAY from center still has safe follow-ups.
	resolution := mustGrid(t, "000", "000", "000")
	lookahead := PresentSlot(mustGrid(t,
		"000",
		"100",
		"000"))

	got := Reward(ActionStay, Position{RowStand, 1}, resolution, lookahead)
	if got != RewardSafePath {
		t.Errorf("Reward = %d, expected %d (safe path)", got, RewardSafePath)
	}
}

func TestRewardBaselineWhenEveryContinuationDies(t *testing.T) {
	// Scenario C: open resolution slice, fully occupied lookahead.
	resolution := mustGrid(t, "000", "000", "000")
	lookahead := PresentSlot(mustGrid(t,
		"111",
		"111",
		"111"))

	got := Reward(ActionStay, Position{RowStand, 1}, resolution, lookahead)
	if got != RewardSurvive {
		t.Errorf("Reward = %d, expected %d (survive only)", got, RewardSurvive)
	}
}

func TestRewardBaselineWhenLookaheadAbsent(t *testing.T) {
	resolution := mustGrid(t, "000", "000", "000")

	got := Reward(ActionJump, Position{RowStand, 1}, resolution, AbsentSlot())
	if got != RewardSurvive {
		t.Errorf("Reward with absent lookahead = %d, expected %d", got, RewardSurvive)
	}
}

func TestRewardStayNotSpecialCased(t *testing.T) {
	// Every surviving action scores by the same rule; STAY earns exactly
	// what an equivalent non-moving candidate would.
	resolution := mustGrid(t, "000", "000", "000")
	lookahead := PresentSlot(mustGrid(t, "111", "111", "111"))

	stay := Reward(ActionStay, Position{RowStand, 1}, resolution, lookahead)
	jump := Reward(ActionJump, Position{RowStand, 1}, resolution, lookahead)
	if stay != jump {
		t.Errorf("STAY scored %d but JUMP scored %d against identical survivability", stay, jump)
	}
}

func TestRewardIsPure(t *testing.T) {
	resolution := mustGrid(t,
		"010",
		"001",
		"100")
	lookahead := PresentSlot(mustGrid(t,
		"110",
		"010",
		"011"))

	for _, a := range Actions() {
		for row := 0; row < GridSize; row++ {
			for col := 0; col < GridSize; col++ {
				pos := Position{row, col}
				first := Reward(a, pos, resolution, lookahead)
				for i := 0; i < 10; i++ {
					if got := Reward(a, pos, resolution, lookahead); got != first {
						t.Fatalf("Reward(%s, %v) not deterministic: %d then %d", a, pos, first, got)
					}
				}
			}
		}
	}
}

func TestRewardDoesNotMutateInputs(t *testing.T) {
	resolution := mustGrid(t, "000", "010", "000")
	lookahead := PresentSlot(mustGrid(t, "000", "000", "000"))
	pos := Position{RowStand, 1}

	Reward(ActionLeft, pos, resolution, lookahead)

	if pos != (Position{RowStand, 1}) {
		t.Error("Reward mutated the position")
	}
	if resolution.At(1, 1) != 1 {
		t.Error("Reward mutated the resolution grid")
	}
}
