package sim

import "testing"

func TestSessionAccumulatesRewardAndMoves(t *testing.T) {
	s := NewSession(make([]Grid, 4), Position{RowStand, 1})

	total := 0
	moves := 0
	for !s.Finished() {
		out := s.Step(ActionStay)
		total += out.Reward
		moves++
	}

	if s.TotalReward() != total {
		t.Errorf("TotalReward() = %d, expected %d", s.TotalReward(), total)
	}
	if s.Moves() != moves {
		t.Errorf("Moves() = %d, expected %d", s.Moves(), moves)
	}
	if s.Outcome() != OutcomeCompleted {
		t.Errorf("Outcome() = %s, expected completed on an open course", s.Outcome())
	}
}

func TestSessionCrashOutcome(t *testing.T) {
	wall, _ := ParseGrid([]string{"111", "111", "111"})
	s := NewSession([]Grid{wall, wall}, Position{RowStand, 1})

	out := s.Step(ActionStay)
	if out.Reward != RewardFatal || !out.Terminal {
		t.Fatalf("expected a fatal terminal step, got %+v", out)
	}
	if s.Outcome() != OutcomeCrashed {
		t.Errorf("Outcome() = %s, expected crashed", s.Outcome())
	}
	if s.TotalReward() != 0 {
		t.Errorf("TotalReward() = %d, expected 0 after an immediate crash", s.TotalReward())
	}
}

func TestSessionStepAfterFinishIsIdempotent(t *testing.T) {
	s := NewSession(make([]Grid, 2), Position{RowStand, 1})

	for !s.Finished() {
		s.Step(ActionStay)
	}
	moves := s.Moves()
	total := s.TotalReward()

	out := s.Step(ActionJump)
	if !out.Terminal {
		t.Error("stepping a finished session should report terminal")
	}
	if s.Moves() != moves || s.TotalReward() != total {
		t.Error("stepping a finished session must not change the tallies")
	}
}

func TestSessionStateIsReadable(t *testing.T) {
	s := NewSession(make([]Grid, 3), Position{RowStand, 0})

	st := s.State()
	if st.Terminal() {
		t.Fatal("fresh session state should be active")
	}
	if st.Position() != (Position{RowStand, 0}) {
		t.Errorf("Position() = %v, expected start", st.Position())
	}
	if !st.Window().Resolution.Present {
		t.Error("resolution slot should be present on a fresh session")
	}
}
