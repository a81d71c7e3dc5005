package sim

import "testing"

func openGrid() Grid {
	return Grid{}
}

func TestQueueConsumeAndPeek(t *testing.T) {
	a := openGrid()
	b, _ := ParseGrid([]string{"111", "111", "111"})

	q := NewMapQueue([]Grid{a, b})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	// Peek does not mutate.
	peeked := q.Next(false)
	if !peeked.Present || peeked.Grid != a {
		t.Error("peek should return the head without removing it")
	}
	if q.Len() != 2 {
		t.Error("peek must not consume")
	}

	// Consume removes the head.
	first := q.Next(true)
	if !first.Present || first.Grid != a {
		t.Error("consume should return the former head")
	}
	second := q.Next(true)
	if !second.Present || second.Grid != b {
		t.Error("consume should advance front to back")
	}

	// Exhaustion is an absent slot, not an error.
	if q.Next(true).Present {
		t.Error("empty queue should yield an absent slot")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after draining, expected 0", q.Len())
	}
}

func TestQueueCopiesInput(t *testing.T) {
	blocked, _ := ParseGrid([]string{"111", "111", "111"})
	grids := []Grid{openGrid(), openGrid()}
	q := NewMapQueue(grids)

	grids[0] = blocked

	if head := q.Next(false); head.Grid != openGrid() {
		t.Error("mutating the source slice must not reorder the queue")
	}
}

func TestQueueUninitializedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("using a zero-value MapQueue should panic")
		}
	}()
	var q MapQueue
	q.Next(true)
}

func TestNewStatePullsTwoSlices(t *testing.T) {
	q := NewMapQueue([]Grid{openGrid(), openGrid(), openGrid()})
	s := NewState(q, Position{RowStand, 1})

	if s.Terminal() {
		t.Fatal("fresh state should be active")
	}
	if q.Len() != 1 {
		t.Errorf("initial window should pull two slices, queue has %d left", q.Len())
	}
	w := s.Window()
	if !w.Resolution.Present || !w.Lookahead.Present {
		t.Error("both window slots should be present with three slices queued")
	}
}

func TestNewStateClampsStart(t *testing.T) {
	q := NewMapQueue([]Grid{openGrid(), openGrid()})
	s := NewState(q, Position{Row: 7, Col: -2})
	if got := s.Position(); got != (Position{RowDuck, 0}) {
		t.Errorf("start position not clamped, got %v", got)
	}
}

func TestMoveConsumesExactlyOneSlicePerTurn(t *testing.T) {
	grids := make([]Grid, 8)
	q := NewMapQueue(grids)
	s := NewState(q, Position{RowStand, 1})

	before := q.Len()
	for i := 0; i < 4; i++ {
		var reward int
		reward, s = s.Move(ActionStay)
		if reward == RewardFatal {
			t.Fatalf("unexpected crash on an open course at move %d", i)
		}
		if got := before - q.Len(); got != i+1 {
			t.Fatalf("after %d moves queue shrank by %d", i+1, got)
		}
	}
}

func TestMovePostureResets(t *testing.T) {
	for _, a := range Actions() {
		q := NewMapQueue(make([]Grid, 5))
		s := NewState(q, Position{RowStand, 1})

		_, next := s.Move(a)
		if next.Terminal() {
			t.Fatalf("open course should not terminate after one %s", a)
		}
		pos := next.Position()
		if pos.Row != RowStand {
			t.Errorf("after %s successor row = %d, expected standing", a, pos.Row)
		}

		// Lateral movement persists, vertical does not.
		wantCol := Position{RowStand, 1}.Apply(a).Col
		if pos.Col != wantCol {
			t.Errorf("after %s successor col = %d, expected %d", a, pos.Col, wantCol)
		}
	}
}

func TestMoveCrashConsumesNothing(t *testing.T) {
	// Scenario A: obstacle at standing center, STAY is fatal.
	wall, _ := ParseGrid([]string{"000", "010", "000"})
	q := NewMapQueue([]Grid{wall, openGrid(), openGrid()})
	s := NewState(q, Position{RowStand, 1})

	queued := q.Len()
	reward, next := s.Move(ActionStay)

	if reward != RewardFatal {
		t.Errorf("reward = %d, expected fatal", reward)
	}
	if !next.Terminal() {
		t.Error("crash should produce a terminal state")
	}
	if next.FinalReward() != RewardFatal {
		t.Errorf("terminal reward = %d, expected 0", next.FinalReward())
	}
	if q.Len() != queued {
		t.Error("a fatal move must not consume a slice")
	}
}

func TestMoveWindowShiftsByOne(t *testing.T) {
	first, _ := ParseGrid([]string{"100", "000", "000"})
	second, _ := ParseGrid([]string{"001", "000", "000"})
	third, _ := ParseGrid([]string{"000", "100", "000"})
	q := NewMapQueue([]Grid{first, second, third})
	s := NewState(q, Position{RowStand, 1})

	_, next := s.Move(ActionStay)
	w := next.Window()
	if w.Resolution.Grid != second {
		t.Error("old lookahead should become the new resolution slice")
	}
	if !w.Lookahead.Present || w.Lookahead.Grid != third {
		t.Error("freshly pulled slice should become the new lookahead")
	}
}

func TestCourseWithTwoSlicesCompletes(t *testing.T) {
	// Scenario D: exactly two slices. One successful move exhausts the
	// window's resolution slot on the following shift... first the
	// lookahead goes absent, then the next move completes the course.
	q := NewMapQueue([]Grid{openGrid(), openGrid()})
	s := NewState(q, Position{RowStand, 1})

	reward, next := s.Move(ActionStay)
	if next.Terminal() {
		t.Fatal("first move still has a present resolution slot")
	}
	if reward != RewardSafePath {
		t.Errorf("first move reward = %d, expected 2 on an open course", reward)
	}
	w := next.Window()
	if w.Lookahead.Present {
		t.Error("lookahead should be absent once the queue is drained")
	}

	reward, last := next.Move(ActionStay)
	if !last.Terminal() {
		t.Fatal("second move should complete the course")
	}
	if reward != RewardSurvive {
		t.Errorf("final move reward = %d, expected 1 (no lookahead bonus at the end)", reward)
	}
	if last.FinalReward() != RewardSurvive {
		t.Errorf("terminal stores %d, expected the final move's reward", last.FinalReward())
	}
}

func TestLookaheadAbsenceIsPermanent(t *testing.T) {
	q := NewMapQueue(make([]Grid, 4))
	s := NewState(q, Position{RowStand, 1})

	seenAbsent := false
	for !s.Terminal() {
		if seenAbsent && s.Window().Lookahead.Present {
			t.Fatal("lookahead came back after going absent")
		}
		if !s.Window().Lookahead.Present {
			seenAbsent = true
		}
		_, s = s.Move(ActionStay)
	}
	if !seenAbsent {
		t.Error("course should have reached the absent-lookahead stretch")
	}
}

func TestMoveOnTerminalPanics(t *testing.T) {
	wall, _ := ParseGrid([]string{"000", "010", "000"})
	q := NewMapQueue([]Grid{wall})
	s := NewState(q, Position{RowStand, 1})
	_, terminal := s.Move(ActionStay)

	defer func() {
		if recover() == nil {
			t.Error("Move on a terminal state should panic")
		}
	}()
	terminal.Move(ActionStay)
}

func TestIndependentSimulationsDoNotInterfere(t *testing.T) {
	// Two runs over identical course data, stepped in lockstep, stay
	// identical: the queue is per-state, never shared.
	course := []Grid{openGrid(), openGrid(), openGrid(), openGrid()}

	s1 := NewState(NewMapQueue(course), Position{RowStand, 1})
	s2 := NewState(NewMapQueue(course), Position{RowStand, 1})

	moves := []Action{ActionLeft, ActionJump, ActionRight, ActionStay}
	for _, a := range moves {
		if s1.Terminal() {
			break
		}
		var r1, r2 int
		r1, s1 = s1.Move(a)
		r2, s2 = s2.Move(a)
		if r1 != r2 {
			t.Fatalf("lockstep runs diverged: %d vs %d", r1, r2)
		}
		if s1.Terminal() != s2.Terminal() {
			t.Fatal("lockstep runs diverged on termination")
		}
		if !s1.Terminal() && s1.Position() != s2.Position() {
			t.Fatal("lockstep runs diverged on position")
		}
	}
}
