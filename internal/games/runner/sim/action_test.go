package sim

import (
	"errors"
	"testing"
)

func TestActionDeltas(t *testing.T) {
	cases := []struct {
		action     Action
		dRow, dCol int
	}{
		{ActionLeft, 0, -1},
		{ActionRight, 0, 1},
		{ActionJump, -1, 0},
		{ActionDuck, 1, 0},
		{ActionStay, 0, 0},
	}

	for _, c := range cases {
		dRow, dCol := c.action.Delta()
		if dRow != c.dRow || dCol != c.dCol {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", c.action, dRow, dCol, c.dRow, c.dCol)
		}
	}
}

func TestActionsOrder(t *testing.T) {
	want := [5]Action{ActionLeft, ActionRight, ActionJump, ActionDuck, ActionStay}
	if Actions() != want {
		t.Errorf("Actions() = %v, expected fixed order %v", Actions(), want)
	}
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		token string
		want  Action
	}{
		{"l", ActionLeft},
		{"left", ActionLeft},
		{"R", ActionRight},
		{"j", ActionJump},
		{"JUMP", ActionJump},
		{"d", ActionDuck},
		{"s", ActionStay},
		{" stay ", ActionStay},
	}

	for _, c := range cases {
		got, err := ParseAction(c.token)
		if err != nil {
			t.Errorf("ParseAction(%q) unexpected error: %v", c.token, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseAction(%q) = %s, expected %s", c.token, got, c.want)
		}
	}
}

func TestParseActionRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "x", "up", "jumpp", "stay now"} {
		if _, err := ParseAction(token); !errors.Is(err, ErrUnknownAction) {
			t.Errorf("ParseAction(%q) error = %v, expected ErrUnknownAction", token, err)
		}
	}
}

func TestPositionApplyClamping(t *testing.T) {
	// Jumping while airborne, ducking while low, and moving against a wall
	// all leave that coordinate unchanged.
	cases := []struct {
		pos    Position
		action Action
		want   Position
	}{
		{Position{RowJump, 1}, ActionJump, Position{RowJump, 1}},
		{Position{RowDuck, 1}, ActionDuck, Position{RowDuck, 1}},
		{Position{RowStand, 0}, ActionLeft, Position{RowStand, 0}},
		{Position{RowStand, 2}, ActionRight, Position{RowStand, 2}},
		{Position{RowStand, 1}, ActionJump, Position{RowJump, 1}},
		{Position{RowStand, 1}, ActionDuck, Position{RowDuck, 1}},
		{Position{RowStand, 1}, ActionLeft, Position{RowStand, 0}},
	}

	for _, c := range cases {
		if got := c.pos.Apply(c.action); got != c.want {
			t.Errorf("%v.Apply(%s) = %v, expected %v", c.pos, c.action, got, c.want)
		}
	}
}

func TestPositionApplyStayKeepsColumn(t *testing.T) {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			got := Position{row, col}.Apply(ActionStay)
			if got.Col != col || got.Row != row {
				t.Errorf("STAY moved (%d,%d) to %v", row, col, got)
			}
		}
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{"010", "000", "111"})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if g.At(0, 1) != 1 || g.At(1, 1) != 0 || g.At(2, 0) != 1 {
		t.Errorf("ParseGrid produced wrong occupancy: %v", g)
	}
}

func TestParseGridRejectsMalformedRows(t *testing.T) {
	bad := [][]string{
		{"000", "000"},         // Too few rows
		{"000", "000", "00"},   // Short row
		{"000", "0x0", "000"},  // Invalid cell
		{"000", "0000", "000"}, // Long row
	}
	for _, rows := range bad {
		if _, err := ParseGrid(rows); err == nil {
			t.Errorf("ParseGrid(%v) should fail", rows)
		}
	}
}
