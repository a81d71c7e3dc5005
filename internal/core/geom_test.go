package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 4 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (4, 5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{5, 5, true},
		{9, 9, true},
		{10, 10, false}, // Right/bottom edges are exclusive
		{-1, 5, false},
		{5, -1, false},
	}

	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", c.x, c.y, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not change in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(42, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(2, 7) != 2 || Min(7, 2) != 2 {
		t.Error("Min is wrong")
	}
	if Max(2, 7) != 7 || Max(7, 2) != 7 {
		t.Error("Max is wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs is wrong")
	}
}
