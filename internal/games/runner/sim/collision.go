package sim

// Collides reports whether the position is blocked inside the grid.
//
// A standing player (row 1) is two cells tall, so the cell directly below
// standing height is checked as well. Airborne and ducking players occupy a
// single cell and are checked only at their own row.
func Collides(p Position, g Grid) bool {
	if g.At(p.Row, p.Col) == 1 {
		return true
	}
	if p.Row == RowStand && g.At(RowDuck, p.Col) == 1 {
		return true
	}
	return false
}
