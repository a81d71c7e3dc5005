package sim

import "fmt"

// GridSize is the edge length of a course cross-section.
const GridSize = 3

// Rows encode the player's vertical posture.
const (
	RowJump  = 0 // airborne, occupies only the top cell
	RowStand = 1 // standing, spans the middle and bottom cells
	RowDuck  = 2 // ducking, occupies only the bottom cell
)

// Grid is one 3×3 cross-section of the course: 0 is open, 1 is an obstacle.
// Grids are plain values and immutable once created.
type Grid [GridSize][GridSize]uint8

// At returns the occupancy of the cell at (row, col).
func (g Grid) At(row, col int) uint8 {
	return g[row][col]
}

// ParseGrid builds a Grid from three strings of three '0'/'1' runes,
// top row first. This is the form course files use.
func ParseGrid(rows []string) (Grid, error) {
	var g Grid
	if len(rows) != GridSize {
		return g, fmt.Errorf("sim: slice needs %d rows, got %d", GridSize, len(rows))
	}
	for r, row := range rows {
		if len(row) != GridSize {
			return g, fmt.Errorf("sim: slice row %d needs %d cells, got %d", r, GridSize, len(row))
		}
		for c, ch := range row {
			switch ch {
			case '0':
				g[r][c] = 0
			case '1':
				g[r][c] = 1
			default:
				return g, fmt.Errorf("sim: slice row %d has invalid cell %q", r, ch)
			}
		}
	}
	return g, nil
}

// Position is the player's spot inside a cross-section. Row encodes posture
// (see RowJump/RowStand/RowDuck), Col the lateral lane. Both stay in [0,2].
type Position struct {
	Row, Col int
}

// Apply returns the position reached by taking the action, with each axis
// clamped to the grid independently.
func (p Position) Apply(a Action) Position {
	dRow, dCol := a.Delta()
	return Position{
		Row: clampCoord(p.Row + dRow),
		Col: clampCoord(p.Col + dCol),
	}
}

func clampCoord(v int) int {
	if v < 0 {
		return 0
	}
	if v > GridSize-1 {
		return GridSize - 1
	}
	return v
}

// Slot holds a grid that may be absent. An absent slot means the course has
// run out at that point of the window; it is a normal condition, not an
// error, and every call site must handle both cases.
type Slot struct {
	Grid    Grid
	Present bool
}

// PresentSlot wraps a grid in an occupied slot.
func PresentSlot(g Grid) Slot {
	return Slot{Grid: g, Present: true}
}

// AbsentSlot returns the empty slot.
func AbsentSlot() Slot {
	return Slot{}
}

// Window is the two-slice view the state machine resolves against: the slice
// being resolved this turn and the one behind it used for lookahead scoring.
// The lookahead slot goes absent exactly once, permanently, when the course
// is exhausted.
type Window struct {
	Resolution Slot
	Lookahead  Slot
}
