package courses

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// Generator produces random course slices for endless mode.
//
// Every generated slice keeps one column fully clear, and that safe column
// drifts by at most one lane between consecutive slices, so a survivable
// path always exists (step toward the clear lane and stand). Everything
// else fills with obstacles at the configured density.
type Generator struct {
	rng     *rand.Rand
	density float64
	safeCol int
}

// NewGenerator creates a seeded slice generator. Density is the obstacle
// probability per non-safe cell, clamped to [0, 0.9].
func NewGenerator(seed int64, density float64) *Generator {
	if density < 0 {
		density = 0
	}
	if density > 0.9 {
		density = 0.9
	}
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		density: density,
		safeCol: 1,
	}
}

// NextSlice generates one slice and advances the safe column.
func (g *Generator) NextSlice() sim.Grid {
	// Drift the safe column by -1, 0, or +1, staying in bounds.
	g.safeCol += g.rng.Intn(3) - 1
	if g.safeCol < 0 {
		g.safeCol = 0
	}
	if g.safeCol > sim.GridSize-1 {
		g.safeCol = sim.GridSize - 1
	}

	var grid sim.Grid
	for row := 0; row < sim.GridSize; row++ {
		for col := 0; col < sim.GridSize; col++ {
			if col == g.safeCol {
				continue
			}
			if g.rng.Float64() < g.density {
				grid[row][col] = 1
			}
		}
	}
	return grid
}

// SafeCol returns the currently clear lane. Exposed for tests.
func (g *Generator) SafeCol() int {
	return g.safeCol
}

// GenerateCourse builds a finite generated course of n slices. The leading
// slice is always fully open so the starting position is never an instant
// crash.
func GenerateCourse(seed int64, density float64, n int) Course {
	if n < 2 {
		n = 2
	}
	gen := NewGenerator(seed, density)

	slices := make([]sim.Grid, n)
	for i := 1; i < n; i++ {
		slices[i] = gen.NextSlice()
	}

	return Course{
		ID:     fmt.Sprintf("endless-%d", seed),
		Name:   "Endless",
		Slices: slices,
	}
}
