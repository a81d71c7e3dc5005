// Package runner adapts the lane-runner simulation to the arcade platform.
// The simulation itself is turn-based: one key press resolves one turn.
// Ticks only drive the cosmetic scroll animation between turns.
package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/courses"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCourse  Mode = "course"
	ModeEndless Mode = "endless"
)

// Game implements the lane-runner game.
type Game struct {
	mode Mode
	cfg  config.RunnerConfig
	tick uint64
	seed int64

	// Course and simulation state
	course  courses.Course
	session *sim.Session
	loadErr error

	// Last resolved turn, for the HUD
	lastAction sim.Action
	lastReward int
	hasLast    bool

	// Cosmetic scroll animation countdown (ticks remaining)
	scrollAnim int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	saved    bool // Run already persisted by the platform
}

// Package-level selection set by the CLI/menu before Reset (like the
// other games' config pattern).
var (
	configPath       string
	selectedCourseID string
	courseDir        string
)

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetCourseID selects which course the next Reset loads (course mode).
func SetCourseID(id string) {
	selectedCourseID = id
}

// GetCourseID returns the currently selected course ID.
func GetCourseID() string {
	return selectedCourseID
}

// SetCourseDir sets an extra directory to load course files from.
func SetCourseDir(dir string) {
	courseDir = dir
}

// New creates a course-mode runner game.
func New() *Game {
	return &Game{mode: ModeCourse}
}

// NewEndless creates an endless-mode runner game with a generated course.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
	registry.Register("runner_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "runner_endless"
	}
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Lane Runner (Endless)"
	}
	return "Lane Runner"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.tooSmall = false
	g.saved = false
	g.hasLast = false
	g.scrollAnim = 0
	g.loadErr = nil

	runnerCfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.loadErr = err
		return
	}
	g.cfg = runnerCfg

	if g.mode == ModeEndless {
		g.course = courses.GenerateCourse(cfg.Seed, runnerCfg.Endless.Density, runnerCfg.Endless.Length)
	} else {
		g.course, err = g.loadCourse()
		if err != nil {
			g.loadErr = err
			return
		}
	}

	start := sim.Position{Row: runnerCfg.Player.StartRow, Col: runnerCfg.Player.StartCol}
	g.session = sim.NewSession(g.course.Slices, start)
	g.checkScreenSize()
}

// loadCourse resolves the selected course ID, falling back to the first
// built-in course when nothing is selected.
func (g *Game) loadCourse() (courses.Course, error) {
	loader := courses.NewLoader(courseDir)
	if selectedCourseID != "" {
		return loader.LoadByID(selectedCourseID)
	}
	builtin := courses.Builtin()
	if len(builtin) == 0 {
		return courses.Course{}, fmt.Errorf("runner: no courses available")
	}
	return builtin[0], nil
}

// checkScreenSize verifies both grid panels fit on screen.
func (g *Game) checkScreenSize() {
	requiredW := 2*g.panelWidth() + 6
	requiredH := g.panelHeight() + hudHeight + 3
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one tick. The simulation only moves when a
// move action is pressed; everything else is presentation bookkeeping.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.scrollAnim > 0 {
		g.scrollAnim--
	}

	if g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.session.Finished() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.seed + 1,
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.session.Finished() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if move, ok := moveFromInput(input); ok {
		outcome := g.session.Step(move)
		g.lastAction = move
		g.lastReward = outcome.Reward
		g.hasLast = true
		if !outcome.Terminal {
			g.scrollAnim = g.cfg.Render.ScrollTicks
		}
	}

	return core.StepResult{State: g.State()}
}

// moveFromInput maps a pressed platform action to a simulation action.
// At most one move resolves per frame; the order is fixed so simultaneous
// presses stay deterministic.
func moveFromInput(input core.InputFrame) (sim.Action, bool) {
	switch {
	case input.Has(core.ActionLeft):
		return sim.ActionLeft, true
	case input.Has(core.ActionRight):
		return sim.ActionRight, true
	case input.Has(core.ActionJump):
		return sim.ActionJump, true
	case input.Has(core.ActionDuck):
		return sim.ActionDuck, true
	case input.Has(core.ActionStay):
		return sim.ActionStay, true
	}
	return sim.ActionStay, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	finished := g.loadErr != nil
	score := 0
	if g.session != nil {
		finished = finished || g.session.Finished()
		score = g.session.TotalReward()
	}
	return core.GameState{
		Score:    score,
		GameOver: finished,
		Paused:   g.paused,
	}
}

// Session exposes the underlying run for the platform to persist results.
func (g *Game) Session() *sim.Session {
	return g.session
}

// CourseID returns the ID of the course being played.
func (g *Game) CourseID() string {
	return g.course.ID
}

// MarkSaved records that the platform persisted the finished run, so it
// is not saved twice.
func (g *Game) MarkSaved() { g.saved = true }

// Saved reports whether the finished run was already persisted.
func (g *Game) Saved() bool { return g.saved }
