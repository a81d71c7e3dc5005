package batch

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/games/runner/courses"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// Config controls a batch evaluation.
type Config struct {
	Runs     int    // Number of independent simulations
	Workers  int    // Concurrent workers; defaults to 4
	Policy   string // "random" or "greedy"
	Seed     int64  // Base seed; run i uses Seed+i
	StartRow int
	StartCol int
}

// Report aggregates the outcomes of a batch evaluation.
type Report struct {
	CourseID    string
	Policy      string
	Runs        int
	Completed   int
	Crashed     int
	TotalReward int
	TotalMoves  int
}

// CompletionRate returns the fraction of runs that finished the course.
func (r Report) CompletionRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Completed) / float64(r.Runs)
}

// MeanReward returns the average total reward per run.
func (r Report) MeanReward() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.TotalReward) / float64(r.Runs)
}

// MeanMoves returns the average number of moves per run.
func (r Report) MeanMoves() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.TotalMoves) / float64(r.Runs)
}

// String renders the report in a compact one-line form.
func (r Report) String() string {
	return fmt.Sprintf(
		"course=%s policy=%s runs=%d completed=%d crashed=%d completion=%.1f%% mean_reward=%.2f mean_moves=%.2f",
		r.CourseID, r.Policy, r.Runs, r.Completed, r.Crashed,
		r.CompletionRate()*100, r.MeanReward(), r.MeanMoves(),
	)
}

// Evaluator runs independent simulations of one course concurrently.
type Evaluator struct {
	cfg    Config
	logger *log.Logger
}

// NewEvaluator creates an evaluator. The logger may be nil for silent runs.
func NewEvaluator(cfg Config, logger *log.Logger) (*Evaluator, error) {
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("batch: runs must be positive, got %d", cfg.Runs)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if _, ok := NewPolicy(cfg.Policy, 0); !ok {
		return nil, fmt.Errorf("batch: unknown policy %q", cfg.Policy)
	}
	return &Evaluator{cfg: cfg, logger: logger}, nil
}

// Evaluate plays cfg.Runs independent sessions of the course and aggregates
// the results. Each run uses its own policy instance and map queue, so runs
// never share mutable state.
func (e *Evaluator) Evaluate(course courses.Course) Report {
	report := Report{
		CourseID: course.ID,
		Policy:   e.cfg.Policy,
		Runs:     e.cfg.Runs,
	}
	start := sim.Position{Row: e.cfg.StartRow, Col: e.cfg.StartCol}

	jobs := make(chan int)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < e.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				policy, _ := NewPolicy(e.cfg.Policy, e.cfg.Seed+int64(i))
				session := e.playRun(course, start, policy)

				mu.Lock()
				report.TotalReward += session.TotalReward()
				report.TotalMoves += session.Moves()
				if session.Outcome() == sim.OutcomeCompleted {
					report.Completed++
				} else {
					report.Crashed++
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < e.cfg.Runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if e.logger != nil {
		e.logger.Info("batch evaluation finished",
			"course", report.CourseID,
			"policy", report.Policy,
			"runs", report.Runs,
			"completed", report.Completed,
			"mean_reward", fmt.Sprintf("%.2f", report.MeanReward()),
		)
	}
	return report
}

func (e *Evaluator) playRun(course courses.Course, start sim.Position, policy Policy) *sim.Session {
	session := sim.NewSession(course.Slices, start)
	for !session.Finished() {
		session.Step(policy.Choose(session.State()))
	}
	return session
}
