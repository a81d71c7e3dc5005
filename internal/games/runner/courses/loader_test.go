package courses

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

func TestBuiltinCourses(t *testing.T) {
	builtin := Builtin()
	if len(builtin) == 0 {
		t.Fatal("there should be embedded built-in courses")
	}

	seen := make(map[string]bool)
	for _, c := range builtin {
		if err := c.Validate(); err != nil {
			t.Errorf("built-in course %q invalid: %v", c.ID, err)
		}
		if seen[c.ID] {
			t.Errorf("duplicate built-in course ID %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestBuiltinCoursesAreBeatable(t *testing.T) {
	// Every shipped course must be completable by a player who always
	// picks some non-fatal move.
	for _, c := range Builtin() {
		state := sim.NewState(sim.NewMapQueue(c.Slices), sim.Position{Row: sim.RowStand, Col: 1})
		for !state.Terminal() {
			moved := false
			for _, a := range sim.Actions() {
				w := state.Window()
				if sim.Reward(a, state.Position(), w.Resolution.Grid, w.Lookahead) != sim.RewardFatal {
					_, state = state.Move(a)
					moved = true
					break
				}
			}
			if !moved {
				t.Fatalf("course %q has an unavoidable crash at move %v", c.ID, state.Position())
			}
		}
		if state.FinalReward() == sim.RewardFatal {
			t.Errorf("course %q ended in a crash despite safe play", c.ID)
		}
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: test
name: Test Course
slices:
  - ["000", "010", "000"]
  - ["111", "000", "000"]
`)
	course, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if course.ID != "test" || course.Name != "Test Course" {
		t.Errorf("metadata wrong: %+v", course)
	}
	if len(course.Slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(course.Slices))
	}
	if course.Slices[0].At(1, 1) != 1 {
		t.Error("slice occupancy parsed wrong")
	}
}

func TestParseYAMLDefaultsNameToID(t *testing.T) {
	course, err := ParseYAML([]byte("id: bare\nslices:\n  - [\"000\", \"000\", \"000\"]\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if course.Name != "bare" {
		t.Errorf("Name = %q, expected fallback to ID", course.Name)
	}
}

func TestParseYAMLRejectsBadCourses(t *testing.T) {
	bad := []string{
		"id: x\nslices: []\n",                          // No slices
		"slices:\n  - [\"000\", \"000\", \"000\"]\n",   // No ID
		"id: x\nslices:\n  - [\"000\", \"00\"]\n",      // Malformed slice
		"id: x\nslices:\n  - [\"000\", \"0a0\", \"000\"]\n", // Invalid cell
	}
	for _, data := range bad {
		if _, err := ParseYAML([]byte(data)); err == nil {
			t.Errorf("ParseYAML should reject %q", data)
		}
	}
}

func TestLoaderDirectoryShadowsBuiltins(t *testing.T) {
	dir := t.TempDir()
	custom := `
id: meadow
name: Custom Meadow
slices:
  - ["000", "000", "000"]
`
	if err := os.WriteFile(filepath.Join(dir, "meadow.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir)
	course, err := l.LoadByID("meadow")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if course.Name != "Custom Meadow" {
		t.Errorf("directory course should shadow the built-in, got %q", course.Name)
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a course"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir)
	all, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != len(Builtin()) {
		t.Errorf("invalid files should be skipped, got %d courses", len(all))
	}
}

func TestLoaderMissingDirFallsBackToBuiltins(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "does-not-exist"))
	all, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll with missing dir failed: %v", err)
	}
	if len(all) != len(Builtin()) {
		t.Errorf("expected only built-ins, got %d", len(all))
	}
}

func TestLoaderLoadByIDUnknown(t *testing.T) {
	l := NewLoader("")
	if _, err := l.LoadByID("no-such-course"); err == nil {
		t.Error("LoadByID should fail for an unknown ID")
	}
}
