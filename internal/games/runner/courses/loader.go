package courses

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader loads courses from a directory, layered over the built-in set.
// Directory courses with the same ID shadow built-ins.
type Loader struct {
	Root string // Optional course directory; empty means built-ins only
}

// NewLoader creates a course loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// Builtin returns the embedded courses, sorted by ID.
// The embedded files are compiled in and always parse; a failure here is a
// build defect, so it panics rather than returning an error.
func Builtin() []Course {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("courses: embedded course dir unreadable: %v", err))
	}

	out := make([]Course, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("courses: embedded course %s unreadable: %v", e.Name(), err))
		}
		course, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("courses: embedded course %s invalid: %v", e.Name(), err))
		}
		out = append(out, course)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadAll returns all available courses: built-ins plus any valid course
// files under Root. Invalid files are skipped. Results are sorted by ID.
func (l *Loader) LoadAll() ([]Course, error) {
	byID := make(map[string]Course)
	for _, c := range Builtin() {
		byID[c.ID] = c
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
				return nil
			}

			course, err := l.LoadFile(path)
			if err != nil {
				// Skip invalid files
				return nil
			}
			byID[course.ID] = course
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("walking course directory %s: %w", l.Root, err)
		}
	}

	out := make([]Course, 0, len(byID))
	for _, c := range byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LoadFile loads a single course file.
func (l *Loader) LoadFile(path string) (Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Course{}, fmt.Errorf("reading course file %s: %w", path, err)
	}

	course, err := ParseYAML(data)
	if err != nil {
		return Course{}, fmt.Errorf("parsing course file %s: %w", path, err)
	}

	course.FilePath = path
	return course, nil
}

// LoadByID returns a specific course by ID.
func (l *Loader) LoadByID(id string) (Course, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Course{}, err
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, fmt.Errorf("course not found: %s", id)
}

// ListIDs returns all course IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, c := range all {
		ids[i] = c.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
