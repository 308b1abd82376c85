// Package puzzle defines the contract every daily solver implements and a
// registry the command line uses to find them.
//
// A solver receives the raw input text and returns both parts of the answer
// as short strings. Days register themselves from init functions:
//
//	func init() {
//		puzzle.Register(2024, 16, "Reindeer Maze", puzzle.Func(Solve))
//	}
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for the registry.
var (
	// ErrNotRegistered is returned by Lookup for unknown (year, day) keys.
	ErrNotRegistered = errors.New("puzzle: no solver registered")
	// ErrDuplicate is returned when a (year, day) key is registered twice.
	ErrDuplicate = errors.New("puzzle: solver already registered")
)

// NotFound marks a part that has no answer for the given input while the
// other part does.
const NotFound = "not found"

// Answer holds both parts of a day's result.
type Answer struct {
	Part1 string
	Part2 string
}

// NewAnswer formats two values with fmt.Sprint.
func NewAnswer(part1, part2 any) Answer {
	return Answer{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

// Solver solves one day.
type Solver interface {
	Solve(input string) (Answer, error)
}

// Func adapts a plain function to Solver.
type Func func(input string) (Answer, error)

// Solve calls f.
func (f Func) Solve(input string) (Answer, error) { return f(input) }

// Key identifies a day.
type Key struct {
	Year, Day int
}

func (k Key) String() string { return fmt.Sprintf("%d/%02d", k.Year, k.Day) }

// Entry is a registered solver with its title.
type Entry struct {
	Key
	Name   string
	Solver Solver
}

// Registry maps keys to solvers. The zero value is ready to use.
type Registry struct {
	mu      sync.RWMutex
	entries map[Key]Entry
}

// Register adds a solver under (year, day).
func (r *Registry) Register(year, day int, name string, s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[Key]Entry)
	}
	k := Key{Year: year, Day: day}
	if _, ok := r.entries[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, k)
	}
	r.entries[k] = Entry{Key: k, Name: name, Solver: s}
	return nil
}

// Lookup returns the solver registered under (year, day).
func (r *Registry) Lookup(year, day int) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[Key{Year: year, Day: day}]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d/%02d", ErrNotRegistered, year, day)
	}
	return e, nil
}

// All returns every entry ordered by year, then day.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}

var defaultRegistry Registry

// Register adds s to the default registry. It panics on duplicates, which
// can only come from two init functions claiming the same day.
func Register(year, day int, name string, s Solver) {
	if err := defaultRegistry.Register(year, day, name, s); err != nil {
		panic(err)
	}
}

// Lookup searches the default registry.
func Lookup(year, day int) (Entry, error) { return defaultRegistry.Lookup(year, day) }

// All lists the default registry.
func All() []Entry { return defaultRegistry.All() }

// Settings is the read-only view of configuration a solver may consult.
// *viper.Viper satisfies it.
type Settings interface {
	IsSet(key string) bool
	GetInt(key string) int
}

// Configurable is implemented by solvers with tunable parameters.
// WithSettings returns a tuned copy and leaves the receiver unchanged.
type Configurable interface {
	Solver
	WithSettings(s Settings) Solver
}

// Configure applies s to solver when it is Configurable.
func Configure(solver Solver, s Settings) Solver {
	if c, ok := solver.(Configurable); ok && s != nil {
		return c.WithSettings(s)
	}
	return solver
}

// IntSetting returns s[key] when set, otherwise def.
func IntSetting(s Settings, key string, def int) int {
	if s == nil || !s.IsSet(key) {
		return def
	}
	return s.GetInt(key)
}
