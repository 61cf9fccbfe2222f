// Package fixtures loads named pathfinding scenarios: a grid, two endpoints,
// search options and the outcome the search is expected to produce.
//
// Scenarios are YAML documents of the form
//
//	scenarios:
//	  - name: wall-gap
//	    rows: ["....#.....", ...]
//	    start: [0, 0]
//	    goal: [7, 6]
//	    heuristic: squared-euclidean   # optional, see astar.HeuristicNames
//	    connectivity: 8                # optional, 4 or 8
//	    expect: {outcome: found, cost: 7}
//
// A catalogue of built-in scenarios is embedded in the package and returned by Builtin.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for scenario loading and checking.
var (
	// ErrNoScenarios indicates a document without any scenario.
	ErrNoScenarios = errors.New("fixtures: no scenarios defined")
	// ErrDuplicateName indicates two scenarios share a name.
	ErrDuplicateName = errors.New("fixtures: duplicate scenario name")
	// ErrBadScenario indicates a scenario with missing or malformed fields.
	ErrBadScenario = errors.New("fixtures: malformed scenario")
	// ErrUnknownScenario indicates Lookup found no scenario with the given name.
	ErrUnknownScenario = errors.New("fixtures: unknown scenario")
	// ErrMismatch indicates a search result that differs from the scenario's expectation.
	ErrMismatch = errors.New("fixtures: result does not match expectation")
)

// Outcome is the expected kind of search result.
type Outcome string

const (
	// Found expects a path.
	Found Outcome = "found"
	// NotFound expects astar.ErrNoPath.
	NotFound Outcome = "not-found"
	// Invalid expects an astar.ErrInvalidInput rejection.
	Invalid Outcome = "invalid"
)

// Expectation describes the result a scenario should produce.
// Cost is checked only for Found and only when set.
type Expectation struct {
	Outcome Outcome `yaml:"outcome"`
	Cost    *int    `yaml:"cost,omitempty"`
}

// Scenario is one named search problem.
type Scenario struct {
	Name         string      `yaml:"name"`
	Description  string      `yaml:"description,omitempty"`
	Rows         []string    `yaml:"rows"`
	Start        []int       `yaml:"start"`
	Goal         []int       `yaml:"goal"`
	Heuristic    string      `yaml:"heuristic,omitempty"`
	Connectivity int         `yaml:"connectivity,omitempty"`
	Expect       Expectation `yaml:"expect"`
}

type document struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

//go:embed scenarios.yaml
var builtinYAML []byte

var builtin = sync.OnceValues(func() ([]Scenario, error) {
	return Parse(builtinYAML)
})

// Builtin returns the embedded scenario catalogue.
// The returned slice is shared; callers must not modify it.
func Builtin() ([]Scenario, error) {
	return builtin()
}

// Parse decodes and validates a YAML scenario document.
func Parse(data []byte) ([]Scenario, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes a YAML scenario document from r. Unknown keys are rejected.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("fixtures: decode: %w", err)
	}

	return validate(doc.Scenarios)
}

// LoadFile reads a YAML scenario document from path.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Lookup returns the scenario called name.
func Lookup(scenarios []Scenario, name string) (Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}

	return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

func validate(scenarios []Scenario) ([]Scenario, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	seen := make(map[string]bool, len(scenarios))
	for i, s := range scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: scenario #%d has no name", ErrBadScenario, i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = true
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadScenario, s.Name, err)
		}
	}

	return scenarios, nil
}

func (s Scenario) validate() error {
	if len(s.Start) != 2 || len(s.Goal) != 2 {
		return errors.New("start and goal must be [row, col]")
	}
	switch s.Expect.Outcome {
	case Found, NotFound, Invalid:
	default:
		return fmt.Errorf("unknown outcome %q", s.Expect.Outcome)
	}
	if _, err := s.Options(); err != nil {
		return err
	}
	_, err := s.Grid()

	return err
}

// Grid parses the scenario rows.
func (s Scenario) Grid() (*grid.Grid, error) {
	return grid.Parse(s.Rows)
}

// StartCoord returns the start as a grid.Coordinate.
func (s Scenario) StartCoord() grid.Coordinate { return grid.C(s.Start[0], s.Start[1]) }

// GoalCoord returns the goal as a grid.Coordinate.
func (s Scenario) GoalCoord() grid.Coordinate { return grid.C(s.Goal[0], s.Goal[1]) }

// Conn maps the connectivity field to grid.Conn4 or grid.Conn8 (the default).
func (s Scenario) Conn() (grid.Connectivity, error) {
	switch s.Connectivity {
	case 0, 8:
		return grid.Conn8, nil
	case 4:
		return grid.Conn4, nil
	default:
		return 0, fmt.Errorf("connectivity must be 4 or 8, got %d", s.Connectivity)
	}
}

// Options translates the heuristic and connectivity fields into astar options.
func (s Scenario) Options() ([]astar.Option, error) {
	h, err := astar.HeuristicByName(s.Heuristic)
	if err != nil {
		return nil, err
	}
	conn, err := s.Conn()
	if err != nil {
		return nil, err
	}

	return []astar.Option{astar.WithHeuristic(h), astar.WithConnectivity(conn)}, nil
}

// Run executes the scenario. extra options are applied after the scenario's own.
func (s Scenario) Run(extra ...astar.Option) (astar.Result, error) {
	g, err := s.Grid()
	if err != nil {
		return astar.Result{}, err
	}
	opts, err := s.Options()
	if err != nil {
		return astar.Result{}, err
	}

	return astar.FindPath(g, s.StartCoord(), s.GoalCoord(), append(opts, extra...)...)
}

// Check compares a search result with the scenario's expectation and
// returns ErrMismatch, annotated with the difference, when they disagree.
func (s Scenario) Check(res astar.Result, err error) error {
	switch s.Expect.Outcome {
	case Found:
		if err != nil || !res.Found {
			return fmt.Errorf("%w: %s: want path, got %v", ErrMismatch, s.Name, err)
		}
		if s.Expect.Cost != nil && *s.Expect.Cost != res.Cost {
			return fmt.Errorf("%w: %s: want cost %d, got %d", ErrMismatch, s.Name, *s.Expect.Cost, res.Cost)
		}
	case NotFound:
		if !errors.Is(err, astar.ErrNoPath) {
			return fmt.Errorf("%w: %s: want %v, got cost=%d err=%v", ErrMismatch, s.Name, astar.ErrNoPath, res.Cost, err)
		}
	case Invalid:
		if !errors.Is(err, astar.ErrInvalidInput) {
			return fmt.Errorf("%w: %s: want invalid input, got err=%v", ErrMismatch, s.Name, err)
		}
	}

	return nil
}
