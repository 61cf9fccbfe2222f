package fixtures_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/fixtures"
	"github.com/katalvlaran/gridpath/grid"
)

// TestBuiltin_Expectations runs every embedded scenario and checks its expectation.
func TestBuiltin_Expectations(t *testing.T) {
	scenarios, err := fixtures.Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			res, err := s.Run()
			assert.NoError(t, s.Check(res, err))
		})
	}
}

func TestBuiltin_WallGap(t *testing.T) {
	scenarios, err := fixtures.Builtin()
	require.NoError(t, err)

	s, err := fixtures.Lookup(scenarios, "wall-gap")
	require.NoError(t, err)
	assert.Equal(t, grid.C(0, 0), s.StartCoord())
	assert.Equal(t, grid.C(7, 6), s.GoalCoord())

	g, err := s.Grid()
	require.NoError(t, err)
	assert.Equal(t, 10, g.Rows())
	for r := 0; r < 10; r++ {
		wantBlocked := r != 5 && r != 9
		assert.Equal(t, wantBlocked, !g.IsWalkable(grid.C(r, 4)), "row %d column 4", r)
	}

	// Aliased rows share the same layout.
	rev, err := fixtures.Lookup(scenarios, "wall-gap-reverse")
	require.NoError(t, err)
	assert.Equal(t, s.Rows, rev.Rows)
}

func TestLookup_Unknown(t *testing.T) {
	scenarios, err := fixtures.Builtin()
	require.NoError(t, err)
	_, err = fixtures.Lookup(scenarios, "nope")
	assert.ErrorIs(t, err, fixtures.ErrUnknownScenario)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Empty", "", fixtures.ErrNoScenarios},
		{"NoScenarios", "scenarios: []", fixtures.ErrNoScenarios},
		{"NoName", `scenarios: [{rows: ["."], start: [0,0], goal: [0,0], expect: {outcome: found}}]`, fixtures.ErrBadScenario},
		{"Duplicate", `scenarios:
  - {name: a, rows: ["."], start: [0,0], goal: [0,0], expect: {outcome: found}}
  - {name: a, rows: ["."], start: [0,0], goal: [0,0], expect: {outcome: found}}`, fixtures.ErrDuplicateName},
		{"ShortStart", `scenarios: [{name: a, rows: ["."], start: [0], goal: [0,0], expect: {outcome: found}}]`, fixtures.ErrBadScenario},
		{"BadOutcome", `scenarios: [{name: a, rows: ["."], start: [0,0], goal: [0,0], expect: {outcome: maybe}}]`, fixtures.ErrBadScenario},
		{"BadHeuristic", `scenarios: [{name: a, rows: ["."], start: [0,0], goal: [0,0], heuristic: euclid, expect: {outcome: found}}]`, fixtures.ErrBadScenario},
		{"BadConnectivity", `scenarios: [{name: a, rows: ["."], start: [0,0], goal: [0,0], connectivity: 6, expect: {outcome: found}}]`, fixtures.ErrBadScenario},
		{"BadRows", `scenarios: [{name: a, rows: ["..", "."], start: [0,0], goal: [0,0], expect: {outcome: found}}]`, fixtures.ErrBadScenario},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixtures.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := fixtures.Parse([]byte(`scenarios: [{name: a, rows: ["."], start: [0,0], goal: [0,0], colour: red, expect: {outcome: found}}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadFile(t *testing.T) {
	doc := `scenarios:
  - name: corridor
    rows: ["....."]
    start: [0, 0]
    goal: [0, 4]
    connectivity: 4
    heuristic: manhattan
    expect: {outcome: found, cost: 4}
`
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	scenarios, err := fixtures.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	conn, err := scenarios[0].Conn()
	require.NoError(t, err)
	assert.Equal(t, grid.Conn4, conn)

	res, err := scenarios[0].Run()
	require.NoError(t, err)
	assert.Equal(t, 4, res.Cost)
	assert.NoError(t, scenarios[0].Check(res, err))

	// Extra options are applied after the scenario's own.
	res, err = scenarios[0].Run(astar.WithHeuristic(astar.Zero))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Expanded)

	_, err = fixtures.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestCheck_Mismatch exercises each outcome against the wrong result.
func TestCheck_Mismatch(t *testing.T) {
	cost := 3
	found := fixtures.Scenario{Name: "f", Expect: fixtures.Expectation{Outcome: fixtures.Found, Cost: &cost}}
	notFound := fixtures.Scenario{Name: "n", Expect: fixtures.Expectation{Outcome: fixtures.NotFound}}
	invalid := fixtures.Scenario{Name: "i", Expect: fixtures.Expectation{Outcome: fixtures.Invalid}}

	ok := astar.Result{Found: true, Cost: 3}
	assert.NoError(t, found.Check(ok, nil))
	assert.ErrorIs(t, found.Check(astar.Result{Found: true, Cost: 4}, nil), fixtures.ErrMismatch)
	assert.ErrorIs(t, found.Check(astar.Result{}, astar.ErrNoPath), fixtures.ErrMismatch)

	assert.NoError(t, notFound.Check(astar.Result{}, astar.ErrNoPath))
	assert.ErrorIs(t, notFound.Check(ok, nil), fixtures.ErrMismatch)

	assert.NoError(t, invalid.Check(astar.Result{}, astar.ErrBlockedCell))
	assert.ErrorIs(t, invalid.Check(astar.Result{}, astar.ErrNoPath), fixtures.ErrMismatch)
}
