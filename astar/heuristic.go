package astar

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic estimates the remaining cost from one cell to another.
// It must be deterministic; it need not be admissible.
type Heuristic func(from, to grid.Coordinate) int

// SquaredEuclidean returns dx² + dy². No square root is taken.
func SquaredEuclidean(from, to grid.Coordinate) int {
	dr, dc := from.Row-to.Row, from.Col-to.Col
	return dr*dr + dc*dc
}

// Manhattan returns |dx| + |dy|.
func Manhattan(from, to grid.Coordinate) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

// Chebyshev returns max(|dx|, |dy|), the exact move count on an empty Conn8 grid.
func Chebyshev(from, to grid.Coordinate) int {
	return max(abs(from.Row-to.Row), abs(from.Col-to.Col))
}

// Zero always returns 0, which turns A* into uniform-cost search.
func Zero(_, _ grid.Coordinate) int {
	return 0
}

// ScaledManhattan returns a heuristic of k·Manhattan.
func ScaledManhattan(k int) Heuristic {
	return func(from, to grid.Coordinate) int {
		return k * Manhattan(from, to)
	}
}

var heuristics = map[string]Heuristic{
	"squared-euclidean": SquaredEuclidean,
	"manhattan":         Manhattan,
	"chebyshev":         Chebyshev,
	"zero":              Zero,
	"double-manhattan":  ScaledManhattan(2),
}

// HeuristicByName resolves a registered heuristic name. The empty string
// selects the default, SquaredEuclidean.
func HeuristicByName(name string) (Heuristic, error) {
	if name == "" {
		return SquaredEuclidean, nil
	}
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}

	return h, nil
}

// HeuristicNames lists the registered heuristic names in sorted order.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for n := range heuristics {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
