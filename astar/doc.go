// Package astar finds a path between two cells of a grid.Grid using A*
// best-first search with unit-cost moves.
//
// Overview:
//
//   - Every move, orthogonal or diagonal, costs 1. g counts steps from the start.
//   - h is a pluggable Heuristic; the default is SquaredEuclidean, dx²+dy² with
//     no square root. It overestimates long distances, so the search is greedy
//     and the returned path is not guaranteed to be the shortest one. That is
//     intentional and matches the reference behaviour callers depend on.
//   - f = g + h orders the open set. Ties on f go to the node inserted first.
//   - Neighbours are generated in grid.Offsets order, so results are fully
//     deterministic: the same grid, endpoints and options always give the same path.
//
// Per expansion:
//
//  1. Pop the open node with minimum (f, insertion order) and close its cell.
//  2. If it is the goal, walk parent handles back to the start and return the path.
//  3. For each walkable in-bounds neighbour whose cell is not closed, compute
//     g+1, h and f. Skip it when the cell is already open with g ≤ the tentative g;
//     otherwise insert a new node whose parent is the current node.
//
// Search state lives in an arena of nodes addressed by integer handles. Parents
// are handles, never pointers, and the open set is a binary heap keyed by
// (f, handle); handles are allocated in insertion order, so the handle doubles
// as the tie-breaker. Closed and open lookups are indexed by cell, which bounds
// the work by rows×cols expansions.
//
// Outcomes:
//
//   - Success: Result.Found, Result.Path from start to goal inclusive, Result.Cost = len(Path)-1.
//   - ErrNoPath: the open set was exhausted. This is a normal outcome, not a fault.
//   - ErrInvalidInput (via ErrOutOfBounds or ErrBlockedCell) and ErrNilGrid: bad
//     arguments, rejected before any search state is allocated.
//
// Options:
//
//   - WithHeuristic(h):       replace SquaredEuclidean (see Manhattan, Chebyshev, Zero, ScaledManhattan).
//   - WithConnectivity(conn): grid.Conn8 (default) or grid.Conn4.
//
// Incremental use:
//
//	s, err := astar.NewSearch(g, start, goal)
//	for s.Step() == astar.Running {
//	    fmt.Println("expanded", s.Current())
//	}
//	res, err := s.Run() // returns the final result of a finished search
//
// Thread safety:
//
//   - A Grid is read-only and may be shared by concurrent searches.
//   - A Search is owned by one goroutine; FindPath allocates its own state per call.
package astar
