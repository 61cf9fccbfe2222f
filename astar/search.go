package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath runs A* on g from start to goal and returns the path.
//
// Returns:
//
//   - Result with Found=true and Path = start..goal inclusive on success.
//   - Result with Found=false and ErrNoPath when the goal is unreachable.
//     Expanded and Created are still populated.
//   - A zero Result and ErrNilGrid, ErrOutOfBounds or ErrBlockedCell for bad input.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be in bounds (ErrOutOfBounds) and walkable (ErrBlockedCell).
//  3. goal must be in bounds (ErrOutOfBounds) and walkable (ErrBlockedCell).
//
// Complexity:
//
//   - Time:  O(W·H·d·log(W·H)), each cell expanded at most once.
//   - Space: O(W·H) for the per-cell open and closed indexes.
func FindPath(g *grid.Grid, start, goal grid.Coordinate, opts ...Option) (Result, error) {
	s, err := NewSearch(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Run()
}

// Search holds the mutable state of one A* execution and lets callers
// advance it one expansion at a time.
type Search struct {
	g    *grid.Grid
	goal grid.Coordinate
	opts Options

	nodes  *arena
	open   openQueue
	openAt []handle // best open handle per cell, noParent if the cell is not open
	closed []bool   // per cell
	nbrs   []grid.Coordinate

	state    State
	current  grid.Coordinate
	found    handle
	live     int // cells currently open
	expanded int
}

// NewSearch validates the arguments and returns a Search in the Running state
// with only start in the open set.
func NewSearch(g *grid.Grid, start, goal grid.Coordinate, opts ...Option) (*Search, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	cells := g.Len()
	s := &Search{
		g:      g,
		goal:   goal,
		opts:   cfg,
		nodes:  newArena(min(cells, 64)),
		openAt: make([]handle, cells),
		closed: make([]bool, cells),
		nbrs:   make([]grid.Coordinate, 0, 8),
		state:  Running,
		found:  noParent,
	}
	s.open.nodes = s.nodes
	for i := range s.openAt {
		s.openAt[i] = noParent
	}
	s.push(start, 0, noParent)

	return s, nil
}

func checkEndpoint(g *grid.Grid, name string, c grid.Coordinate) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %s outside %dx%d grid", ErrOutOfBounds, name, c, g.Rows(), g.Cols())
	}
	if g.At(c) == grid.Blocked {
		return fmt.Errorf("%w: %s %s", ErrBlockedCell, name, c)
	}

	return nil
}

// State reports the lifecycle state.
func (s *Search) State() State { return s.state }

// Current returns the most recently expanded cell. Before the first Step it is the zero Coordinate.
func (s *Search) Current() grid.Coordinate { return s.current }

// OpenLen returns the number of cells currently in the open set.
func (s *Search) OpenLen() int { return s.live }

// Expanded returns the number of cells closed so far.
func (s *Search) Expanded() int { return s.expanded }

// Step performs one iteration of the main loop: it closes the best open cell
// and, unless that cell is the goal, pushes its candidate neighbours.
// It returns the state after the step. Stepping a finished search is a no-op.
func (s *Search) Step() State {
	if s.state != Running {
		return s.state
	}
	for s.open.Len() > 0 {
		h := heap.Pop(&s.open).(handle)
		cur := *s.nodes.at(h)
		idx := s.g.Index(cur.pos)
		// Superseded by a cheaper entry for the same cell, or already closed.
		if s.closed[idx] || s.openAt[idx] != h {
			continue
		}
		s.openAt[idx] = noParent
		s.live--
		s.closed[idx] = true
		s.expanded++
		s.current = cur.pos

		if cur.pos == s.goal {
			s.found = h
			s.state = Succeeded
			return s.state
		}
		s.expand(h, cur)

		return s.state
	}
	s.state = Exhausted

	return s.state
}

// expand generates the candidates of the node at h.
// cur is a copy of that node; pushes may grow the arena and move it.
func (s *Search) expand(h handle, cur node) {
	s.nbrs = s.g.Neighbors(s.nbrs[:0], cur.pos, s.opts.Connectivity)
	for _, p := range s.nbrs {
		idx := s.g.Index(p)
		if s.closed[idx] {
			continue
		}
		g := cur.g + 1
		// An open entry that is at least as cheap wins.
		if o := s.openAt[idx]; o != noParent && s.nodes.at(o).g <= g {
			continue
		}
		s.push(p, g, h)
	}
}

// push allocates a node for pos and makes it the open entry of its cell.
func (s *Search) push(pos grid.Coordinate, g int, parent handle) {
	h := s.nodes.alloc(pos, g, s.opts.Heuristic(pos, s.goal), parent)
	idx := s.g.Index(pos)
	if s.openAt[idx] == noParent {
		s.live++
	}
	s.openAt[idx] = h
	heap.Push(&s.open, h)
}

// Result returns the outcome so far. Path and Cost are set only once the
// search has Succeeded.
func (s *Search) Result() Result {
	res := Result{
		Expanded: s.expanded,
		Created:  s.nodes.len(),
	}
	if s.state == Succeeded {
		res.Found = true
		res.Path = s.nodes.path(s.found)
		res.Cost = s.nodes.at(s.found).g
	}

	return res
}

// Run steps the search to completion. It returns ErrNoPath alongside the
// Result when the open set is exhausted.
func (s *Search) Run() (Result, error) {
	for s.Step() == Running {
	}
	if s.state == Exhausted {
		return s.Result(), ErrNoPath
	}

	return s.Result(), nil
}
