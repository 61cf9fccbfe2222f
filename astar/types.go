package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNoPath indicates the open set was exhausted before the goal was reached.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidInput is the parent of every endpoint validation error.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrOutOfBounds indicates that start or goal lies outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: coordinate out of bounds", ErrInvalidInput)

	// ErrBlockedCell indicates that start or goal is a blocked cell.
	ErrBlockedCell = fmt.Errorf("%w: coordinate is blocked", ErrInvalidInput)

	// ErrNilHeuristic is raised (via panic) by WithHeuristic(nil).
	ErrNilHeuristic = errors.New("astar: heuristic must not be nil")

	// ErrBadConnectivity is raised (via panic) by WithConnectivity with an unknown value.
	ErrBadConnectivity = errors.New("astar: connectivity must be grid.Conn4 or grid.Conn8")

	// ErrUnknownHeuristic indicates HeuristicByName was given an unregistered name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// State is the lifecycle of a Search.
type State int

const (
	// Running means the goal has not been dequeued and the open set is non-empty.
	Running State = iota
	// Succeeded means the goal was dequeued and a path is available.
	Succeeded
	// Exhausted means the open set emptied without reaching the goal.
	Exhausted
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result contains the outcome of a search.
type Result struct {
	Path     []grid.Coordinate // start..goal inclusive; nil unless Found
	Cost     int               // g of the goal node: number of moves
	Expanded int               // cells moved to the closed set
	Created  int               // nodes allocated, start included
	Found    bool
}

// Options configures the search.
//
// Heuristic    – estimate of remaining cost; must be non-nil. Default SquaredEuclidean.
// Connectivity – grid.Conn8 (default) or grid.Conn4.
type Options struct {
	Heuristic    Heuristic
	Connectivity grid.Connectivity
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns 8-connectivity with the squared Euclidean heuristic.
func DefaultOptions() Options {
	return Options{
		Heuristic:    SquaredEuclidean,
		Connectivity: grid.Conn8,
	}
}

// WithHeuristic replaces the heuristic. A nil heuristic panics with ErrNilHeuristic.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithConnectivity selects 4- or 8-directional movement.
// Values other than grid.Conn4 and grid.Conn8 panic with ErrBadConnectivity.
func WithConnectivity(conn grid.Connectivity) Option {
	if !conn.Valid() {
		panic(ErrBadConnectivity.Error())
	}
	return func(o *Options) {
		o.Connectivity = conn
	}
}
