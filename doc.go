// Package gridpath finds shortest paths on rectangular grids of walkable and
// blocked cells with the A* algorithm.
//
// What is gridpath?
//
//	A small, deterministic library plus a scenario runner:
//		• grid:     the grid model, 4/8-neighbourhoods, connected regions
//		• astar:    A* search (FindPath) and an incremental Search stepper
//		• fixtures: named YAML scenarios with expected outcomes
//		• cmd/gridpath: command-line runner for the scenarios
//
// Moves are unit cost in all eight directions. The default heuristic is the
// squared Euclidean distance; ties between equal f-scores go to the node
// created first, so the same input always yields the same path.
//
// Quick ASCII example:
//
//	S . . # .
//	. . . # .
//	. . . . G
//
//	FindPath returns [(0,0) (1,1) (2,2) (2,3) (2,4)]: four moves.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
