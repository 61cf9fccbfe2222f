package astar

import "github.com/katalvlaran/gridpath/grid"

// handle addresses a node in the arena. Handles are allocated sequentially,
// so comparing two handles compares insertion order.
type handle int32

// noParent marks the root of a parent chain and an empty open slot.
const noParent handle = -1

// node is one grid cell discovered during a search.
type node struct {
	pos    grid.Coordinate
	g, h   int
	f      int
	parent handle
}

// arena owns every node created by one search.
type arena struct {
	nodes []node
}

func newArena(capacity int) *arena {
	return &arena{nodes: make([]node, 0, capacity)}
}

// alloc appends a node and returns its handle.
func (a *arena) alloc(pos grid.Coordinate, g, h int, parent handle) handle {
	a.nodes = append(a.nodes, node{pos: pos, g: g, h: h, f: g + h, parent: parent})
	return handle(len(a.nodes) - 1)
}

func (a *arena) at(h handle) *node {
	return &a.nodes[h]
}

func (a *arena) len() int {
	return len(a.nodes)
}

// path walks parent handles from h to the root and returns the cells root-first.
func (a *arena) path(h handle) []grid.Coordinate {
	n := 0
	for cur := h; cur != noParent; cur = a.nodes[cur].parent {
		n++
	}
	out := make([]grid.Coordinate, n)
	for cur := h; cur != noParent; cur = a.nodes[cur].parent {
		n--
		out[n] = a.nodes[cur].pos
	}

	return out
}
