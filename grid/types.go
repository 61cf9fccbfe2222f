package grid

import "strconv"

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Walkable cells may be entered.
	Walkable Cell = iota
	// Blocked cells are walls.
	Blocked
)

// String returns "." for Walkable, "#" for Blocked and "?" otherwise.
func (c Cell) String() string {
	switch c {
	case Walkable:
		return "."
	case Blocked:
		return "#"
	default:
		return "?"
	}
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: W, E, N, S.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
)

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// String returns "4" or "8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	default:
		return "Connectivity(" + strconv.Itoa(int(c)) + ")"
	}
}

// Coordinate identifies a cell by row and column.
type Coordinate struct {
	Row, Col int
}

// C is shorthand for Coordinate{Row: row, Col: col}.
func C(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Add returns c shifted by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// offsets8 is the canonical move order. Conn4 is its prefix of length 4.
var offsets8 = [8]Coordinate{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Offsets returns the move offsets for conn in canonical order.
// The returned slice must not be modified.
// Unknown connectivity values are treated as Conn8.
func Offsets(conn Connectivity) []Coordinate {
	if conn == Conn4 {
		return offsets8[:4]
	}
	return offsets8[:]
}

// Grid is an immutable rectangular grid of cells.
// Cells are stored row-major: cells[row*cols+col].
type Grid struct {
	rows, cols int
	cells      []Cell
}
