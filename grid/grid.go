package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input, so later changes to cells do not affect the Grid.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadCell (wrapped with the position).
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	rows, cols, err := shape(len(cells), func(r int) int { return len(cells[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r, row := range cells {
		for c, v := range row {
			if v != Walkable && v != Blocked {
				return nil, fmt.Errorf("%w: %d at %s", ErrBadCell, v, C(r, c))
			}
			g.cells[r*cols+c] = v
		}
	}

	return g, nil
}

// FromInts builds a Grid from integers: 0 is walkable, any other value is blocked.
func FromInts(values [][]int) (*Grid, error) {
	rows, cols, err := shape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r, row := range values {
		for c, v := range row {
			if v != 0 {
				g.cells[r*cols+c] = Blocked
			}
		}
	}

	return g, nil
}

// Parse builds a Grid from text rows. '.' and '0' are walkable, '#' and '1' are blocked.
// Surrounding whitespace on each row is ignored.
func Parse(lines []string) (*Grid, error) {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSpace(l)
	}
	rows, cols, err := shape(len(trimmed), func(r int) int { return len(trimmed[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r, line := range trimmed {
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '.', '0':
			case '#', '1':
				g.cells[r*cols+c] = Blocked
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadCell, line[c], C(r, c))
			}
		}
	}

	return g, nil
}

// shape validates row count and row lengths, returning the dimensions.
func shape(n int, rowLen func(int) int) (rows, cols int, err error) {
	if n == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	cols = rowLen(0)
	for r := 1; r < n; r++ {
		if rowLen(r) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, rowLen(r), cols)
		}
	}

	return n, cols, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells, the upper bound on A* expansions.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c. Out-of-bounds coordinates report Blocked.
func (g *Grid) At(c Coordinate) Cell {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.cells[g.Index(c)]
}

// IsWalkable reports whether c is in bounds and not blocked.
func (g *Grid) IsWalkable(c Coordinate) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] == Walkable
}

// Index maps c to its row-major index: Row*Cols + Col.
// The result is meaningless for out-of-bounds coordinates.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors appends to dst the in-bounds walkable neighbours of c, in the
// canonical order of Offsets(conn), and returns the extended slice.
// Passing a reused dst[:0] avoids an allocation per call.
func (g *Grid) Neighbors(dst []Coordinate, c Coordinate, conn Connectivity) []Coordinate {
	for _, d := range Offsets(conn) {
		n := c.Add(d)
		if g.IsWalkable(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// String renders the grid one row per line using Cell glyphs.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteString(g.cells[r*g.cols+c].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
