// Package grid models a rectangular 2D grid of walkable and blocked
// cells, the search space of the astar package.
//
// What:
//
//   - Grid stores cells row-major and is immutable once built.
//   - Coordinate addresses a cell as (Row, Col); equality is value equality.
//   - Connectivity selects orthogonal (Conn4) or orthogonal+diagonal (Conn8) moves.
//   - Regions labels connected walkable areas, so callers can tell in O(W×H)
//     whether two cells can be joined at all.
//   - Breach reports the fewest blocked cells that separate two cells.
//
// Construction:
//
//   - New([][]Cell)   explicit Walkable/Blocked cells.
//   - FromInts([][]int) 0 = walkable, anything else = blocked.
//   - Parse([]string)  '.' or '0' = walkable, '#' or '1' = blocked.
//
// Neighbour order:
//
//	(0,-1) (0,1) (-1,0) (1,0) (-1,-1) (-1,1) (1,-1) (1,1)
//
// Conn4 uses the first four offsets. The order is part of the contract: the
// astar package generates candidates in exactly this order, which makes its
// tie-breaking reproducible.
//
// Complexity:
//
//   - Construction: O(W×H) time and memory.
//   - InBounds, At, IsWalkable, Index: O(1).
//   - Regions, Breach: O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a cell value or glyph is not recognised.
//   - ErrOutOfBounds: Breach was given a coordinate outside the grid.
package grid
