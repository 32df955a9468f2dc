package align

// grid is a row-major (n+1)×(m+1) score matrix backed by a flat slice.
// Row-major flat storage keeps the DP sweep cache-friendly and avoids the
// per-row allocations of a [][]int.
//
// The grid is written exactly once (during the DP fill) and is read-only
// during traceback, so multiple maxima can be traced independently.
type grid struct {
	rows, cols int
	v          []int
}

// newGrid allocates a zeroed rows×cols grid.
// Complexity: O(rows·cols) time and memory.
func newGrid(rows, cols int) *grid {
	return &grid{rows: rows, cols: cols, v: make([]int, rows*cols)}
}

// at returns the score at (i, j). Callers stay within bounds by
// construction; the flat index is i*cols+j.
func (g *grid) at(i, j int) int {
	return g.v[i*g.cols+j]
}

// set stores s at (i, j).
func (g *grid) set(i, j, s int) {
	g.v[i*g.cols+j] = s
}
