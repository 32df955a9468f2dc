package align

import "sort"

// Locate — Smith–Waterman local alignment with multi-maxima extraction.
//
// Description:
//
//	Locate finds every locally similar substring pair of a and b whose
//	alignment score is positive and whose spans meet opts.MinLength.
//	The floor-at-zero rule lets each alignment start and end anywhere,
//	which is what distinguishes local from global alignment.
//
// Algorithm Outline:
//  1. Validate opts (unknown Variant / negative MinLength are rejected
//     before any computation).
//  2. Fill an (n+1)×(m+1) score grid with the recurrence
//     g[i][j] = max(0,
//     g[i-1][j-1] + substitute(a[i-1], b[j-1]),
//     g[i-1][j]   + gap,
//     g[i][j-1]   + gap).
//  3. Collect seeds: cells with positive score that no forward neighbor
//     (diagonal, down, right) improves upon — the local maxima.
//  4. Trace each seed back (diagonal preferred, then up, then left)
//     while the score stays positive; the grid is never mutated, so
//     every traceback is independent of the others.
//  5. Alignments tracing back to the same start pair are collapsed to
//     the best-scoring one, so overlapping sub-paths of a single peak
//     are not double-counted.
//  6. Sort by descending score, ties by earliest offset in a, then in b.
//
// Complexity:
//
//	Time   = O(N·M + S·L) where S is the seed count and L the span length
//	Memory = O(N·M)
//
// Errors:
//   - ErrUnknownVariant — opts.Variant outside the enumerated set.
//   - ErrBadMinLength   — opts.MinLength < 0.
//
// Degenerate inputs (either a or b empty) yield a nil result and no error.
func Locate(a, b []byte, opts Options) ([]Match, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil, nil
	}

	sc := newScorer(opts.Variant)
	g := fill(a, b, sc)

	// Collapse alignments sharing a traceback origin to the best one.
	best := make(map[[2]int]Match)
	var (
		i, j int
		mt   Match
	)
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if !isSeed(g, n, m, i, j) {
				continue
			}
			mt = traceback(g, a, b, sc, i, j)
			if mt.ALen < opts.MinLength || mt.BLen < opts.MinLength {
				continue
			}
			origin := [2]int{mt.AStart, mt.BStart}
			if prev, seen := best[origin]; !seen || mt.Score > prev.Score {
				best[origin] = mt
			}
		}
	}

	if len(best) == 0 {
		return nil, nil
	}
	out := make([]Match, 0, len(best))
	for _, mt = range best {
		out = append(out, mt)
	}
	sort.Slice(out, func(x, y int) bool {
		if out[x].Score != out[y].Score {
			return out[x].Score > out[y].Score
		}
		if out[x].AStart != out[y].AStart {
			return out[x].AStart < out[y].AStart
		}

		return out[x].BStart < out[y].BStart
	})

	return out, nil
}

// fill computes the full Smith–Waterman grid for a and b under sc.
// Row and column 0 stay at the zero floor, so no explicit initialization
// beyond the zeroed allocation is needed.
//
// Complexity: O(N·M) time and memory.
func fill(a, b []byte, sc scorer) *grid {
	n, m := len(a), len(b)
	g := newGrid(n+1, m+1)

	var (
		i, j    int
		s, cand int
	)
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			s = 0 // the local-alignment floor
			if cand = g.at(i-1, j-1) + sc.substitute(a[i-1], b[j-1]); cand > s {
				s = cand
			}
			if cand = g.at(i-1, j) + sc.gap(); cand > s {
				s = cand
			}
			if cand = g.at(i, j-1) + sc.gap(); cand > s {
				s = cand
			}
			g.set(i, j, s)
		}
	}

	return g
}

// isSeed reports whether (i, j) is a local maximum: a positive-scoring
// cell that none of its forward neighbors improves upon. Out-of-range
// neighbors count as zero. n and m are the grid's input lengths.
func isSeed(g *grid, n, m, i, j int) bool {
	s := g.at(i, j)
	if s <= 0 {
		return false
	}
	if i < n && j < m && g.at(i+1, j+1) > s {
		return false
	}
	if i < n && g.at(i+1, j) > s {
		return false
	}
	if j < m && g.at(i, j+1) > s {
		return false
	}

	return true
}

// traceback recovers the alignment ending at (i, j) by walking
// predecessors while the score stays positive. The grid is read-only
// here; predecessor choice prefers diagonal, then up, then left, which
// fixes a deterministic path among equal-cost alternatives.
//
// A positive cell always equals one of its three candidate expressions
// (it is their maximum), so each step makes progress and the loop
// terminates at the zero floor or at the grid border.
//
// Complexity: O(L) where L is the alignment length.
func traceback(g *grid, a, b []byte, sc scorer, i, j int) Match {
	endI, endJ := i, j
	score := g.at(i, j)

	var s int
	for i > 0 && j > 0 && g.at(i, j) > 0 {
		s = g.at(i, j)
		if s == g.at(i-1, j-1)+sc.substitute(a[i-1], b[j-1]) {
			i, j = i-1, j-1
		} else if s == g.at(i-1, j)+sc.gap() {
			i--
		} else {
			j--
		}
	}

	return Match{
		AStart: i, ALen: endI - i,
		BStart: j, BLen: endJ - j,
		Score: score,
	}
}
