package editdist

// Distance — Levenshtein edit distance.
//
// Description:
//
//	Distance returns the minimum number of single-byte insertions,
//	deletions and substitutions required to transform a into b.
//	It is symmetric, returns 0 iff a == b, and satisfies the triangle
//	inequality.
//
// Algorithm Outline (Wagner–Fischer, single row):
//  1. Strip the common prefix and suffix of a and b; they never
//     contribute to the distance.
//  2. If the shorter remainder is empty, the distance is the length of
//     the longer remainder.
//  3. Otherwise keep one DP row t of length len(short)+1 with
//     t[i] = d(short[:i], long[:j]) while sweeping j over the longer
//     remainder, carrying the diagonal cell through a temporary.
//
// Complexity:
//
//	Time   = O(N·M)
//	Memory = O(min(N,M))
//
// Distance is a total function: there are no error conditions, and either
// input may be empty (the result is then the other input's length).
func Distance(a, b []byte) int {
	// Common prefix and suffix are free; trimming them shrinks the table.
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}

	// Keep a as the shorter side; its length sizes the DP row.
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	t := make([]int, len(a)+1)
	var i int
	for i = range t {
		t[i] = i
	}

	var (
		j        int
		prevDiag int // d(a[:i-1], b[:j-1]) for the cell being computed
		old      int
	)
	for j = 1; j <= len(b); j++ {
		t[0] = j
		prevDiag = j - 1

		for i = 1; i <= len(a); i++ {
			old = t[i]
			if a[i-1] == b[j-1] {
				t[i] = prevDiag
			} else {
				t[i] = 1 + min3(t[i-1], old, prevDiag)
			}
			prevDiag = old
		}
	}

	return t[len(a)]
}

// DistanceBounded returns Distance(a, b) when it is ≤ max, and max+1
// otherwise. It abandons the DP sweep as soon as every cell of the current
// row exceeds max, which makes threshold queries on long inputs cheap.
//
// A negative max is treated as 0 (only equality passes the bound).
//
// Complexity: O(N·M) worst case, O(max·min(N,M)) typical.
func DistanceBounded(a, b []byte, max int) int {
	if max < 0 {
		max = 0
	}

	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		if len(b) > max {
			return max + 1
		}

		return len(b)
	}
	// Length difference alone is a lower bound on the distance.
	if len(b)-len(a) > max {
		return max + 1
	}

	t := make([]int, len(a)+1)
	var i int
	for i = range t {
		t[i] = i
	}

	var (
		j        int
		prevDiag int
		old      int
		rowMin   int
	)
	for j = 1; j <= len(b); j++ {
		t[0] = j
		prevDiag = j - 1
		rowMin = j

		for i = 1; i <= len(a); i++ {
			old = t[i]
			if a[i-1] == b[j-1] {
				t[i] = prevDiag
			} else {
				t[i] = 1 + min3(t[i-1], old, prevDiag)
			}
			prevDiag = old
			if t[i] < rowMin {
				rowMin = t[i]
			}
		}

		// Every continuation can only grow; the bound is already broken.
		if rowMin > max {
			return max + 1
		}
	}

	if t[len(a)] > max {
		return max + 1
	}

	return t[len(a)]
}

// Similarity returns 1 - Distance(a,b)/max(len(a),len(b)), i.e. a value in
// [0,1] where 1 means the inputs are identical. Two empty inputs are
// defined to be identical.
//
// Complexity: O(N·M) time, O(min(N,M)) memory.
func Similarity(a, b []byte) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(a, b))/float64(longest)
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}

	return a
}
