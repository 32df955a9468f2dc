package align

// Basic-variant constants: a uniform scheme over the full byte alphabet.
const (
	basicMatch    = 2
	basicMismatch = -1
	basicGap      = -1
)

// Amino-variant gap penalty (linear gap model against BLOSUM62 scores).
const aminoGap = -4

// scorer evaluates substitution and gap costs for one Variant.
// Both implementations are stateless value types.
type scorer interface {
	substitute(x, y byte) int
	gap() int
}

// newScorer maps a validated Variant to its scorer.
func newScorer(v Variant) scorer {
	if v == Amino {
		return aminoScorer{}
	}

	return basicScorer{}
}

// basicScorer scores any pair of equal bytes basicMatch and any unequal
// pair basicMismatch.
type basicScorer struct{}

func (basicScorer) substitute(x, y byte) int {
	if x == y {
		return basicMatch
	}

	return basicMismatch
}

func (basicScorer) gap() int { return basicGap }

// aminoScorer scores residue pairs with BLOSUM62. Lowercase letters are
// folded to uppercase; any byte outside the 20-letter alphabet is treated
// as the unknown residue X, which scores −1 against everything.
type aminoScorer struct{}

func (aminoScorer) substitute(x, y byte) int {
	xi, yi := residueIndex[fold(x)], residueIndex[fold(y)]
	if xi < 0 || yi < 0 {
		return -1 // unknown residue: BLOSUM62's X row is −1 almost everywhere
	}

	return int(blosum62[xi][yi])
}

func (aminoScorer) gap() int { return aminoGap }

// fold maps ASCII lowercase to uppercase and leaves other bytes unchanged.
func fold(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}

	return b
}

// aminoAlphabet lists the 20 standard residues in canonical NCBI order;
// blosum62 below is indexed in this order.
const aminoAlphabet = "ARNDCQEGHILKMFPSTWYV"

// residueIndex maps a byte to its row in blosum62, or −1 when the byte is
// not a standard residue.
var residueIndex = func() (idx [256]int8) {
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(aminoAlphabet); i++ {
		idx[aminoAlphabet[i]] = int8(i)
	}

	return idx
}()

// blosum62 is the standard BLOSUM62 substitution matrix over aminoAlphabet.
var blosum62 = [20][20]int8{
	/* A */ {4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0},
	/* R */ {-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3},
	/* N */ {-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3},
	/* D */ {-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3},
	/* C */ {0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1},
	/* Q */ {-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2},
	/* E */ {-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2},
	/* G */ {0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3},
	/* H */ {-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3},
	/* I */ {-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3},
	/* L */ {-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1},
	/* K */ {-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2},
	/* M */ {-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1},
	/* F */ {-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1},
	/* P */ {-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2},
	/* S */ {1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2},
	/* T */ {0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0},
	/* W */ {-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3},
	/* Y */ {-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -2},
	/* V */ {0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -2, 4},
}
