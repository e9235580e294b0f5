package symfact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeftmostDesc(t *testing.T) {
	//      4
	//     / \
	//    1   3
	//   /|   |
	//  0 .   2
	parent := []Int{1, 4, 3, 4, empty, 0 /* dummy slot */}
	leftmost := make([]Int, 6)
	leftmostDesc(5, parent, leftmost)
	assert.Equal(t, []Int{0, 0, 2, 2, 0}, leftmost[:5])
}

func TestBuildChainsParity(t *testing.T) {
	// two chains: {0,1} ending at a root, {2} ending at a root
	npivcol := []Int{1, 1, 2}
	parent := []Int{1, empty, empty}
	nrows := []Int{4, 2, 6}
	ncols := []Int{3, 2, 7}
	chainStart := make([]Int, 3)
	chainMaxrows := make([]Int, 3)
	chainMaxcols := make([]Int, 3)

	res := buildChains(3, npivcol, parent, nrows, ncols, chainStart, chainMaxrows, chainMaxcols)

	require.Equal(t, Int(2), res.nchains)
	assert.Equal(t, []Int{0, 2, 3}, chainStart)
	assert.Equal(t, Int(5), chainMaxrows[0], "4 rounds up to odd 5")
	assert.Equal(t, Int(3), chainMaxcols[0])
	assert.Equal(t, Int(7), chainMaxrows[1], "6 rounds up to odd 7")
	assert.Equal(t, Int(7), chainMaxcols[1])
	assert.Equal(t, Int(7), res.maxnrows)
	assert.Equal(t, Int(7), res.maxncols)
	assert.Equal(t, float64(49), res.dmaxfrsize)
}

func TestPermuteInFrontPassthrough(t *testing.T) {
	// a collaborator produced InFront indexed by pruned row position;
	// permute it through Rperm1 into original row indices
	nRow := Int(6)
	n1 := Int(1)
	nemptyRow := Int(1)
	nfr := Int(2)
	rperm1 := []Int{3, 0, 2, 5, 1, 4} // singleton row 3 first, empty row 4 last
	inFront := make([]Int, nRow)
	copy(inFront, []Int{0, 0, 1, 1, 0, 0}) // positions 0..3 used
	front1strow := make([]Int, nfr+1)
	ci := make([]Int, nRow)

	permuteInFront(nRow, n1, nemptyRow, nfr, rperm1, inFront, front1strow, ci)

	assert.Equal(t, empty, inFront[3], "singleton pivot row")
	assert.Equal(t, Int(0), inFront[0])
	assert.Equal(t, Int(0), inFront[2])
	assert.Equal(t, Int(1), inFront[5])
	assert.Equal(t, Int(1), inFront[1])
	assert.Equal(t, nfr, inFront[4], "empty row goes to the dummy front")
	assert.Equal(t, []Int{2, 2, 0}, front1strow)
}

func TestFillRpermInit(t *testing.T) {
	nRow := Int(5)
	n1 := Int(1)
	nfr := Int(2)
	rperm1 := []Int{4, 0, 1, 2, 3}
	inFront := []Int{0, 1, 0, nfr, empty} // row 3 empty, row 4 singleton
	front1strow := []Int{2, 1, 0}         // tallies: front0 two rows, front1 one
	f1 := make([]Int, nfr+1)
	rpermInit := make([]Int, nRow+1)

	fillRpermInit(nRow, n1, nfr, rperm1, inFront, front1strow, f1, rpermInit)

	assert.Equal(t, Int(4), rpermInit[0], "singleton first")
	assert.ElementsMatch(t, []Int{0, 2}, rpermInit[1:3], "front 0 rows contiguous")
	assert.Equal(t, Int(1), rpermInit[3], "front 1 row")
	assert.Equal(t, Int(3), rpermInit[4], "dummy-front row last")
	assert.Equal(t, []Int{1, 3, 4}, front1strow, "tallies became offsets")
	assert.Equal(t, empty, rpermInit[5])
}

func TestPermuteDegrees(t *testing.T) {
	deg := []Int{10, 20, 30, 40}
	perm := []Int{2, 0, 3, 1}
	w := make([]Int, 4)
	permuteDegrees(4, perm, deg, w)
	assert.Equal(t, []Int{30, 10, 40, 20}, deg)
}

func TestDiagonalMapSmall(t *testing.T) {
	cperm := []Int{1, 0, 2}
	rperm := []Int{2, 1, 0}
	dmap := make([]Int, 3)
	ci := make([]Int, 3)
	diagonalMap(3, cperm, rperm, dmap, ci)
	// inverse of rperm is [2,1,0]
	assert.Equal(t, []Int{1, 2, 0}, dmap)
}

func TestTransposePattern(t *testing.T) {
	// 3x3: cols {0,1}, {1,2}, {0,2}
	ap := []Int{0, 2, 4, 6}
	ai := []Int{0, 1, 1, 2, 0, 2}
	rp := make([]Int, 4)
	ri := make([]Int, 6)
	w := make([]Int, 3)
	transposePattern(3, 3, ap, ai, nil, rp, ri, w)
	assert.Equal(t, []Int{0, 2, 4, 6}, rp)
	assert.Equal(t, []Int{0, 2, 0, 1, 1, 2}, ri)

	// with a row permutation: row 2 becomes row 0
	pinv := []Int{1, 2, 0}
	transposePattern(3, 3, ap, ai, pinv, rp, ri, w)
	assert.Equal(t, []Int{0, 2, 4, 6}, rp)
	assert.Equal(t, []Int{1, 2, 0, 2, 0, 1}, ri)
}

func TestAATSymmetry(t *testing.T) {
	// perfectly symmetric tridiagonal
	sp := []Int{0, 2, 5, 7}
	si := []Int{0, 1, 0, 1, 2, 1, 2}
	rp := make([]Int, 4)
	ri := make([]Int, 7)
	w := make([]Int, 3)
	transposePattern(3, 3, sp, si, nil, rp, ri, w)
	deg := make([]Int, 3)
	res := aat(3, sp, si, rp, ri, deg)
	assert.Equal(t, 1.0, res.sym)
	assert.Equal(t, Int(4), res.nzaat)
	assert.Equal(t, []Int{1, 2, 1}, deg)

	// strictly lower triangular: nothing matches
	sp = []Int{0, 1, 2, 2}
	si = []Int{1, 2}
	transposePattern(3, 3, sp, si, nil, rp, ri, w)
	res = aat(3, sp, si, rp, ri, deg)
	assert.Equal(t, 0.0, res.sym)
	assert.Equal(t, Int(4), res.nzaat)
}

func TestBuildAAT(t *testing.T) {
	// unsymmetric: cols {1}, {2}, {0}
	sp := []Int{0, 1, 2, 3}
	si := []Int{1, 2, 0}
	rp := make([]Int, 4)
	ri := make([]Int, 3)
	w := make([]Int, 3)
	transposePattern(3, 3, sp, si, nil, rp, ri, w)
	deg := make([]Int, 3)
	res := aat(3, sp, si, rp, ri, deg)
	assert.Equal(t, []Int{2, 2, 2}, deg)

	s := make([]Int, 4+res.nzaat)
	pe, iw := buildAAT(3, sp, si, rp, ri, deg, s, w)
	assert.Equal(t, []Int{0, 2, 4, 6}, pe)
	assert.ElementsMatch(t, []Int{1, 2}, iw[pe[0]:pe[1]])
	assert.ElementsMatch(t, []Int{0, 2}, iw[pe[1]:pe[2]])
	assert.ElementsMatch(t, []Int{0, 1}, iw[pe[2]:pe[3]])
}
