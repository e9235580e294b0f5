package symfact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMatrix struct {
	name       string
	nRow, nCol Int
	Ap, Ai     []Int
	Ax         []float64
}

func diag3() testMatrix {
	return testMatrix{
		name: "diag3", nRow: 3, nCol: 3,
		Ap: []Int{0, 1, 2, 3},
		Ai: []Int{0, 1, 2},
	}
}

// arrow pointing up-left: full first row, diagonal below
func arrow4() testMatrix {
	return testMatrix{
		name: "arrow4", nRow: 4, nCol: 4,
		Ap: []Int{0, 1, 3, 5, 7},
		Ai: []Int{0, 0, 1, 0, 2, 0, 3},
	}
}

func tridiag5() testMatrix {
	return testMatrix{
		name: "tridiag5", nRow: 5, nCol: 5,
		Ap: []Int{0, 2, 5, 8, 11, 13},
		Ai: []Int{0, 1, 0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4},
	}
}

// rectangular, no singletons
func rect35() testMatrix {
	return testMatrix{
		name: "rect35", nRow: 3, nCol: 5,
		Ap: []Int{0, 2, 4, 6, 8, 10},
		Ai: []Int{0, 1, 1, 2, 0, 2, 0, 1, 1, 2},
	}
}

// 4-by-4 with column 2 entirely zero, no singletons
func emptyCol4() testMatrix {
	return testMatrix{
		name: "emptyCol4", nRow: 4, nCol: 4,
		Ap: []Int{0, 2, 4, 4, 8},
		Ai: []Int{0, 1, 2, 3, 0, 1, 2, 3},
	}
}

// unsymmetric 6-by-6 without singletons
func unsym6() testMatrix {
	return testMatrix{
		name: "unsym6", nRow: 6, nCol: 6,
		Ap: []Int{0, 3, 6, 9, 12, 15, 18},
		Ai: []Int{
			0, 2, 4,
			1, 3, 5,
			0, 1, 2,
			3, 4, 5,
			0, 3, 5,
			1, 2, 4,
		},
	}
}

// 20-by-20 tridiagonal plus a full row 0: one very dense row
func denseRow20() testMatrix {
	n := Int(20)
	m := testMatrix{name: "denseRow20", nRow: n, nCol: n}
	m.Ap = make([]Int, n+1)
	for j := Int(0); j < n; j++ {
		col := map[Int]bool{j: true}
		col[0] = true
		if j > 0 {
			col[j-1] = true
		}
		if j < n-1 {
			col[j+1] = true
		}
		rows := make([]Int, 0, 4)
		for i := Int(0); i < n; i++ {
			if col[i] {
				rows = append(rows, i)
			}
		}
		m.Ai = append(m.Ai, rows...)
		m.Ap[j+1] = m.Ap[j] + Int(len(rows))
	}
	return m
}

func corpus() []testMatrix {
	return []testMatrix{diag3(), arrow4(), tridiag5(), rect35(), emptyCol4(), unsym6(), denseRow20()}
}

func analyzeMatrix(t *testing.T, m testMatrix, ctl *Control, quser []Int) (*Symbolic, []float64) {
	t.Helper()
	info := make([]float64, InfoLen)
	sym, err := QSymbolic(m.nRow, m.nCol, m.Ap, m.Ai, m.Ax, nil, quser, ctl, info)
	require.NoError(t, err)
	require.NotNil(t, sym)
	require.Equal(t, float64(StatusOK), info[InfoStatus])
	return sym, info
}

func requirePermutation(t *testing.T, p []Int, n Int) {
	t.Helper()
	seen := make([]bool, n)
	for k := Int(0); k < n; k++ {
		require.GreaterOrEqual(t, p[k], Int(0))
		require.Less(t, p[k], n)
		require.False(t, seen[p[k]], "duplicate index %d", p[k])
		seen[p[k]] = true
	}
}

func TestDiagonal3(t *testing.T) {
	sym, _ := analyzeMatrix(t, diag3(), nil, nil)

	assert.Equal(t, Int(3), sym.N1)
	assert.Equal(t, Int(0), sym.NemptyCol)
	assert.Equal(t, Int(0), sym.Nfr)
	assert.Equal(t, Int(0), sym.Nchains)
	assert.Equal(t, []Int{0, 1, 2}, sym.CpermInit[:3])
	assert.Equal(t, []Int{0, 1, 2}, sym.RpermInit[:3])

	// every pivot is a singleton with no off-diagonal contribution
	assert.Equal(t, float64(3), sym.LnzBound)
	assert.Equal(t, float64(3), sym.UnzBound)
	assert.Equal(t, float64(3), sym.LunzBound)
	assert.Equal(t, float64(0), sym.FlopsBound)
	assert.Equal(t, StrategySymmetric, sym.Strategy)
}

func TestArrow4(t *testing.T) {
	sym, info := analyzeMatrix(t, arrow4(), nil, nil)

	assert.Equal(t, Int(4), sym.N1)
	assert.Equal(t, Int(3), sym.N1r)
	assert.Equal(t, Int(1), sym.N1c)
	assert.Equal(t, Int(0), sym.Nfr)
	assert.Equal(t, StrategySymmetric, sym.Strategy)

	// the three degree-one rows peel first, via their pivot columns
	assert.ElementsMatch(t, []Int{1, 2, 3}, sym.CpermInit[:3])
	assert.Equal(t, Int(0), sym.CpermInit[3])
	assert.Equal(t, float64(3), info[InfoRowSingletons])
	assert.Equal(t, float64(1), info[InfoColSingletons])
}

func TestTridiagonal5(t *testing.T) {
	sym, info := analyzeMatrix(t, tridiag5(), nil, nil)

	assert.Equal(t, Int(0), sym.N1)
	assert.Equal(t, StrategySymmetric, sym.Strategy)
	assert.Equal(t, 1.0, sym.Sym)
	assert.Equal(t, Int(5), sym.Nzdiag)
	assert.Equal(t, OrderingAMD, sym.Ordering)
	assert.Equal(t, float64(OrderingAMD), info[InfoOrderingUsed])
	assert.True(t, sym.FixQ)
	assert.True(t, sym.PreferDiagonal)

	assert.Equal(t, Int(1), sym.Nchains)
	assert.Equal(t, Int(1), sym.ChainMaxrows[0]%2, "chain maxrows must be odd")
	require.NotNil(t, sym.DiagonalMap)
}

func TestRect35QuserFixed(t *testing.T) {
	m := rect35()
	quser := []Int{4, 3, 2, 1, 0}
	ctl := DefaultControl()
	ctl.Strategy = StrategyAuto
	ctl.FixQ = FixQPreferFixed

	sym, info := analyzeMatrix(t, m, ctl, quser)

	// rectangular bypasses the auto strategy entirely
	assert.Equal(t, StrategyUnsymmetric, sym.Strategy)
	assert.Equal(t, OrderingGiven, sym.Ordering)
	assert.Equal(t, float64(StrategyUnsymmetric), info[InfoStrategyUsed])
	assert.Equal(t, quser, sym.CpermInit[:5])
	assert.Nil(t, sym.DiagonalMap)
}

func TestEmptyColumn(t *testing.T) {
	sym, info := analyzeMatrix(t, emptyCol4(), nil, nil)

	assert.Equal(t, Int(1), sym.NemptyCol)
	assert.Equal(t, Int(2), sym.CpermInit[3])
	assert.ElementsMatch(t, []Int{0, 1, 3}, sym.CpermInit[:3])
	assert.Equal(t, float64(1), info[InfoNEmptyCol])

	// empty placement: the trailing column really is structurally empty
	m := emptyCol4()
	j := sym.CpermInit[3]
	assert.Equal(t, m.Ap[j], m.Ap[j+1])
	for k := Int(0); k < 3; k++ {
		j := sym.CpermInit[k]
		assert.NotEqual(t, m.Ap[j], m.Ap[j+1])
	}
}

func TestInvalidPermutationRejected(t *testing.T) {
	m := emptyCol4()
	info := make([]float64, InfoLen)
	sym, err := QSymbolic(m.nRow, m.nCol, m.Ap, m.Ai, nil, nil,
		[]Int{0, 0, 1, 2}, nil, info)
	require.ErrorIs(t, err, ErrInvalidPermutation)
	assert.Nil(t, sym)
	assert.Equal(t, float64(StatusInvalidPermutation), info[InfoStatus])
}

func TestArgumentChecks(t *testing.T) {
	info := make([]float64, InfoLen)

	_, err := QSymbolic(3, 3, nil, nil, nil, nil, nil, nil, info)
	require.ErrorIs(t, err, ErrArgumentMissing)
	assert.Equal(t, float64(StatusArgumentMissing), info[InfoStatus])

	m := diag3()
	_, err = QSymbolic(0, 3, m.Ap, m.Ai, nil, nil, nil, nil, info)
	require.ErrorIs(t, err, ErrNNonpositive)

	_, err = QSymbolic(3, 3, []Int{1, 2, 3, 4}, m.Ai, nil, nil, nil, nil, info)
	require.ErrorIs(t, err, ErrInvalidMatrix)

	// unsorted row indices within a column
	_, err = QSymbolic(3, 3, []Int{0, 2, 3, 3}, []Int{1, 0, 2}, nil, nil, nil, nil, info)
	require.ErrorIs(t, err, ErrInvalidMatrix)

	// duplicate row indices within a column
	_, err = QSymbolic(3, 3, []Int{0, 2, 3, 3}, []Int{1, 1, 2}, nil, nil, nil, nil, info)
	require.ErrorIs(t, err, ErrInvalidMatrix)

	// row index out of range
	_, err = QSymbolic(3, 3, []Int{0, 1, 2, 3}, []Int{0, 3, 2}, nil, nil, nil, nil, info)
	require.ErrorIs(t, err, ErrInvalidMatrix)
}

func TestUniversalProperties(t *testing.T) {
	for _, m := range corpus() {
		m := m
		t.Run(m.name, func(t *testing.T) {
			sym, _ := analyzeMatrix(t, m, nil, nil)

			// P1: both orderings are permutations
			requirePermutation(t, sym.CpermInit[:m.nCol], m.nCol)
			requirePermutation(t, sym.RpermInit[:m.nRow], m.nRow)

			// P2 (residual form): trailing columns have zero residual
			// degree, earlier ones do not
			for k := Int(0); k < m.nCol; k++ {
				if k >= m.nCol-sym.NemptyCol {
					assert.Equal(t, Int(0), sym.Cdeg[k])
				} else if k >= sym.N1 {
					assert.Greater(t, sym.Cdeg[k], Int(0))
				}
			}

			// P4: front topology and chain partition
			for f := Int(0); f < sym.Nfr; f++ {
				if sym.FrontParent[f] != empty {
					assert.Greater(t, sym.FrontParent[f], f)
				}
			}
			require.Equal(t, Int(0), sym.ChainStart[0])
			require.Equal(t, sym.Nfr, sym.ChainStart[sym.Nchains])
			for c := Int(0); c < sym.Nchains; c++ {
				assert.Less(t, sym.ChainStart[c], sym.ChainStart[c+1])
				// P5: odd maxrows
				assert.Equal(t, Int(1), sym.ChainMaxrows[c]%2)
			}

			// pivot columns, dummy front included, cover every column
			// that is not a singleton
			total := Int(0)
			for f := Int(0); f <= sym.Nfr; f++ {
				total += sym.FrontNpivcol[f]
			}
			assert.Equal(t, m.nCol-sym.N1, total)

			// leftmost descendants are sane
			for f := Int(0); f < sym.Nfr; f++ {
				assert.GreaterOrEqual(t, f, sym.FrontLeftmostdesc[f])
			}

			// P6: diagonal map definition
			if sym.DiagonalMap != nil {
				inv := make([]Int, m.nRow)
				for k := Int(0); k < m.nRow; k++ {
					inv[sym.RpermInit[k]] = k
				}
				for k := Int(0); k < m.nCol; k++ {
					assert.Equal(t, inv[sym.CpermInit[k]], sym.DiagonalMap[k])
				}
			}

			// P7: estimate monotonicity
			assert.GreaterOrEqual(t, sym.NumMemUsageEst, sym.NumMemSizeEst)
			assert.GreaterOrEqual(t, sym.NumMemSizeEst, sym.NumMemInitUsage)
			assert.GreaterOrEqual(t, sym.NumMemInitUsage, float64(2))

			// the bounds count at least the diagonal
			assert.GreaterOrEqual(t, sym.LnzBound, float64(minv(m.nRow, m.nCol)-sym.Nempty))
			assert.GreaterOrEqual(t, sym.FlopsBound, float64(0))
		})
	}
}

func TestQuserRoundTrip(t *testing.T) {
	// P8: re-running with the previous Cperm_init reproduces it when
	// fixQ pins the analyze stage
	for _, m := range []testMatrix{unsym6(), rect35()} {
		m := m
		t.Run(m.name, func(t *testing.T) {
			ctl := DefaultControl()
			ctl.Strategy = StrategyUnsymmetric
			ctl.FixQ = FixQPreferFixed
			first, _ := analyzeMatrix(t, m, ctl, nil)

			quser := append([]Int(nil), first.CpermInit[:m.nCol]...)
			second, _ := analyzeMatrix(t, m, ctl, quser)
			assert.Equal(t, quser, second.CpermInit[:m.nCol])
		})
	}
}

func TestDenseRowEsize(t *testing.T) {
	m := denseRow20()
	sym, info := analyzeMatrix(t, m, nil, nil)

	require.NotNil(t, sym.Esize, "a 20-entry row must trip the dense threshold")
	assert.Greater(t, info[InfoNDenseRow], float64(0))
	for i, es := range sym.Esize {
		assert.GreaterOrEqual(t, es, Int(0), "esize[%d]", i)
		// an element never exceeds its column degree
		assert.LessOrEqual(t, es, sym.Cdeg[sym.N1+Int(i)])
	}
}

func TestUserOrderingCallback(t *testing.T) {
	m := unsym6()
	reverse := func(nRow, nCol Int, symmetric bool, Ap, Ai []Int,
		perm []Int, params any, userInfo []float64) bool {
		for k := Int(0); k < nCol; k++ {
			perm[k] = nCol - 1 - k
		}
		return true
	}

	ctl := DefaultControl()
	ctl.Strategy = StrategyUnsymmetric
	ctl.Ordering = OrderingUser
	info := make([]float64, InfoLen)
	sym, err := FSymbolic(m.nRow, m.nCol, m.Ap, m.Ai, nil, nil, reverse, nil, ctl, info)
	require.NoError(t, err)
	assert.Equal(t, OrderingUser, sym.Ordering)
	requirePermutation(t, sym.CpermInit[:m.nCol], m.nCol)
}

func TestUserOrderingFailure(t *testing.T) {
	m := rect35()
	failing := func(nRow, nCol Int, symmetric bool, Ap, Ai []Int,
		perm []Int, params any, userInfo []float64) bool {
		return false
	}

	ctl := DefaultControl()
	ctl.Ordering = OrderingUser
	info := make([]float64, InfoLen)
	sym, err := FSymbolic(m.nRow, m.nCol, m.Ap, m.Ai, nil, nil, failing, nil, ctl, info)
	require.ErrorIs(t, err, ErrOrderingFailed)
	assert.Nil(t, sym)
	assert.Equal(t, float64(StatusOrderingFailed), info[InfoStatus])
}

func TestParuSymbolicReturnsWorkspace(t *testing.T) {
	m := tridiag5()
	info := make([]float64, InfoLen)
	sym, sw, err := ParuSymbolic(m.nRow, m.nCol, m.Ap, m.Ai, nil, nil,
		nil, nil, nil, nil, info)
	require.NoError(t, err)
	require.NotNil(t, sym)
	require.NotNil(t, sw)

	// the early tranche is retired, the late tranche survives
	assert.Nil(t, sw.Si)
	assert.Nil(t, sw.Sp)
	assert.Nil(t, sw.Cperm1)
	assert.NotNil(t, sw.Ci)
	assert.NotNil(t, sw.InFront)
	assert.NotNil(t, sw.Rperm1)

	// first pivot column positions are cumulative
	pos := sym.N1
	for f := Int(0); f < sym.Nfr; f++ {
		assert.Equal(t, pos, sw.FrontCols[f])
		pos += sym.FrontNpivcol[f]
	}
}

func TestDiagonalMapForParu(t *testing.T) {
	// an unsymmetric square matrix gets a diagonal map only through
	// the Paru entry point
	m := unsym6()
	sym, err := QSymbolic(m.nRow, m.nCol, m.Ap, m.Ai, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	if sym.Strategy == StrategyUnsymmetric {
		assert.Nil(t, sym.DiagonalMap)
	}

	psym, _, err := ParuSymbolic(m.nRow, m.nCol, m.Ap, m.Ai, nil, nil,
		nil, nil, nil, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, psym.DiagonalMap)
}

func TestSingletonFreeFrontCoverage(t *testing.T) {
	// every row lands in exactly one tally: singleton, dummy or front
	for _, m := range corpus() {
		m := m
		t.Run(m.name, func(t *testing.T) {
			sym, _ := analyzeMatrix(t, m, nil, nil)
			require.Equal(t, Int(0), sym.ChainStart[0])
			prev := sym.N1
			for f := Int(0); f <= sym.Nfr; f++ {
				assert.GreaterOrEqual(t, sym.Front1strow[f], prev)
				prev = sym.Front1strow[f]
			}
			assert.LessOrEqual(t, sym.Front1strow[sym.Nfr], m.nRow)
		})
	}
}
