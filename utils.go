package symfact

import (
	"math"

	"golang.org/x/exp/constraints"
)

func minv[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxv[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// denseDegree is the "dense" row/column cutoff: a row or column of an
// n-vector space is considered dense when its degree exceeds this.
func denseDegree(alpha float64, n Int) Int {
	return Int(math.Max(16.0, alpha*16.0*math.Sqrt(float64(n))))
}

// colamdRecommended is the workspace recommendation of the
// COLAMD-style ordering: max(2nz, 4ncol) + 8ncol + 6nrow + ncol + nz/5.
func colamdRecommended(nz, nRow, nCol float64) float64 {
	return math.Max(2*nz, 4*nCol) + 8*nCol + 6*nRow + nCol + nz/5
}

// analyzeClen is the Ci space required by the transpose + analyze stage:
// ncol + max(nz,ncol) + 3nn+1 + ncol, with nn = max(nrow,ncol).
func analyzeClen(nz, nRow, nCol, nn float64) float64 {
	return nCol + math.Max(nz, nCol) + 3*nn + 1 + nCol
}
