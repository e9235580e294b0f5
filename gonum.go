package symfact

import "gonum.org/v1/gonum/mat"

// CompressFrom converts any gonum matrix into the compressed-column
// form the entry points consume, dropping numerically zero entries.
// Row indices per column come out sorted and duplicate-free.
func CompressFrom(m mat.Matrix) (nRow, nCol Int, Ap, Ai []Int, Ax []float64) {
	r, c := m.Dims()
	nRow, nCol = Int(r), Int(c)
	Ap = make([]Int, nCol+1)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if m.At(i, j) != 0 {
				Ap[j+1]++
			}
		}
	}
	for j := Int(0); j < nCol; j++ {
		Ap[j+1] += Ap[j]
	}
	nz := Ap[nCol]
	Ai = make([]Int, nz)
	Ax = make([]float64, nz)
	p := Int(0)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if x := m.At(i, j); x != 0 {
				Ai[p] = Int(i)
				Ax[p] = x
				p++
			}
		}
	}
	return nRow, nCol, Ap, Ai, Ax
}
