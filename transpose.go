package symfact

// transposePattern computes the pattern transpose R = A' of an
// nRow-by-nCol compressed-column pattern, with an optional row
// permutation: when pinv is non-nil, entry (i,j) of A lands in output
// column pinv[i].  Column counts accumulate in w (length >= nRow).
// Output columns come out with strictly ascending indices because the
// input columns are scanned in order.  Rp has length nRow+1.
func transposePattern(nRow, nCol Int, Ap, Ai []Int, pinv []Int, Rp, Ri, w []Int) {
	for i := Int(0); i < nRow; i++ {
		w[i] = 0
	}
	for j := Int(0); j < nCol; j++ {
		for p := Ap[j]; p < Ap[j+1]; p++ {
			i := Ai[p]
			if pinv != nil {
				i = pinv[i]
			}
			w[i]++
		}
	}
	Rp[0] = 0
	for i := Int(0); i < nRow; i++ {
		Rp[i+1] = Rp[i] + w[i]
		w[i] = Rp[i]
	}
	for j := Int(0); j < nCol; j++ {
		for p := Ap[j]; p < Ap[j+1]; p++ {
			i := Ai[p]
			if pinv != nil {
				i = pinv[i]
			}
			Ri[w[i]] = j
			w[i]++
		}
	}
}
