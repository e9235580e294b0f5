package symfact

import "fmt"

// singletonResult summarizes the peel.
type singletonResult struct {
	n1, n1c, n1r         Int
	nemptyRow, nemptyCol Int
	isSym                bool
	maxRdeg              Int
}

// findSingletons validates the sparsity structure, counts row and
// column degrees, and repeatedly removes degree-one rows and columns
// from the residual matrix.  On return Cperm1 holds the singleton
// columns in elimination order, then the remaining columns in candidate
// order (Quser order when given, natural otherwise), with columns that
// are empty in the residual last.  Rperm1 is the analogous row
// ordering, and InvRperm1 its inverse.  Cdeg and Rdeg hold residual
// degrees, frozen at elimination time for singleton pivots.
//
// ri (length nz) and rp (length nRow+1) are scratch for the row form.
func findSingletons(nRow, nCol Int, Ap, Ai []Int, Quser []Int,
	doSingletons bool, Cdeg, Cperm1, Rdeg, Rperm1, InvRperm1 []Int,
	rp, ri []Int) (singletonResult, error) {

	var res singletonResult
	nz := Ap[nCol]

	// count degrees, and validate the column structure: row indices in
	// each column must be strictly ascending and in range
	for i := Int(0); i < nRow; i++ {
		Rdeg[i] = 0
	}
	for j := Int(0); j < nCol; j++ {
		p1 := Ap[j]
		p2 := Ap[j+1]
		if p1 < 0 || p2 < p1 || p2 > nz {
			return res, fmt.Errorf("column %d pointers [%d,%d): %w", j, p1, p2, ErrInvalidMatrix)
		}
		Cdeg[j] = p2 - p1
		last := empty
		for p := p1; p < p2; p++ {
			row := Ai[p]
			if row <= last || row >= nRow {
				return res, fmt.Errorf("column %d row index %d at %d: %w", j, row, p, ErrInvalidMatrix)
			}
			last = row
			Rdeg[row]++
		}
	}

	// row form of the pattern: ri holds the column indices of each row,
	// ascending because columns are scanned in order
	rp[0] = 0
	for i := Int(0); i < nRow; i++ {
		rp[i+1] = rp[i] + Rdeg[i]
	}
	for j := Int(0); j < nCol; j++ {
		for p := Ap[j]; p < Ap[j+1]; p++ {
			ri[rp[Ai[p]]] = j
			rp[Ai[p]]++
		}
	}
	for i := nRow; i > 0; i-- {
		rp[i] = rp[i-1]
	}
	rp[0] = 0

	colDead := make([]bool, nCol)
	rowDead := make([]bool, nRow)

	// candidate order for columns
	colAt := func(k Int) Int {
		if Quser != nil {
			return Quser[k]
		}
		return k
	}

	if doSingletons {
		// seed the queues; a degree can reach one at most once after
		// this, so transitions enqueue each candidate at most once
		colQ := make([]Int, 0, nCol)
		rowQ := make([]Int, 0, nRow)
		for k := Int(0); k < nCol; k++ {
			if j := colAt(k); Cdeg[j] == 1 {
				colQ = append(colQ, j)
			}
		}
		for i := Int(0); i < nRow; i++ {
			if Rdeg[i] == 1 {
				rowQ = append(rowQ, i)
			}
		}

		for len(colQ) > 0 || len(rowQ) > 0 {
			if len(rowQ) > 0 {
				i := rowQ[0]
				rowQ = rowQ[1:]
				if rowDead[i] || Rdeg[i] != 1 {
					continue
				}
				// row singleton: its one live column is the pivot column
				col := empty
				for p := rp[i]; p < rp[i+1]; p++ {
					if !colDead[ri[p]] {
						col = ri[p]
						break
					}
				}
				Rperm1[res.n1] = i
				Cperm1[res.n1] = col
				res.n1++
				if Cdeg[col] == 1 {
					// a 1-by-1 residual entry is a column singleton too;
					// it is counted as one
					res.n1c++
				} else {
					res.n1r++
				}
				rowDead[i] = true
				colDead[col] = true
				// Cdeg[col] stays frozen: the pivot column's live degree
				for p := Ap[col]; p < Ap[col+1]; p++ {
					i2 := Ai[p]
					if rowDead[i2] {
						continue
					}
					Rdeg[i2]--
					if Rdeg[i2] == 1 {
						rowQ = append(rowQ, i2)
					}
				}
				continue
			}

			j := colQ[0]
			colQ = colQ[1:]
			if colDead[j] || Cdeg[j] != 1 {
				continue
			}
			// column singleton: its one live row is the pivot row
			row := empty
			for p := Ap[j]; p < Ap[j+1]; p++ {
				if !rowDead[Ai[p]] {
					row = Ai[p]
					break
				}
			}
			Cperm1[res.n1] = j
			Rperm1[res.n1] = row
			res.n1++
			res.n1c++
			colDead[j] = true
			rowDead[row] = true
			// Rdeg[row] stays frozen: the pivot row's live degree
			for p := rp[row]; p < rp[row+1]; p++ {
				j2 := ri[p]
				if colDead[j2] {
					continue
				}
				Cdeg[j2]--
				if Cdeg[j2] == 1 {
					colQ = append(colQ, j2)
				}
			}
		}
	}

	// remaining columns keep candidate order; columns empty in the
	// residual go last, in the same order
	k := res.n1
	kempty := nCol
	for kk := nCol - 1; kk >= 0; kk-- {
		if j := colAt(kk); !colDead[j] && Cdeg[j] == 0 {
			kempty--
			Cperm1[kempty] = j
			res.nemptyCol++
		}
	}
	for kk := Int(0); kk < nCol; kk++ {
		if j := colAt(kk); !colDead[j] && Cdeg[j] > 0 {
			Cperm1[k] = j
			k++
		}
	}
	if k != kempty {
		return res, fmt.Errorf("singleton column count mismatch: %w", ErrInternal)
	}

	// rows, in natural order
	k = res.n1
	kempty = nRow
	for i := nRow - 1; i >= 0; i-- {
		if !rowDead[i] && Rdeg[i] == 0 {
			kempty--
			Rperm1[kempty] = i
			res.nemptyRow++
		}
	}
	for i := Int(0); i < nRow; i++ {
		if rowDead[i] {
			continue
		}
		if Rdeg[i] > 0 {
			Rperm1[k] = i
			k++
		}
		res.maxRdeg = maxv(res.maxRdeg, Rdeg[i])
	}
	if k != kempty {
		return res, fmt.Errorf("singleton row count mismatch: %w", ErrInternal)
	}

	for kk := Int(0); kk < nRow; kk++ {
		InvRperm1[Rperm1[kk]] = kk
	}

	// the peel interior is pattern symmetric iff rows and columns pair
	// up identically outside the singleton and empty ranges
	res.isSym = nRow == nCol && res.nemptyRow == res.nemptyCol
	if res.isSym {
		for kk := res.n1; kk < nRow-res.nemptyRow; kk++ {
			if Rperm1[kk] != Cperm1[kk] {
				res.isSym = false
				break
			}
		}
	}
	return res, nil
}

// pruneSingletons builds the residual submatrix
// S = A(Rperm1[n1:], Cperm1[n1:]) in compressed-column form with
// renumbered indices, and counts its structurally nonzero diagonal
// entries, excluding numerically zero values when they are available.
func pruneSingletons(n1, nCol Int, Ap, Ai []Int, traits scalarTraits,
	Cperm1, InvRperm1, Si, Sp []Int) Int {

	nzdiag := Int(0)
	pp := Int(0)
	for k := n1; k < nCol; k++ {
		oldcol := Cperm1[k]
		newcol := k - n1
		Sp[newcol] = pp
		for p := Ap[oldcol]; p < Ap[oldcol+1]; p++ {
			newrow := InvRperm1[Ai[p]] - n1
			if newrow < 0 {
				continue
			}
			Si[pp] = newrow
			pp++
			if newrow == newcol {
				if !traits.hasValues() || traits.isNonzero(p) {
					nzdiag++
				}
			}
		}
	}
	Sp[nCol-n1] = pp
	return nzdiag
}
