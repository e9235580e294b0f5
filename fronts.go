package symfact

// computeInFront assigns every original row to a front by scanning the
// pivot columns of each front in tree order and claiming the still
// unclaimed rows of A in those columns.  Singleton pivot rows carry the
// empty sentinel; rows claimed by no front land in the dummy front nfr.
// front1strow[i] receives the tally of rows first claimed by front i.
func computeInFront(nRow, n1, nfr Int, Ap, Ai []Int,
	CpermInit, Rperm1, frNpivcol []Int, inFront, front1strow []Int) {

	for row := Int(0); row < nRow; row++ {
		inFront[row] = nfr
	}
	for k := Int(0); k < n1; k++ {
		inFront[Rperm1[k]] = empty
	}
	newj := n1
	for i := Int(0); i < nfr; i++ {
		f1rows := Int(0)
		for kk := Int(0); kk < frNpivcol[i]; kk++ {
			j := CpermInit[newj]
			newj++
			for p := Ap[j]; p < Ap[j+1]; p++ {
				row := Ai[p]
				if inFront[row] == nfr {
					inFront[row] = i
					f1rows++
				}
			}
		}
		front1strow[i] = f1rows
	}
}

// permuteInFront converts a collaborator-supplied assignment, indexed
// by pruned row position, into one indexed by original row, and tallies
// the rows of each front into front1strow.  ci is scratch of size nRow.
func permuteInFront(nRow, n1, nemptyRow, nfr Int, Rperm1 []Int,
	inFront, front1strow, ci []Int) {

	for i := Int(0); i <= nfr; i++ {
		front1strow[i] = 0
	}
	k := Int(0)
	for ; k < n1; k++ {
		ci[Rperm1[k]] = empty
	}
	for ; k < nRow-nemptyRow; k++ {
		row := Rperm1[k]
		i := inFront[k-n1]
		if i != empty {
			front1strow[i]++
		}
		ci[row] = i
	}
	for ; k < nRow; k++ {
		ci[Rperm1[k]] = nfr
	}
	copy(inFront[:nRow], ci[:nRow])
}

// fillRpermInit turns the per-front row tallies in front1strow into
// starting offsets and scatters every row into its front's contiguous
// range of RpermInit.  Singleton pivot rows occupy [0, n1).  f1 is
// scratch of size nfr+1.
func fillRpermInit(nRow, n1, nfr Int, Rperm1, inFront, front1strow, f1, RpermInit []Int) {
	for k := Int(0); k < n1; k++ {
		RpermInit[k] = Rperm1[k]
	}
	k := n1
	for i := Int(0); i < nfr; i++ {
		f1rows := front1strow[i]
		front1strow[i] = k
		k += f1rows
	}
	front1strow[nfr] = k

	copy(f1[:nfr+1], front1strow[:nfr+1])
	for row := Int(0); row < nRow; row++ {
		i := inFront[row]
		if i != empty {
			RpermInit[f1[i]] = row
			f1[i]++
		}
	}
	RpermInit[nRow] = empty
}

// leftmostDesc labels every front with its smallest descendant by
// walking up from each front and stopping at the first labeled
// ancestor.  parent[f] > f makes one pass sufficient.
func leftmostDesc(nfr Int, frParent, frLeftmost []Int) {
	for i := Int(0); i <= nfr; i++ {
		frLeftmost[i] = empty
	}
	for i := Int(0); i < nfr; i++ {
		j := i
		for j != empty && frLeftmost[j] == empty {
			frLeftmost[j] = i
			j = frParent[j]
		}
	}
}

// chainResult carries the chain decomposition and the global extrema.
type chainResult struct {
	nchains    Int
	maxnrows   Int // odd
	maxncols   Int
	dmaxfrsize float64
}

// buildChains partitions the fronts into maximal runs with
// parent[f] == f+1 and records the running row and column maxima of
// each run.  Chain maxrows is rounded up to the next odd integer.
func buildChains(nfr Int, frNpivcol, frParent, frNrows, frNcols []Int,
	chainStart, chainMaxrows, chainMaxcols []Int) chainResult {

	res := chainResult{maxnrows: 1, maxncols: 1, dmaxfrsize: 1}
	nchains := Int(0)
	chainStart[0] = 0
	maxrows := Int(1)
	maxcols := Int(1)

	for i := Int(0); i < nfr; i++ {
		maxrows = maxv(maxrows, frNrows[i])
		maxcols = maxv(maxcols, frNcols[i])

		if frParent[i] != i+1 {
			// end of chain
			if maxrows%2 == 0 {
				maxrows++
			}
			chainMaxrows[nchains] = maxrows
			chainMaxcols[nchains] = maxcols

			s := float64(maxrows) * float64(maxcols)
			res.dmaxfrsize = maxv(res.dmaxfrsize, s)
			res.maxnrows = maxv(res.maxnrows, maxrows)
			res.maxncols = maxv(res.maxncols, maxcols)

			nchains++
			chainStart[nchains] = i + 1
			maxrows = 1
			maxcols = 1
		}
	}
	chainMaxrows[nchains] = 0
	chainMaxcols[nchains] = 0
	res.nchains = nchains
	return res
}

// computeEsize counts, per non-singleton non-empty column, the entries
// whose row is not dense: the size of the column's initial element.
// ci is scratch of size nRow for the inverse row permutation.
func computeEsize(nRow, nCol, n1, nemptyCol, denseRowThreshold Int,
	Ap, Ai, CpermInit, RpermInit, Cdeg, Rdeg []Int, esize, ci []Int) {

	for newrow := Int(0); newrow < nRow; newrow++ {
		ci[RpermInit[newrow]] = newrow
	}
	for col := n1; col < nCol-nemptyCol; col++ {
		oldcol := CpermInit[col]
		es := Cdeg[oldcol]
		for p := Ap[oldcol]; p < Ap[oldcol+1]; p++ {
			oldrow := Ai[p]
			if ci[oldrow] >= n1 && Rdeg[oldrow] > denseRowThreshold {
				es--
			}
		}
		esize[col-n1] = es
	}
}

// permuteDegrees rewrites deg in place so that deg[k] becomes the
// degree of the k-th row or column under perm.  w is scratch.
func permuteDegrees(n Int, perm, deg, w []Int) {
	for k := Int(0); k < n; k++ {
		w[k] = deg[perm[k]]
	}
	copy(deg[:n], w[:n])
}

// diagonalMap writes dmap[newcol] = newrow, the row the original
// diagonal element of column CpermInit[newcol] moved to.  ci is scratch
// of size n for the inverse row permutation.
func diagonalMap(n Int, CpermInit, RpermInit, dmap, ci []Int) {
	for newrow := Int(0); newrow < n; newrow++ {
		ci[RpermInit[newrow]] = newrow
	}
	for newcol := Int(0); newcol < n; newcol++ {
		dmap[newcol] = ci[CpermInit[newcol]]
	}
}
