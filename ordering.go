package symfact

// OrderingFunc is the single capability expected from an external
// fill-reducing ordering.  When symmetric is true and nRow == nCol, Ap
// and Ai hold the pattern of A+A' (diagonal excluded) and the ordering
// is for P(A+A')P'.  Otherwise Ap and Ai hold a column-form pattern and
// the ordering is for AQ (fill in A'A).  The function writes a
// permutation of 0..nCol-1 into perm and returns true on success.  It
// may fill userInfo[0..2] with Cholesky statistics for the symmetric
// case (max column count, nnz(L), flop count); it must not retain the
// input slices past return.
type OrderingFunc func(nRow, nCol Int, symmetric bool, Ap, Ai []Int,
	perm []Int, params any, userInfo []float64) bool

// NaturalOrdering is the identity column ordering.
func NaturalOrdering(nRow, nCol Int, symmetric bool, Ap, Ai []Int,
	perm []Int, params any, userInfo []float64) bool {
	for k := Int(0); k < nCol; k++ {
		perm[k] = k
	}
	return true
}

// DefaultOrdering is the built-in stand-in for the AMD and COLAMD
// collaborators: a greedy minimum-degree ordering on a quotient
// elimination graph.  Symmetric calls order the given A+A' pattern
// directly; unsymmetric calls treat each row of A as a clique of
// columns, which orders the columns by the fill they cause in A'A.
func DefaultOrdering(nRow, nCol Int, symmetric bool, Ap, Ai []Int,
	perm []Int, params any, userInfo []float64) bool {
	if symmetric && nRow == nCol {
		minDegreeOrder(nCol, Ap, Ai, nil, nil, perm)
		return true
	}
	// clique mode needs the row form of the column pattern
	rp := make([]Int, nRow+1)
	ri := make([]Int, Ap[nCol])
	w := make([]Int, maxv(nRow, Int(1)))
	transposePattern(nRow, nCol, Ap, Ai, nil, rp, ri, w)
	minDegreeOrder(nCol, nil, nil, rp, ri, perm)
	return true
}

// minDegreeOrder eliminates the n nodes of a quotient graph in greedy
// minimum-degree order.  The graph is given either as plain adjacency
// lists (adjPtr/adjIdx, diagonal-free) or as a set of cliques
// (cliquePtr/cliqueIdx: each clique's members become mutually
// adjacent), or both.  perm[k] is the k-th node eliminated.
func minDegreeOrder(n Int, adjPtr, adjIdx, cliquePtr, cliqueIdx []Int, perm []Int) {
	adj := make([][]Int, n)     // live node-node edges
	elemOf := make([][]Int, n)  // elements adjacent to each node
	var elems [][]Int           // node lists of live elements
	var absorbed []bool

	if adjPtr != nil {
		for i := Int(0); i < n; i++ {
			adj[i] = append([]Int(nil), adjIdx[adjPtr[i]:adjPtr[i+1]]...)
		}
	}
	if cliquePtr != nil {
		ncliques := Int(len(cliquePtr)) - 1
		for r := Int(0); r < ncliques; r++ {
			members := cliqueIdx[cliquePtr[r]:cliquePtr[r+1]]
			if len(members) == 0 {
				continue
			}
			e := Int(len(elems))
			elems = append(elems, append([]Int(nil), members...))
			absorbed = append(absorbed, false)
			for _, i := range members {
				elemOf[i] = append(elemOf[i], e)
			}
		}
	}

	alive := make([]bool, n)
	deg := make([]Int, n)
	mark := make([]Int, n)
	stamp := Int(0)

	// exact external degree of node i: the union of its live neighbors
	// and the live nodes of its elements
	degree := func(i Int) Int {
		stamp++
		d := Int(0)
		mark[i] = stamp
		for _, j := range adj[i] {
			if alive[j] && mark[j] != stamp {
				mark[j] = stamp
				d++
			}
		}
		live := elemOf[i][:0]
		for _, e := range elemOf[i] {
			if absorbed[e] {
				continue
			}
			live = append(live, e)
			for _, j := range elems[e] {
				if alive[j] && mark[j] != stamp {
					mark[j] = stamp
					d++
				}
			}
		}
		elemOf[i] = live
		return d
	}

	for i := Int(0); i < n; i++ {
		alive[i] = true
	}
	for i := Int(0); i < n; i++ {
		deg[i] = degree(i)
	}

	lp := make([]Int, 0, n)
	for k := Int(0); k < n; k++ {
		p := empty
		for i := Int(0); i < n; i++ {
			if alive[i] && (p == empty || deg[i] < deg[p]) {
				p = i
			}
		}
		perm[k] = p
		alive[p] = false

		// form the new element: all live nodes reachable from p
		stamp++
		mark[p] = stamp
		lp = lp[:0]
		for _, j := range adj[p] {
			if alive[j] && mark[j] != stamp {
				mark[j] = stamp
				lp = append(lp, j)
			}
		}
		for _, e := range elemOf[p] {
			if absorbed[e] {
				continue
			}
			for _, j := range elems[e] {
				if alive[j] && mark[j] != stamp {
					mark[j] = stamp
					lp = append(lp, j)
				}
			}
			absorbed[e] = true
		}
		if len(lp) == 0 {
			continue
		}

		enew := Int(len(elems))
		elems = append(elems, append([]Int(nil), lp...))
		absorbed = append(absorbed, false)
		for _, i := range lp {
			// edges into the new element are redundant
			kept := adj[i][:0]
			for _, j := range adj[i] {
				if alive[j] && mark[j] != stamp {
					kept = append(kept, j)
				}
			}
			adj[i] = kept
			elemOf[i] = append(elemOf[i], enew)
		}
		for _, i := range lp {
			deg[i] = degree(i)
		}
	}
}

// cholmodDispatch stands in for the cholmod-style ordering multiplexer:
// metis, best and cholmod fall back to the built-in minimum degree (no
// graph partitioner is linked), none is the natural ordering.  Returns
// the ordering actually used.
func cholmodDispatch(option int, nRow, nCol Int, symmetric bool,
	Ap, Ai []Int, perm []Int, userInfo []float64) (int, bool) {
	switch option {
	case OrderingNone:
		return OrderingNone, NaturalOrdering(nRow, nCol, symmetric, Ap, Ai, perm, nil, userInfo)
	default:
		return OrderingAMD, DefaultOrdering(nRow, nCol, symmetric, Ap, Ai, perm, nil, userInfo)
	}
}

// combineOrdering merges the singleton ordering with the inverse
// permutation returned by the fill-reducing collaborator: singleton
// columns first in peel order, the non-singleton interior reordered by
// Qinv shifted past the singletons, empty columns last.
func combineOrdering(n1, nemptyCol, nCol Int, CpermInit, Cperm1, Qinv []Int) {
	for k := Int(0); k < n1; k++ {
		CpermInit[k] = Cperm1[k]
	}
	for k := n1; k < nCol-nemptyCol; k++ {
		oldcol := Cperm1[k]
		newcol := k - n1
		knew := Qinv[newcol] + n1
		CpermInit[knew] = oldcol
	}
	for k := nCol - nemptyCol; k < nCol; k++ {
		CpermInit[k] = Cperm1[k]
	}
}
