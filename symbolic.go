package symfact

import (
	"fmt"
	"math"
	"time"
)

// QSymbolic performs the symbolic analysis of an nRow-by-nCol sparse
// matrix in compressed-column form.  Quser, when non-nil, is taken as
// the column ordering.  Ax (and Az for split complex values) are
// consumed only to discount numerically zero diagonal entries; both may
// be nil.  info, when non-nil, must have at least InfoLen slots.
func QSymbolic(nRow, nCol Int, Ap, Ai []Int, Ax, Az []float64,
	Quser []Int, ctl *Control, info []float64) (*Symbolic, error) {
	s, _, err := symbolicAnalysis(nRow, nCol, Ap, Ai, Ax, Az, Quser, nil, nil, ctl, info, false)
	return s, err
}

// FSymbolic is QSymbolic with a user-supplied ordering callback in
// place of an explicit column permutation.
func FSymbolic(nRow, nCol Int, Ap, Ai []Int, Ax, Az []float64,
	fn OrderingFunc, params any, ctl *Control, info []float64) (*Symbolic, error) {
	s, _, err := symbolicAnalysis(nRow, nCol, Ap, Ai, Ax, Az, nil, fn, params, ctl, info, false)
	return s, err
}

// ParuSymbolic additionally returns the call workspace to the caller
// instead of retiring it.  Quser wins over fn when both are given.
func ParuSymbolic(nRow, nCol Int, Ap, Ai []Int, Ax, Az []float64,
	Quser []Int, fn OrderingFunc, params any, ctl *Control,
	info []float64) (*Symbolic, *SW, error) {
	return symbolicAnalysis(nRow, nCol, Ap, Ai, Ax, Az, Quser, fn, params, ctl, info, true)
}

// symWorkUsage is the workspace footprint of one analysis call, in
// Units: the Ci arena, the pruned matrix, and the permutation scratch.
func symWorkUsage(nCol, nRow, clen, nz float64) float64 {
	return dIntUnits(clen) + dIntUnits(nz) +
		4*dIntUnits(nRow) + 4*dIntUnits(nCol) +
		2*dIntUnits(nCol+1) + dUnitsOfBytes(nRow*8)
}

// symbolicUsage is the size of the Symbolic object itself, in Units.
func symbolicUsage(nRow, nCol, nchains, nfr, esize float64, dmap bool) float64 {
	u := 2*dIntUnits(nCol+1) + 2*dIntUnits(nRow+1) // perms and degrees
	u += 4*dIntUnits(nfr+1) + 3*dIntUnits(nchains+1) + dIntUnits(esize)
	if dmap {
		u += dIntUnits(nCol + 1)
	}
	u += dUnitsOfBytes(64 * 8) // header
	return u
}

func symbolicAnalysis(nRow, nCol Int, Ap, Ai []Int, Ax, Az []float64,
	Quser []Int, userOrdering OrderingFunc, userParams any,
	ctl *Control, userInfo []float64, forParu bool) (*Symbolic, *SW, error) {

	tic := time.Now()

	//--------------------------------------------------------------
	// S1: control settings and argument checks
	//--------------------------------------------------------------

	if ctl == nil {
		ctl = DefaultControl()
	}
	drow := math.Max(ctl.DenseRow, 0)
	dcol := math.Max(ctl.DenseCol, 0)
	nb := maxv(Int(2), ctl.BlockSize)
	nb = minv(nb, maxBlockSize)
	if nb%2 == 1 {
		nb++
	}

	ordering := ctl.Ordering
	if ordering < OrderingCholmod || ordering > OrderingMetisGuard {
		ordering = OrderingAMD
	}
	if Quser == nil {
		if ordering == OrderingGiven || (ordering == OrderingUser && userOrdering == nil) {
			ordering = OrderingNone
		}
	} else {
		ordering = OrderingGiven
	}

	info := userInfo
	if Int(len(info)) < InfoLen {
		info = make([]float64, InfoLen)
	}
	clearInfo(info)

	traits := scalarTraits{ax: Ax, az: Az}

	nn := maxv(nRow, nCol)
	nInner := minv(nRow, nCol)

	info[InfoStatus] = StatusOK
	info[InfoNRow] = float64(nRow)
	info[InfoNCol] = float64(nCol)
	info[InfoSizeOfUnit] = unitBytes
	info[InfoSizeOfInt] = intBytes
	info[InfoSizeOfEntry] = float64(traits.entryBytes())
	info[InfoSymbolicDefrag] = 0

	if Ap == nil || Ai == nil {
		info[InfoStatus] = StatusArgumentMissing
		return nil, nil, ErrArgumentMissing
	}
	if nRow <= 0 || nCol <= 0 {
		info[InfoStatus] = StatusNNonpositive
		return nil, nil, ErrNNonpositive
	}
	if Int(len(Ap)) < nCol+1 {
		info[InfoStatus] = StatusInvalidMatrix
		return nil, nil, fmt.Errorf("Ap has %d entries, need %d: %w", len(Ap), nCol+1, ErrInvalidMatrix)
	}
	nz := Ap[nCol]
	info[InfoNZ] = float64(nz)
	if nz < 0 || Ap[0] != 0 || Int(len(Ai)) < nz ||
		(Ax != nil && Int(len(Ax)) < nz) || (Az != nil && Int(len(Az)) < nz) {
		info[InfoStatus] = StatusInvalidMatrix
		return nil, nil, ErrInvalidMatrix
	}

	// the requested strategy, clamped
	strategy := ctl.Strategy
	if nRow != nCol {
		strategy = StrategyUnsymmetric
	}
	if strategy < StrategyAuto || strategy > StrategySymmetric || strategy == StrategyObsolete {
		strategy = StrategyAuto
	}
	if Quser != nil && strategy != StrategySymmetric {
		strategy = StrategyUnsymmetric
	}

	//--------------------------------------------------------------
	// workspace sizing, with the integer-width overflow gate
	//--------------------------------------------------------------

	nzf := float64(nz)
	dClen := colamdRecommended(nzf, float64(nRow), float64(nCol))
	dClen = math.Max(dClen, analyzeClen(nzf, float64(nRow), float64(nCol), float64(nn)))
	dClen = math.Max(dClen, 2.4*nzf+8*float64(nInner)+1)

	info[InfoSymbolicPeakMemory] =
		symWorkUsage(float64(nCol), float64(nRow), dClen, nzf) +
			symbolicUsage(float64(nRow), float64(nCol), float64(nCol), float64(nCol), float64(nCol), true)

	if dClen*intBytes >= float64(intMax) {
		info[InfoStatus] = StatusOutOfMemory
		return nil, nil, fmt.Errorf("workspace of %.0f indices overflows the %d-bit build: %w",
			dClen, 8*intBytes, ErrOutOfMemory)
	}

	// the same sizes, in integers
	clen := maxv(2*nz, 4*nCol) + 8*nCol + 6*nRow + nCol + nz/5
	clen = maxv(clen, nCol+maxv(nz, nCol)+3*nn+1+nCol)
	clen = maxv(clen, Int(2.4*float64(nz))+8*nInner+1)

	//--------------------------------------------------------------
	// the Symbolic object: every field starts empty so that a failed
	// call never leaks a half-built artifact
	//--------------------------------------------------------------

	sym := &Symbolic{
		NRow: nRow, NCol: nCol, NZ: nz, Nb: nb,
		Ordering: int(empty), Sym: -1, Nzaat: empty, Nzdiag: empty,
		AmdDmax: -1, AmdLunz: -1,
	}
	sym.CpermInit = make([]Int, nCol+1)
	sym.RpermInit = make([]Int, nRow+1)
	sym.Cdeg = make([]Int, nCol+1)
	sym.Rdeg = make([]Int, nRow+1)
	sym.Cdeg[nCol] = empty
	sym.Rdeg[nRow] = empty

	var sw *SW
	fail := func(err error) (*Symbolic, *SW, error) {
		info[InfoStatus] = statusOf(err)
		if sw != nil {
			sw.release()
		}
		return nil, nil, err
	}

	if Quser != nil {
		if !isPermutation(Quser, sym.CpermInit, nCol) {
			return fail(ErrInvalidPermutation)
		}
	}

	sw = &SW{
		Si:           make([]Int, maxv(nz, 1)),
		Sp:           make([]Int, nCol+1),
		InvRperm1:    make([]Int, nRow),
		Cperm1:       make([]Int, nCol),
		Ci:           make([]Int, clen),
		FrontNpivcol: make([]Int, nCol+1),
		FrontNrows:   make([]Int, nCol),
		FrontNcols:   make([]Int, nCol),
		FrontParent:  make([]Int, nCol),
		FrontCols:    make([]Int, nCol),
		Rperm1:       make([]Int, nRow),
		InFront:      make([]Int, nRow),
	}

	//--------------------------------------------------------------
	// S2: find the row and column singletons
	//--------------------------------------------------------------

	peel, err := findSingletons(nRow, nCol, Ap, Ai, Quser, ctl.DoSingletons,
		sym.Cdeg, sw.Cperm1, sym.Rdeg, sw.Rperm1, sw.InvRperm1,
		sym.RpermInit, sw.Ci[:maxv(nz, 1)])
	if err != nil {
		return fail(err)
	}

	n1 := peel.n1
	nemptyRow, nemptyCol := peel.nemptyRow, peel.nemptyCol
	nempty := minv(nemptyRow, nemptyCol)

	info[InfoNEmptyCol] = float64(nemptyCol)
	info[InfoNEmptyRow] = float64(nemptyRow)
	info[InfoNDenseCol] = 0
	info[InfoNDenseRow] = 0
	info[InfoColSingletons] = float64(peel.n1c)
	info[InfoRowSingletons] = float64(peel.n1r)
	info[InfoSSymmetric] = b2f(peel.isSym)

	sym.N1 = n1
	sym.N1r = peel.n1r
	sym.N1c = peel.n1c
	sym.Nempty = nempty
	sym.NemptyRow = nemptyRow
	sym.NemptyCol = nemptyCol

	n2 := nn - n1 - nempty
	denseRowThreshold := denseDegree(drow, nCol-n1-nemptyCol)
	sym.DenseRowThreshold = denseRowThreshold

	if !peel.isSym {
		// the peel interior is not pattern symmetric: the symmetric
		// strategy is unavailable regardless of the request
		strategy = StrategyUnsymmetric
	}

	//--------------------------------------------------------------
	// S3: symmetry, nzdiag, and the strategy decision
	//--------------------------------------------------------------

	symScore := -1.0
	nzaat := empty
	nzdiag := empty

	if strategy != StrategyUnsymmetric {
		// square with a symmetric peel; S and its transpose give the
		// pattern statistics of S+S'
		nzdiag = pruneSingletons(n1, nn, Ap, Ai, traits, sw.Cperm1, sw.InvRperm1, sw.Si, sw.Sp)

		snz := sw.Sp[nn-n1]
		rp := make([]Int, n2+1)
		ri := make([]Int, maxv(snz, 1))
		transposePattern(n2, n2, sw.Sp, sw.Si, nil, rp, ri, sym.RpermInit)

		sdeg := sym.CpermInit // workspace until the ordering lands
		res := aat(n2, sw.Sp, sw.Si, rp, ri, sdeg)
		symScore = res.sym
		nzaat = res.nzaat
		info[InfoN2] = float64(n2)

		if strategy == StrategyAuto {
			if symScore >= ctl.SymThreshold &&
				float64(nzdiag) >= ctl.NnzDiagThreshold*float64(n2) {
				strategy = StrategySymmetric
			} else {
				strategy = StrategyUnsymmetric
			}
		}

		if strategy == StrategySymmetric && Quser == nil {
			if ordering == OrderingMetisGuard {
				ordering = OrderingMetis
			}
			used, err := orderSymmetric(ordering, n2, nn, n1, nempty,
				sw, sym, info, rp, ri, sdeg, userOrdering, userParams, traits)
			if err != nil {
				return fail(err)
			}
			sym.Ordering = used
		}
	}

	sym.Sym = symScore
	sym.Nzaat = nzaat
	sym.Nzdiag = nzdiag
	info[InfoPatternSymmetry] = symScore
	info[InfoNzAPlusAT] = float64(nzaat)
	info[InfoNzDiag] = float64(nzdiag)

	// finalize fixQ and the diagonal preference
	fixQ := strategy == StrategySymmetric
	preferDiagonal := strategy == StrategySymmetric
	if ctl.FixQ > 0 {
		fixQ = true
	} else if ctl.FixQ < 0 {
		fixQ = false
	}

	sym.Strategy = strategy
	sym.FixQ = fixQ
	sym.PreferDiagonal = preferDiagonal
	info[InfoStrategyUsed] = float64(strategy)
	info[InfoQFixed] = b2f(fixQ)
	info[InfoDiagPreferred] = b2f(preferDiagonal)

	//--------------------------------------------------------------
	// S4: the fill-reducing column ordering
	//--------------------------------------------------------------

	if Quser != nil {
		copy(sym.CpermInit[:nCol], sw.Cperm1[:nCol])
		sym.Ordering = OrderingGiven
	}

	if strategy == StrategyUnsymmetric && Quser == nil {
		used, err := orderUnsymmetric(ordering, nRow, nCol, n1,
			nemptyRow, nemptyCol, peel.maxRdeg, drow,
			Ap, Ai, sw, sym, userOrdering, userParams)
		if err != nil {
			return fail(err)
		}
		sym.Ordering = used
	}

	info[InfoOrderingUsed] = float64(sym.Ordering)
	sym.CpermInit[nCol] = empty

	//--------------------------------------------------------------
	// S5: symbolic factorization of the permuted, pruned pattern
	//--------------------------------------------------------------

	nrow2 := nRow - n1 - nemptyRow
	ncol2 := nCol - n1 - nemptyCol

	pruneSingletons(n1, nCol, Ap, Ai, scalarTraits{}, sym.CpermInit, sw.InvRperm1, sw.Si, sw.Sp)

	// Ci layout for the transpose and the analysis: Bp, Link, W, and
	// Cperm2 at fixed offsets at the top, row patterns just below Bp
	clen0 := clen - (nn + 1 + 2*nn + nCol)
	bp := sw.Ci[clen0 : clen0+nn+1]
	link := sw.Ci[clen0+nn+1 : clen0+2*nn+1]
	w := sw.Ci[clen0+2*nn+1 : clen0+3*nn+1]
	cperm2 := sw.Ci[clen-nCol : clen]

	// first-touch row order: scan columns left to right, appending
	// each unseen row; empty rows trail in natural order
	nrowS := nRow - n1
	for row := Int(0); row < nrowS; row++ {
		w[row] = 0
	}
	p := link
	k := Int(0)
	for col := Int(0); col < nCol-n1; col++ {
		for pp := sw.Sp[col]; pp < sw.Sp[col+1]; pp++ {
			row := sw.Si[pp]
			if w[row] == 0 {
				w[row] = 1
				p[k] = row
				k++
			}
		}
	}
	nemptyRow = nRow - n1 - k
	sym.NemptyRow = nemptyRow
	nrow2 = nRow - n1 - nemptyRow
	for row := Int(0); row < nrowS && k < nrowS; row++ {
		if w[row] == 0 {
			p[k] = row
			k++
		}
	}

	// B = row form of S (excluding empty columns), rows in P order
	for kk := Int(0); kk < nrowS; kk++ {
		w[p[kk]] = kk // w becomes the inverse of P
	}
	snz := sw.Sp[nCol-n1]
	bsize := maxv(snz, 1)
	clen2 := clen0 - bsize
	bi := sw.Ci[clen2 : clen2+bsize]
	transposePattern(nrowS, ncol2, sw.Sp, sw.Si, w, bp, bi, link)

	nfr, err := analyze(nrow2, ncol2, bp, bi, fixQ,
		sw.FrontNpivcol, sw.FrontNrows, sw.FrontNcols, sw.FrontParent, cperm2)
	if err != nil {
		return fail(err)
	}

	if !fixQ {
		// compose the column etree post-order into the ordering; the
		// empty columns stay at the end
		for kk := Int(0); kk < ncol2; kk++ {
			w[kk] = sym.CpermInit[n1+cperm2[kk]]
		}
		copy(sym.CpermInit[n1:n1+ncol2], w[:ncol2])
	}

	// first pivot column position of each front, for workspace consumers
	kk := n1
	for f := Int(0); f < nfr; f++ {
		sw.FrontCols[f] = kk
		kk += sw.FrontNpivcol[f]
	}

	sw.releaseEarly()

	//--------------------------------------------------------------
	// S6: finalize the front tree
	//--------------------------------------------------------------

	nchains := Int(0)
	for i := Int(0); i < nfr; i++ {
		if sw.FrontParent[i] != i+1 {
			nchains++
		}
	}
	sym.Nfr = nfr
	sym.Nchains = nchains

	esizeLen := Int(0)
	if peel.maxRdeg > denseRowThreshold {
		esizeLen = nCol - n1 - nemptyCol
	}

	info[InfoSymbolicSize] = symbolicUsage(float64(nRow), float64(nCol),
		float64(nchains), float64(nfr), float64(esizeLen), preferDiagonal || forParu)
	info[InfoSymbolicPeakMemory] =
		symWorkUsage(float64(nCol), float64(nRow), float64(clen), nzf) + info[InfoSymbolicSize]
	sym.PeakSymUsage = info[InfoSymbolicPeakMemory]

	sym.FrontNpivcol = make([]Int, nfr+1)
	sym.FrontParent = make([]Int, nfr+1)
	sym.Front1strow = make([]Int, nfr+1)
	sym.FrontLeftmostdesc = make([]Int, nfr+1)
	sym.ChainStart = make([]Int, nchains+1)
	sym.ChainMaxrows = make([]Int, nchains+1)
	sym.ChainMaxcols = make([]Int, nchains+1)
	if esizeLen > 0 {
		sym.Esize = make([]Int, esizeLen)
	}

	// assign rows to fronts and tally each front's newly claimed rows
	computeInFront(nRow, n1, nfr, Ap, Ai,
		sym.CpermInit, sw.Rperm1, sw.FrontNpivcol, sw.InFront, sym.Front1strow)

	k = n1
	for i := Int(0); i < nfr; i++ {
		sym.FrontNpivcol[i] = sw.FrontNpivcol[i]
		sym.FrontParent[i] = sw.FrontParent[i]
		k += sw.FrontNpivcol[i]
	}
	// empty columns and rows belong to the dummy placeholder front
	sym.FrontNpivcol[nfr] = nCol - k
	sym.FrontParent[nfr] = empty

	fillRpermInit(nRow, n1, nfr, sw.Rperm1, sw.InFront, sym.Front1strow,
		sw.Ci[:nfr+1], sym.RpermInit)

	if (preferDiagonal || forParu) && nRow == nCol {
		sym.DiagonalMap = make([]Int, nCol+1)
		diagonalMap(nn, sym.CpermInit, sym.RpermInit, sym.DiagonalMap, sw.Ci)
		sym.DiagonalMap[nCol] = empty
	}

	leftmostDesc(nfr, sym.FrontParent, sym.FrontLeftmostdesc)

	chains := buildChains(nfr, sym.FrontNpivcol, sym.FrontParent,
		sw.FrontNrows, sw.FrontNcols,
		sym.ChainStart, sym.ChainMaxrows, sym.ChainMaxcols)
	if chains.nchains != nchains {
		return fail(fmt.Errorf("chain count mismatch: %w", ErrInternal))
	}
	sym.MaxNrows = chains.maxnrows
	sym.MaxNcols = chains.maxncols

	if sym.Esize != nil {
		computeEsize(nRow, nCol, n1, nemptyCol, denseRowThreshold,
			Ap, Ai, sym.CpermInit, sym.RpermInit, sym.Cdeg, sym.Rdeg,
			sym.Esize, sw.Ci)
	}

	permuteDegrees(nCol, sym.CpermInit, sym.Cdeg, sw.Ci)
	permuteDegrees(nRow, sym.RpermInit, sym.Rdeg, sw.Ci)

	denseColThreshold := denseDegree(dcol, nRow-n1-nemptyRow)
	ndenseCol := Int(0)
	for col := n1; col < nCol-nemptyCol; col++ {
		if sym.Cdeg[col] > denseColThreshold {
			ndenseCol++
		}
	}
	info[InfoNDenseCol] = float64(ndenseCol)

	//--------------------------------------------------------------
	// S7: simulate the numeric kernel
	//--------------------------------------------------------------

	res := simulateKernel(traits, nRow, nCol, n1, nInner,
		nemptyRow, nemptyCol, nfr, nchains, nb, denseRowThreshold,
		sym.Esize, sym.Cdeg, sym.Rdeg,
		sym.FrontNpivcol, sw.FrontNrows, sw.FrontNcols, sym.FrontParent,
		sym.ChainStart, sym.ChainMaxrows, sym.ChainMaxcols, sw.Ci)

	sym.LnzBound = res.dlnz
	sym.UnzBound = res.dunz
	sym.LunzBound = res.dlnz + res.dunz - float64(nInner)
	sym.FlopsBound = res.flops
	sym.DmaxUsage = res.dmaxUsage
	sym.NumMemInitUsage = res.numMemInitUsage
	// the final arena can never be smaller than what the init stage
	// had to allocate
	sym.NumMemSizeEst = math.Max(res.dheadUsage, res.numMemInitUsage)
	sym.NumMemUsageEst = math.Max(res.dmaxUsage, sym.NumMemSizeEst)

	if sym.Esize != nil {
		info[InfoNDenseRow] = float64(res.ndenseRow)
	}
	info[InfoVariableInitEstimate] = res.variableInitEstimate

	setStats(info, sym, sym.NumMemUsageEst, sym.NumMemSizeEst, res.flops,
		res.dlnz, res.dunz, chains.dmaxfrsize,
		float64(chains.maxnrows), float64(chains.maxncols))

	elapsed := time.Since(tic).Seconds()
	info[InfoSymbolicWalltime] = elapsed
	info[InfoSymbolicTime] = elapsed

	if forParu {
		return sym, sw, nil
	}
	sw.release()
	return sym, nil, nil
}

// orderSymmetric runs the symmetric-strategy ordering on the explicit
// pattern of S+S' and combines it with the singleton ordering.  rp/ri
// hold the transpose of the pruned matrix, sdeg its S+S' degrees.
func orderSymmetric(ordering int, n2, nn, n1, nempty Int,
	sw *SW, sym *Symbolic, info []float64, rp, ri, sdeg []Int,
	userOrdering OrderingFunc, userParams any, traits scalarTraits) (int, error) {

	if n2 == 0 {
		sym.AmdDmax = 0
		sym.AmdLunz = 0
		info[InfoSymmetricLunz] = 0
		info[InfoSymmetricFlops] = 0
		info[InfoSymmetricDmax] = 0
		info[InfoSymmetricNdense] = 0
		combineOrdering(n1, nempty, nn, sym.CpermInit, sw.Cperm1, nil)
		return OrderingNone, nil
	}

	// explicit A+A' at the low end of Ci; degree scratch borrows the
	// row permutation slot
	pe, iw := buildAAT(n2, sw.Sp, sw.Si, rp, ri, sdeg, sw.Ci, sym.RpermInit)

	perm := sym.RpermInit[:n2]
	stats := []float64{-1, -1, -1}
	used := ordering
	ok := false
	switch {
	case ordering == OrderingUser && userOrdering != nil:
		ok = userOrdering(n2, n2, true, pe, iw, perm, userParams, stats)
	case ordering == OrderingAMD:
		ok = DefaultOrdering(n2, n2, true, pe, iw, perm, nil, stats)
	default:
		used, ok = cholmodDispatch(ordering, n2, n2, true, pe, iw, perm, stats)
	}
	if !ok {
		return used, ErrOrderingFailed
	}

	// adopt the Cholesky statistics, if the collaborator computed them
	dmax, lnz, flops := stats[0], stats[1], stats[2]
	sym.AmdDmax = dmax
	if lnz >= 0 {
		sym.AmdLunz = 2*lnz + float64(n2)
		info[InfoSymmetricLunz] = sym.AmdLunz
		if flops >= 0 {
			info[InfoSymmetricFlops] = traits.divFlops()*lnz +
				traits.multsubFlops()*(flops-float64(n2))
		}
	}
	if dmax >= 0 {
		info[InfoSymmetricDmax] = dmax
	}
	info[InfoSymmetricNdense] = 0

	qinv := sw.FrontNpivcol
	if !inversePermutation(perm, qinv, n2) {
		return used, ErrOrderingFailed
	}
	combineOrdering(n1, nempty, nn, sym.CpermInit, sw.Cperm1, qinv)
	return used, nil
}

// orderUnsymmetric prunes the matrix and runs the unsymmetric-strategy
// column ordering, resolving metis-guard first, then combines the
// result with the singleton ordering.
func orderUnsymmetric(ordering int, nRow, nCol, n1, nemptyRow, nemptyCol, maxRdeg Int,
	drow float64, Ap, Ai []Int, sw *SW, sym *Symbolic,
	userOrdering OrderingFunc, userParams any) (int, error) {

	// C = A(Rperm1[n1:], Cperm1[n1:]) with Ci as row indices and the
	// final permutation slot as column pointers
	pruneSingletons(n1, nCol, Ap, Ai, scalarTraits{}, sw.Cperm1, sw.InvRperm1, sw.Ci, sym.CpermInit)

	nrow2 := nRow - n1 - nemptyRow
	ncol2 := nCol - n1 - nemptyCol

	if ordering == OrderingMetisGuard {
		if nrow2 == 0 || ncol2 == 0 {
			ordering = OrderingAMD
		} else if maxRdeg > denseDegree(drow, ncol2) {
			// a dense row makes A'A too costly for a partitioner
			ordering = OrderingAMD
		} else {
			ordering = OrderingMetis
		}
	}

	if nrow2 == 0 || ncol2 == 0 {
		combineOrdering(n1, nemptyCol, nCol, sym.CpermInit, sw.Cperm1, nil)
		return OrderingNone, nil
	}

	qq := sw.FrontNrows
	qinv := sw.FrontNpivcol
	stats := []float64{-1, -1, -1}
	used := ordering
	ok := false
	switch {
	case ordering == OrderingUser && userOrdering != nil:
		ok = userOrdering(nrow2, ncol2, false, sym.CpermInit, sw.Ci, qq, userParams, stats)
	case ordering == OrderingAMD:
		ok = DefaultOrdering(nrow2, ncol2, false, sym.CpermInit, sw.Ci, qq, nil, stats)
	default:
		used, ok = cholmodDispatch(ordering, nrow2, ncol2, false, sym.CpermInit, sw.Ci, qq, stats)
	}
	if !ok || !inversePermutation(qq, qinv, ncol2) {
		return used, ErrOrderingFailed
	}

	combineOrdering(n1, nemptyCol, nCol, sym.CpermInit, sw.Cperm1, qinv)
	return used, nil
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
