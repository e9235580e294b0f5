package symfact

import "math"

// simResult carries the outcome of the numeric-kernel simulation.
type simResult struct {
	headUsage Int // integer tracking of the init stage
	tailUsage Int

	dheadUsage float64
	dmaxUsage  float64
	dlnz       float64
	dunz       float64
	flops      float64

	numMemInitUsage      float64
	variableInitEstimate float64
	ndenseRow            Int
}

// simulateKernel walks the chains under the exact memory discipline of
// the numeric kernel: one arena, head growing upward with finalized LU
// factors, tail growing downward with element records and tuple lists.
// All units are arena Units.  Cdeg and Rdeg must already be permuted
// into the final ordering; link is scratch of size >= nfr.
func simulateKernel(traits scalarTraits, nRow, nCol, n1, nInner,
	nemptyRow, nemptyCol, nfr, nchains, nb, denseRowThreshold Int,
	esize, Cdeg, Rdeg []Int,
	frNpivcol, frNrows, frNcols, frParent []Int,
	chainStart, chainMaxrows, chainMaxcols []Int, link []Int) simResult {

	var res simResult

	// upper limits of nz in L and U, both including the diagonal
	res.dlnz = float64(nInner)
	res.dunz = res.dlnz

	// head and tail markers
	headUsage := Int(1)
	dheadUsage := float64(1)
	tailUsage := Int(2)
	dtailUsage := float64(2)

	// the kernel's init stage allocates the Rpi and Rpx row-pointer
	// workspaces at the tail, with their headers
	tailUsage += 2*ptrUnits(nRow+1) + 2
	dtailUsage += 2*dPtrUnits(float64(nRow+1)) + 2

	// LU factors of the singleton pivots, at the head
	for k := Int(0); k < n1; k++ {
		lnz := Cdeg[k] - 1
		unz := Rdeg[k] - 1
		res.dlnz += float64(lnz)
		res.dunz += float64(unz)
		headUsage += intUnits(lnz) + traits.entryUnits(lnz) +
			intUnits(unz) + traits.entryUnits(unz)
		dheadUsage += dIntUnits(float64(lnz)) + traits.dEntryUnits(float64(lnz)) +
			dIntUnits(float64(unz)) + traits.dEntryUnits(float64(unz))
	}

	// initial column elements at the tail
	for k := n1; k < nCol-nemptyCol; k++ {
		es := Cdeg[k]
		if esize != nil {
			es = esize[k-n1]
		}
		if es > 0 {
			tailUsage += traits.elementSize(es, 1) + 1
			dtailUsage += traits.dElementSize(float64(es), 1) + 1
		}
	}

	// dense rows become row elements of their own
	if esize != nil {
		for k := n1; k < nRow-nemptyRow; k++ {
			if rdeg := Rdeg[k]; rdeg > denseRowThreshold {
				tailUsage += traits.elementSize(1, rdeg) + 1
				dtailUsage += traits.dElementSize(1, float64(rdeg)) + 1
				res.ndenseRow++
			}
		}
	}

	// tuple lists, one per live row and column
	if esize != nil {
		for row := n1; row < nRow; row++ {
			tlen := Rdeg[row]
			if tlen > denseRowThreshold {
				tlen = 1
			}
			tailUsage += 1 + tupleUnits(tuples(tlen))
			dtailUsage += 1 + dTupleUnits(float64(tuples(tlen)))
		}
		col := n1
		for ; col < nCol-nemptyCol; col++ {
			// one tuple for the column element plus one per dense row
			tlen := Cdeg[col] - esize[col-n1]
			if esize[col-n1] > 0 {
				tlen++
			}
			tailUsage += 1 + tupleUnits(tuples(tlen))
			dtailUsage += 1 + dTupleUnits(float64(tuples(tlen)))
		}
		for ; col < nCol; col++ {
			tailUsage += 1 + tupleUnits(tuples(0))
			dtailUsage += 1 + dTupleUnits(float64(tuples(0)))
		}
	} else {
		for row := n1; row < nRow; row++ {
			tlen := Rdeg[row]
			tailUsage += 1 + tupleUnits(tuples(tlen))
			dtailUsage += 1 + dTupleUnits(float64(tuples(tlen)))
		}
		for col := n1; col < nCol; col++ {
			tailUsage += 1 + tupleUnits(tuples(1))
			dtailUsage += 1 + dTupleUnits(float64(tuples(1)))
		}
	}

	res.headUsage = headUsage
	res.tailUsage = tailUsage
	res.numMemInitUsage = float64(headUsage + tailUsage)

	dmaxUsage := dheadUsage + dtailUsage
	dmaxUsage = math.Max(res.numMemInitUsage, math.Ceil(dmaxUsage))
	res.variableInitEstimate = dmaxUsage

	// the init stage frees Rpi and Rpx before the factorization begins
	dtailUsage -= 2 * dPtrUnits(float64(nRow+1))

	// child lists keyed by parent front
	for i := Int(0); i < nfr; i++ {
		link[i] = empty
	}

	flops := float64(0)
	for chain := Int(0); chain < nchains; chain++ {
		f1 := chainStart[chain]
		f2 := chainStart[chain+1] - 1

		// frontal working array shared by the whole chain:
		// LU is nb-by-nb, L is dr-by-nb, U is nb-by-dc, C is dr-by-dc
		dr := float64(chainMaxrows[chain])
		dc := float64(chainMaxcols[chain])
		dnb := float64(nb)
		fsize := dnb*dnb + dr*dnb + dnb*dc + dr*dc
		dtailUsage += traits.dEntryUnits(fsize)
		dmaxUsage = math.Max(dmaxUsage, dheadUsage+dtailUsage)

		for i := f1; i <= f2; i++ {
			fpivcol := frNpivcol[i]
			fallrows := frNrows[i]
			fallcols := frNcols[i]
			parent := frParent[i]
			fpiv := minv(fpivcol, fallrows)
			f := float64(fpiv)
			r := float64(fallrows - fpiv)
			c := float64(fallcols - fpiv)

			// assemble all children of front i: their elements leave
			// the tail together with their tuple space
			for child := link[i]; child != empty; child = link[child] {
				cp := minv(frNpivcol[child], frNrows[child])
				cr := float64(frNrows[child] - cp)
				cc := float64(frNcols[child] - cp)
				dtailUsage -= traits.dElementSizeWithTuples(cr, cc)
			}

			// canonical flop count for factorizing the front
			flops += traits.divFlops()*(f*r+(f-1)*f/2) +
				traits.multsubFlops()*(f*r*c+(r+c)*(f-1)*f/2+(f-1)*f*(2*f-1)/6)

			// nz in L below and U above the diagonal
			dlf := (f*f-f)/2 + f*r
			duf := (f*f-f)/2 + f*c
			res.dlnz += dlf
			res.dunz += duf

			// store f columns of L and f rows of U at the head
			dheadUsage += traits.dEntryUnits(dlf+duf) + dIntUnits(r+c+f)

			if parent != empty {
				// new element at the tail, linked into the parent
				dtailUsage += traits.dElementSizeWithTuples(r, c)
				link[i] = link[parent]
				link[parent] = i
			}

			dmaxUsage = math.Max(dmaxUsage, dheadUsage+dtailUsage)
		}

		// the chain's frontal working array is released
		dtailUsage -= traits.dEntryUnits(fsize)
	}

	res.dheadUsage = math.Ceil(dheadUsage)
	res.dmaxUsage = math.Ceil(dmaxUsage)
	res.flops = flops
	return res
}
