package symfact

// InfoLen is the fixed arity of the Info vector.  Callers pass a
// []float64 of at least this length, or nil.  Slots not computed by a
// call are left at -1.
const InfoLen = 90

// Well-known Info slots.
const (
	InfoStatus = iota
	InfoNRow
	InfoNCol
	InfoNZ
	InfoSizeOfUnit
	InfoSizeOfInt
	InfoSizeOfEntry
	InfoRowSingletons
	InfoColSingletons
	InfoNEmptyRow
	InfoNEmptyCol
	InfoNDenseRow
	InfoNDenseCol
	InfoN2
	InfoSSymmetric // pattern-symmetric peel interior (0 or 1)
	InfoPatternSymmetry
	InfoNzAPlusAT
	InfoNzDiag
	InfoStrategyUsed
	InfoOrderingUsed
	InfoQFixed
	InfoDiagPreferred
	InfoSymbolicDefrag
	InfoSymbolicPeakMemory
	InfoSymbolicSize
	InfoSymbolicWalltime
	InfoSymbolicTime
	InfoVariableInitEstimate

	// downstream numeric-kernel projections
	InfoNumericSizeEstimate
	InfoPeakMemoryEstimate
	InfoFlopsEstimate
	InfoLnzEstimate
	InfoUnzEstimate
	InfoMaxFrontSizeEstimate
	InfoMaxFrontNrowsEstimate
	InfoMaxFrontNcolsEstimate

	// symmetric-strategy ordering statistics
	InfoSymmetricLunz
	InfoSymmetricFlops
	InfoSymmetricDmax
	InfoSymmetricNdense
)

// clearInfo resets every slot to the "not computed" sentinel.
func clearInfo(info []float64) {
	for i := range info {
		info[i] = -1
	}
}
