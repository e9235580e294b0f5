package symfact

// setStats fills the caller-visible Info slots with the projections the
// numeric phase will be measured against: the arena sizes, the nonzero
// bounds, and the flop bound, all as estimates computed from the chain
// walk of the simulation.
func setStats(info []float64, sym *Symbolic,
	dmaxUsage, dheadUsage, flops, dlnz, dunz, dmaxfrsize,
	maxnrows, maxncols float64) {

	info[InfoNumericSizeEstimate] = dheadUsage
	info[InfoPeakMemoryEstimate] = sym.PeakSymUsage + dmaxUsage +
		float64(2*intUnits(sym.NRow+sym.NCol+2))
	info[InfoFlopsEstimate] = flops
	info[InfoLnzEstimate] = dlnz
	info[InfoUnzEstimate] = dunz
	info[InfoMaxFrontSizeEstimate] = dmaxfrsize
	info[InfoMaxFrontNrowsEstimate] = maxnrows
	info[InfoMaxFrontNcolsEstimate] = maxncols
}
