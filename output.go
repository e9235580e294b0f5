package symfact

import (
	"fmt"
	"io"
)

var strategyNames = map[int]string{
	StrategyAuto:        "auto",
	StrategyUnsymmetric: "unsymmetric",
	StrategySymmetric:   "symmetric",
}

var orderingNames = map[int]string{
	OrderingCholmod:    "cholmod",
	OrderingAMD:        "amd/colamd",
	OrderingGiven:      "given",
	OrderingMetis:      "metis",
	OrderingBest:       "best",
	OrderingNone:       "none",
	OrderingUser:       "user",
	OrderingMetisGuard: "metis-guard",
	int(empty):         "none",
}

// Report writes a human-readable dump of the analysis to w.
func (s *Symbolic) Report(w io.Writer) {
	fmt.Fprintf(w, "symbolic analysis: %d-by-%d, nz = %d\n", s.NRow, s.NCol, s.NZ)
	fmt.Fprintf(w, "  strategy = %s   ordering = %s   fixQ = %v   prefer diagonal = %v\n",
		strategyNames[s.Strategy], orderingNames[s.Ordering], s.FixQ, s.PreferDiagonal)
	fmt.Fprintf(w, "  singletons = %d (col %d, row %d)   empty = %d rows, %d cols\n",
		s.N1, s.N1c, s.N1r, s.NemptyRow, s.NemptyCol)
	if s.Sym >= 0 {
		fmt.Fprintf(w, "  pattern symmetry = %.4f   nz(S+S') = %d   nz diagonal = %d\n",
			s.Sym, s.Nzaat, s.Nzdiag)
	}

	fmt.Fprintf(w, "  fronts = %d   chains = %d   block size = %d\n", s.Nfr, s.Nchains, s.Nb)
	for c := Int(0); c < s.Nchains; c++ {
		fmt.Fprintf(w, "    chain %d: fronts [%d..%d)  maxrows %d  maxcols %d\n",
			c, s.ChainStart[c], s.ChainStart[c+1], s.ChainMaxrows[c], s.ChainMaxcols[c])
	}
	for f := Int(0); f < s.Nfr; f++ {
		parent := "root"
		if s.FrontParent[f] != empty {
			parent = fmt.Sprintf("%d", s.FrontParent[f])
		}
		fmt.Fprintf(w, "    front %d: npivcol %d  1strow %d  leftmost %d  parent %s\n",
			f, s.FrontNpivcol[f], s.Front1strow[f], s.FrontLeftmostdesc[f], parent)
	}

	fmt.Fprintf(w, "  lnz bound = %.0f   unz bound = %.0f   lunz bound = %.0f\n",
		s.LnzBound, s.UnzBound, s.LunzBound)
	fmt.Fprintf(w, "  flops bound = %.0f\n", s.FlopsBound)
	fmt.Fprintf(w, "  memory (Units): init %.0f   final %.0f   peak %.0f\n",
		s.NumMemInitUsage, s.NumMemSizeEst, s.NumMemUsageEst)
	fmt.Fprintf(w, "  max front: %d rows, %d cols\n", s.MaxNrows, s.MaxNcols)
}
