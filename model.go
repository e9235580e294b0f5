package symfact // import "symfact"

import "errors"

// Strategy codes.  StrategyObsolete is accepted and clamped to auto.
const (
	StrategyAuto        int = 0
	StrategyUnsymmetric int = 1
	StrategyObsolete    int = 2
	StrategySymmetric   int = 3
)

// Ordering options.
const (
	OrderingCholmod    int = 0 // cholmod-style dispatcher
	OrderingAMD        int = 1 // AMD for symmetric, COLAMD-style for unsymmetric
	OrderingGiven      int = 2 // Quser supplied by the caller
	OrderingMetis      int = 3
	OrderingBest       int = 4
	OrderingNone       int = 5 // natural ordering
	OrderingUser       int = 6 // user-supplied ordering callback
	OrderingMetisGuard int = 7 // metis unless a dense row makes A'A costly
)

// Status codes stored in Info[InfoStatus].
const (
	StatusOK                 = 0
	StatusOutOfMemory        = -1
	StatusArgumentMissing    = -5
	StatusNNonpositive       = -6
	StatusInvalidMatrix      = -8
	StatusInvalidPermutation = -15
	StatusOrderingFailed     = -50
	StatusInternalError      = -911
)

var (
	ErrArgumentMissing    = errors.New("symfact: required argument missing")
	ErrNNonpositive       = errors.New("symfact: matrix dimensions must be positive")
	ErrInvalidMatrix      = errors.New("symfact: invalid matrix")
	ErrInvalidPermutation = errors.New("symfact: invalid permutation")
	ErrOutOfMemory        = errors.New("symfact: problem too large for index width")
	ErrOrderingFailed     = errors.New("symfact: fill-reducing ordering failed")
	ErrInternal           = errors.New("symfact: internal error")
)

// statusOf maps a pipeline error to its Info status code.
func statusOf(err error) float64 {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrArgumentMissing):
		return StatusArgumentMissing
	case errors.Is(err, ErrNNonpositive):
		return StatusNNonpositive
	case errors.Is(err, ErrInvalidMatrix):
		return StatusInvalidMatrix
	case errors.Is(err, ErrInvalidPermutation):
		return StatusInvalidPermutation
	case errors.Is(err, ErrOutOfMemory):
		return StatusOutOfMemory
	case errors.Is(err, ErrOrderingFailed):
		return StatusOrderingFailed
	default:
		return StatusInternalError
	}
}

const (
	// maxBlockSize bounds the numeric kernel panel size.
	maxBlockSize = Int(64)

	// empty is the index sentinel.  It survives in the Info vector as
	// "not computed"; inside the package it marks unset links.
	empty = Int(-1)
)

// FixQ override values for Control.FixQ.
const (
	FixQNoOverride    int = 0
	FixQPreferFixed   int = 1
	FixQPreferRefined int = -1
)

// Control holds the analysis tunables.  A nil Control means defaults.
type Control struct {
	DenseRow  float64 // dense row threshold factor
	DenseCol  float64 // dense column threshold factor
	BlockSize Int     // panel size nb for the numeric kernel

	Strategy int // StrategyAuto, StrategyUnsymmetric, StrategySymmetric
	Ordering int // one of the Ordering* options
	FixQ     int // FixQPreferFixed, FixQPreferRefined, FixQNoOverride

	DoSingletons bool // allow singleton peeling
	Aggressive   bool // aggressive absorption, passed to the ordering

	SymThreshold     float64 // auto strategy: minimum pattern symmetry
	NnzDiagThreshold float64 // auto strategy: minimum diagonal density
}

// DefaultControl returns the default tunables.
func DefaultControl() *Control {
	return &Control{
		DenseRow:         0.2,
		DenseCol:         0.2,
		BlockSize:        32,
		Strategy:         StrategyAuto,
		Ordering:         OrderingAMD,
		FixQ:             FixQNoOverride,
		DoSingletons:     true,
		Aggressive:       true,
		SymThreshold:     0.5,
		NnzDiagThreshold: 0.9,
	}
}

// Symbolic is the result of the analysis.  It is immutable after
// construction; ownership transfers to the caller.
type Symbolic struct {
	NRow, NCol, NZ Int
	Nb             Int // numeric kernel block size (even)

	N1, N1r, N1c         Int // singletons peeled (total, row, column)
	Nempty               Int // min(NemptyRow, NemptyCol)
	NemptyRow, NemptyCol Int

	// CpermInit[0..NCol) and RpermInit[0..NRow) are the initial column
	// and row permutations.  Both carry one trailing sentinel entry.
	CpermInit []Int
	RpermInit []Int

	// Cdeg[k] and Rdeg[k] are the degrees of the k-th column and row
	// under the final ordering.  Singleton positions hold the live
	// degree at the time of elimination.
	Cdeg []Int
	Rdeg []Int

	Nfr     Int // number of frontal matrices (excluding the dummy)
	Nchains Int

	// Per-front arrays, length Nfr+1; slot Nfr is the dummy placeholder
	// front for empty rows and columns.
	FrontNpivcol      []Int
	FrontParent       []Int // parent[f] > f, or the empty sentinel at a root
	Front1strow       []Int
	FrontLeftmostdesc []Int

	// Per-chain arrays, length Nchains+1.
	ChainStart   []Int
	ChainMaxrows []Int // always odd
	ChainMaxcols []Int

	// Esize[col-n1] is the initial element size of each non-singleton,
	// non-empty column when dense rows are present; nil otherwise.
	Esize []Int

	// DiagonalMap[newcol] = newrow, present for the symmetric strategy
	// or a Paru caller on square matrices.
	DiagonalMap []Int

	Ordering       int // ordering actually used
	Strategy       int // strategy chosen
	FixQ           bool
	PreferDiagonal bool

	DenseRowThreshold Int

	Sym    float64 // pattern symmetry of the pruned matrix, or -1
	Nzaat  Int     // nz in S+S', or -1
	Nzdiag Int     // structurally nonzero diagonal entries of S, or -1

	AmdDmax float64 // symmetric-analysis dense-column bound, or -1
	AmdLunz float64 // symmetric-analysis nnz(L+U) estimate, or -1

	MaxNrows Int // largest Chain_maxrows (odd)
	MaxNcols Int // largest Chain_maxcols

	// Numeric-phase projections, in Units.
	LnzBound        float64
	UnzBound        float64
	LunzBound       float64
	FlopsBound      float64
	DmaxUsage       float64
	NumMemInitUsage float64
	NumMemSizeEst   float64
	NumMemUsageEst  float64

	PeakSymUsage float64 // symbolic-phase peak memory, in Units
}

// SW is the call-scoped workspace.  It is released in two tranches:
// Si, Sp and Cperm1 after the symbolic factorization stage, the rest on
// return, unless ParuSymbolic transfers the whole object to the caller.
type SW struct {
	// freed early
	Si        []Int
	Sp        []Int
	InvRperm1 []Int // cleared with the late tranche
	Cperm1    []Int

	// freed late
	Ci           []Int
	FrontNpivcol []Int
	FrontNrows   []Int
	FrontNcols   []Int
	FrontParent  []Int
	FrontCols    []Int
	Rperm1       []Int
	InFront      []Int

	// not allocated by the analysis; release clears it
	Rs []float64
}

// releaseEarly retires the first workspace tranche.
func (sw *SW) releaseEarly() {
	sw.Si = nil
	sw.Sp = nil
	sw.Cperm1 = nil
}

// release retires the whole workspace.
func (sw *SW) release() {
	sw.releaseEarly()
	sw.InvRperm1 = nil
	sw.Ci = nil
	sw.FrontNpivcol = nil
	sw.FrontNrows = nil
	sw.FrontNcols = nil
	sw.FrontParent = nil
	sw.FrontCols = nil
	sw.Rperm1 = nil
	sw.InFront = nil
	sw.Rs = nil
}
