package symfact

// aatResult carries the S+S' pattern statistics used by strategy
// selection and by the symmetric ordering path.
type aatResult struct {
	nzaat Int     // entries in S+S', excluding the diagonal
	sym   float64 // fraction of off-diagonal entries with a transpose mate
	deg   []Int   // degree of each node in S+S', excluding the diagonal
}

// aat computes the degrees, size and pattern symmetry of S+S' for a
// square n-by-n pattern with sorted columns.  Rp/Ri must be the
// transpose of Sp/Si (for a pattern-symmetric matrix the two coincide).
// deg is written into the caller's slice (length >= n).
func aat(n Int, Sp, Si, Rp, Ri []Int, deg []Int) aatResult {
	res := aatResult{deg: deg}
	nzoffdiag := Int(0)
	matched := Int(0)

	// merge column j of S with row j of S (both sorted ascending)
	for j := Int(0); j < n; j++ {
		d := Int(0)
		p := Sp[j]
		q := Rp[j]
		for p < Sp[j+1] || q < Rp[j+1] {
			var i Int
			switch {
			case q >= Rp[j+1] || (p < Sp[j+1] && Si[p] < Ri[q]):
				i = Si[p]
				p++
				if i != j {
					nzoffdiag++
				}
			case p >= Sp[j+1] || (q < Rp[j+1] && Ri[q] < Si[p]):
				i = Ri[q]
				q++
				if i != j {
					nzoffdiag++
				}
			default: // Si[p] == Ri[q]: present in both S and S'
				i = Si[p]
				p++
				q++
				if i != j {
					nzoffdiag += 2
					matched += 2
				}
			}
			if i != j {
				d++
			}
		}
		deg[j] = d
		res.nzaat += d
	}

	if nzoffdiag == 0 {
		res.sym = 1.0
	} else {
		res.sym = float64(matched) / float64(nzoffdiag)
	}
	return res
}

// buildAAT constructs the explicit pattern of S+S' (diagonal excluded)
// for the symmetric ordering path.  deg must come from aat.  The result
// is laid out in the caller's workspace s: pointers Pe (n+1) first,
// then the index space Iw.  Column counts accumulate in w (length n).
// Returns the Pe and Iw views.
func buildAAT(n Int, Sp, Si, Rp, Ri []Int, deg []Int, s []Int, w []Int) (Pe, Iw []Int) {
	Pe = s[:n+1]
	Iw = s[n+1:]

	pfree := Int(0)
	for j := Int(0); j < n; j++ {
		Pe[j] = pfree
		w[j] = pfree
		pfree += deg[j]
	}
	Pe[n] = pfree

	// scatter the union of column j of S and row j of S, skipping the
	// diagonal and entries already present in both
	for j := Int(0); j < n; j++ {
		p := Sp[j]
		q := Rp[j]
		for p < Sp[j+1] || q < Rp[j+1] {
			var i Int
			switch {
			case q >= Rp[j+1] || (p < Sp[j+1] && Si[p] < Ri[q]):
				i = Si[p]
				p++
			case p >= Sp[j+1] || (q < Rp[j+1] && Ri[q] < Si[p]):
				i = Ri[q]
				q++
			default:
				i = Si[p]
				p++
				q++
			}
			if i == j {
				continue
			}
			Iw[w[j]] = i
			w[j]++
		}
	}
	return Pe, Iw
}
