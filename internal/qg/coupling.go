package qg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qgsim/internal/grid"
	"github.com/san-kum/qgsim/internal/qgerr"
)

// buildCoupling assembles and inverts the per-wavenumber coupling
// matrices S(k,l) = -k^2 I + F, where F is the tridiagonal vertical
// stretching operator. The singular zero-wavenumber block is
// regularized with k^2 = 1 for the inversion and its inverse zeroed
// afterwards, removing the undetermined barotropic offset. A single
// layer needs no matrices; the scalar -k^2 path handles it.
func (p *Params) buildCoupling(g *grid.Grid) error {
	nz := p.Nz
	if nz == 1 {
		return nil
	}

	stretch := make([]float64, nz*nz)
	for a := 0; a < nz; a++ {
		var diag float64
		if a > 0 {
			stretch[a*nz+a-1] = p.Fp[a-1]
			diag -= p.Fp[a-1]
		}
		if a < nz-1 {
			stretch[a*nz+a+1] = p.Fm[a]
			diag -= p.Fm[a]
		}
		stretch[a*nz+a] = diag
	}

	p.s = make([]float64, p.nl*p.nkr*nz*nz)
	p.invS = make([]float64, p.nl*p.nkr*nz*nz)
	reg := make([]float64, nz*nz)

	for j := 0; j < p.nl; j++ {
		for k := 0; k < p.nkr; k++ {
			sb := p.SBlock(j, k)
			copy(sb, stretch)
			copy(reg, stretch)
			krsq := g.Krsq[j][k]
			for a := 0; a < nz; a++ {
				sb[a*nz+a] -= krsq
			}
			if j == 0 && k == 0 {
				krsq = 1
			}
			for a := 0; a < nz; a++ {
				reg[a*nz+a] -= krsq
			}

			var inv mat.Dense
			if err := inv.Inverse(mat.NewDense(nz, nz, reg)); err != nil {
				if _, conditioned := err.(mat.Condition); !conditioned {
					return fmt.Errorf("coupling matrix singular at wavenumber (%d,%d): %w", k, j, qgerr.ErrNumerical)
				}
			}
			ib := p.InvSBlock(j, k)
			for a := 0; a < nz; a++ {
				for c := 0; c < nz; c++ {
					ib[a*nz+c] = inv.At(a, c)
				}
			}
		}
	}

	// Degenerate barotropic mode: the domain-mean streamfunction is
	// undetermined by PV.
	zero := p.InvSBlock(0, 0)
	for i := range zero {
		zero[i] = 0
	}
	return nil
}

// SBlock returns the Nz-by-Nz coupling matrix for wavenumber indices
// (l=j, kr=k) as a row-major slice into the contiguous store.
func (p *Params) SBlock(j, k int) []float64 {
	off := (j*p.nkr + k) * p.Nz * p.Nz
	return p.s[off : off+p.Nz*p.Nz]
}

// InvSBlock returns the inverse coupling matrix block for wavenumber
// indices (l=j, kr=k).
func (p *Params) InvSBlock(j, k int) []float64 {
	off := (j*p.nkr + k) * p.Nz * p.Nz
	return p.invS[off : off+p.Nz*p.Nz]
}
