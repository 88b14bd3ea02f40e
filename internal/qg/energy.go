package qg

import "math/cmplx"

// Energies computes the thickness-weighted kinetic energy per layer
// and the potential energy per interface from the state's spectral
// streamfunction. Diagnostics run off the hot path, so the spectral
// scratch here is allocated per call.
func (m *Model) Energies(s *State) (ke, pe []float64) {
	p, g := m.P, m.G
	a := make([][]float64, g.Nl)
	for j := range a {
		a[j] = make([]float64, g.Nkr)
	}
	area := g.Lx * g.Ly

	ke = make([]float64, p.Nz)
	for jz := 0; jz < p.Nz; jz++ {
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				c := s.Psih[jz][j][k]
				a[j][k] = g.Krsq[j][k] * (real(c)*real(c) + imag(c)*imag(c))
			}
		}
		ke[jz] = g.ParsevalSum(a) / (2 * area) * p.H[jz] / p.Htot
	}

	pe = make([]float64, p.Nz-1)
	for i := 0; i < p.Nz-1; i++ {
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				d := s.Psih[i+1][j][k] - s.Psih[i][j][k]
				a[j][k] = real(d)*real(d) + imag(d)*imag(d)
			}
		}
		pe[i] = g.ParsevalSum(a) / (2 * area) * p.F0 * p.F0 / p.Gprime[i]
	}
	return ke, pe
}

// Enstrophies computes the thickness-weighted potential enstrophy per
// layer.
func (m *Model) Enstrophies(s *State) []float64 {
	p, g := m.P, m.G
	a := make([][]float64, g.Nl)
	for j := range a {
		a[j] = make([]float64, g.Nkr)
	}
	area := g.Lx * g.Ly

	ens := make([]float64, p.Nz)
	for jz := 0; jz < p.Nz; jz++ {
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				mag := cmplx.Abs(s.Qh[jz][j][k])
				a[j][k] = mag * mag
			}
		}
		ens[jz] = g.ParsevalSum(a) / (2 * area) * p.H[jz] / p.Htot
	}
	return ens
}
