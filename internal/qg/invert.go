package qg

// StreamfunctionFromPV inverts the spectral PV into the streamfunction,
// one dense nlayers-vector solve per wavenumber using the precomputed
// inverse coupling blocks. psih and qh must not alias. The zeroed
// (0,0) inverse block leaves the domain-mean streamfunction at zero.
// No allocation happens here; this runs on every tendency evaluation.
func (m *Model) StreamfunctionFromPV(psih, qh [][][]complex128) {
	p, g := m.P, m.G
	nz := p.Nz
	if nz == 1 {
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				psih[0][j][k] = complex(-g.InvKrsq[j][k], 0) * qh[0][j][k]
			}
		}
		return
	}
	for j := 0; j < g.Nl; j++ {
		for k := 0; k < g.Nkr; k++ {
			b := p.InvSBlock(j, k)
			for a := 0; a < nz; a++ {
				var acc complex128
				for c := 0; c < nz; c++ {
					acc += complex(b[a*nz+c], 0) * qh[c][j][k]
				}
				psih[a][j][k] = acc
			}
		}
	}
}

// PVFromStreamfunction applies the forward coupling operator, mapping
// the spectral streamfunction back to PV. qh and psih must not alias.
func (m *Model) PVFromStreamfunction(qh, psih [][][]complex128) {
	p, g := m.P, m.G
	nz := p.Nz
	if nz == 1 {
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				qh[0][j][k] = complex(-g.Krsq[j][k], 0) * psih[0][j][k]
			}
		}
		return
	}
	for j := 0; j < g.Nl; j++ {
		for k := 0; k < g.Nkr; k++ {
			b := p.SBlock(j, k)
			for a := 0; a < nz; a++ {
				var acc complex128
				for c := 0; c < nz; c++ {
					acc += complex(b[a*nz+c], 0) * psih[c][j][k]
				}
				qh[a][j][k] = acc
			}
		}
	}
}
