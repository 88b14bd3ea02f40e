package qg

// Tendency evaluates the spectral right-hand side of the PV evolution
// equation: advection of the background PV gradient by the full flow,
// self-advection of the perturbation PV, bottom drag and forcing. sol
// is treated read-only; it is copied once into the state's working
// buffer and dst never aliases it. All intermediate fields live in s.
func (m *Model) Tendency(dst, sol [][][]complex128, t float64, s *State) {
	m.tendency(dst, sol, t, s, false)
}

// TendencyLinear evaluates the linearized variant: the perturbation's
// self-advection is dropped and only the fixed topographic PV is
// advected alongside the background-gradient term. Used for
// linearized and tangent analyses.
func (m *Model) TendencyLinear(dst, sol [][][]complex128, t float64, s *State) {
	m.tendency(dst, sol, t, s, true)
}

func (m *Model) tendency(dst, sol [][][]complex128, t float64, s *State, linear bool) {
	p, g := m.P, m.G
	nz := p.Nz

	for jz := 0; jz < nz; jz++ {
		for j := 0; j < g.Nl; j++ {
			copy(s.Qh[jz][j], sol[jz][j])
		}
	}

	m.StreamfunctionFromPV(s.Psih, s.Qh)
	m.velocities(s)

	// Full zonal flow: perturbation plus imposed uniform and shear flow.
	for jz := 0; jz < nz; jz++ {
		for j := 0; j < g.Ny; j++ {
			ub := p.ubg[jz][j]
			for i := 0; i < g.Nx; i++ {
				s.U[jz][j][i] += ub
			}
		}
	}

	for jz := 0; jz < nz; jz++ {
		// Advection of the mean PV gradient by the full flow.
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				s.work[j][i] = s.U[jz][j][i]*p.Qx[jz][j][i] + s.V[jz][j][i]*p.Qy[jz][j][i]
			}
		}
		g.Forward(s.workh, s.work)
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				dst[jz][j][k] = -s.workh[j][k]
			}
		}

		var qadv [][]float64
		if linear {
			if jz == nz-1 && p.Eta != nil {
				qadv = p.Eta
			}
		} else {
			g.Inverse(s.Q[jz], s.Qh[jz])
			qadv = s.Q[jz]
		}
		if qadv == nil {
			continue
		}

		// Flux form: subtract the divergence of (u q, v q).
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				s.work[j][i] = s.U[jz][j][i] * qadv[j][i]
			}
		}
		g.Forward(s.workh, s.work)
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				dst[jz][j][k] -= complex(0, g.Kr[k]) * s.workh[j][k]
			}
		}

		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				s.work[j][i] = s.V[jz][j][i] * qadv[j][i]
			}
		}
		g.Forward(s.workh, s.work)
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				dst[jz][j][k] -= complex(0, g.L[j]) * s.workh[j][k]
			}
		}
	}

	// Bottom drag acts on the lowest layer only. With a single layer it
	// has no layer structure and lives in Dissipation instead.
	if nz > 1 && p.Mu != 0 {
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				dst[nz-1][j][k] += complex(p.Mu*g.Krsq[j][k], 0) * s.Psih[nz-1][j][k]
			}
		}
	}

	if s.Fh != nil {
		m.forcing.Generate(s.Fh, sol, t, s, p, g)
		for jz := 0; jz < nz; jz++ {
			for j := 0; j < g.Nl; j++ {
				for k := 0; k < g.Nkr; k++ {
					dst[jz][j][k] += s.Fh[jz][j][k]
				}
			}
		}
	}
}
