package qg

import (
	"fmt"
	"math"

	"github.com/san-kum/qgsim/internal/grid"
	"github.com/san-kum/qgsim/internal/qgerr"
)

// Model bundles the immutable parameter set, the grid and the forcing
// generator. A Model may be shared by concurrent trajectories as long
// as each has its own State.
type Model struct {
	P *Params
	G *grid.Grid

	forcing ForcingGenerator
}

// New builds a model around an already constructed parameter bundle.
// A nil forcing generator installs ZeroForcing.
func New(p *Params, g *grid.Grid, forcing ForcingGenerator) *Model {
	if forcing == nil {
		forcing = ZeroForcing
	}
	return &Model{P: p, G: g, forcing: forcing}
}

func (m *Model) forced() bool { return m.forcing != ZeroForcing }

// SetPV projects a physical PV field into the state's spectral buffer,
// forces the domain-mean mode to zero per layer and refreshes the
// derived streamfunction and velocity fields.
func (m *Model) SetPV(s *State, q [][][]float64) error {
	p, g := m.P, m.G
	if len(q) != p.Nz {
		return fmt.Errorf("pv field has %d layers, want %d: %w", len(q), p.Nz, qgerr.ErrShapeMismatch)
	}
	for jz, slab := range q {
		if len(slab) != g.Ny {
			return fmt.Errorf("pv layer %d has %d rows, want %d: %w", jz, len(slab), g.Ny, qgerr.ErrShapeMismatch)
		}
		for j, row := range slab {
			if len(row) != g.Nx {
				return fmt.Errorf("pv layer %d row %d has %d points, want %d: %w",
					jz, j, len(row), g.Nx, qgerr.ErrShapeMismatch)
			}
		}
	}

	for jz := 0; jz < p.Nz; jz++ {
		g.Forward(s.Qh[jz], q[jz])
		s.Qh[jz][0][0] = 0
	}
	m.refresh(s)
	return nil
}

// refresh recomputes the derived fields from s.Qh: streamfunction,
// perturbation velocities and their physical counterparts. The
// physical PV is re-synthesized so it matches the zero-mean spectrum.
func (m *Model) refresh(s *State) {
	g := m.G
	m.StreamfunctionFromPV(s.Psih, s.Qh)
	m.velocities(s)
	for jz := 0; jz < m.P.Nz; jz++ {
		g.Inverse(s.Q[jz], s.Qh[jz])
		g.Inverse(s.Psi[jz], s.Psih[jz])
	}
}

// velocities fills the spectral and physical perturbation velocities
// from s.Psih. The background flow is not included here; the tendency
// adds it where the full flow is needed.
func (m *Model) velocities(s *State) {
	p, g := m.P, m.G
	for jz := 0; jz < p.Nz; jz++ {
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				psih := s.Psih[jz][j][k]
				s.Uh[jz][j][k] = complex(0, -g.L[j]) * psih
				s.Vh[jz][j][k] = complex(0, g.Kr[k]) * psih
			}
		}
		g.Inverse(s.U[jz], s.Uh[jz])
		g.Inverse(s.V[jz], s.Vh[jz])
	}
}

// Dissipation fills dst with the diagonal spectral coefficient of the
// linear dissipation operator, -nu k^(2 nnu) per layer, for use by the
// external integrator. In the single-layer case bottom drag has no
// layer structure and folds in here as well.
func (m *Model) Dissipation(dst [][][]complex128) {
	p, g := m.P, m.G
	for jz := 0; jz < p.Nz; jz++ {
		for j := 0; j < g.Nl; j++ {
			for k := 0; k < g.Nkr; k++ {
				coef := -p.Nu * math.Pow(g.Krsq[j][k], float64(p.Nnu))
				if p.Nz == 1 {
					coef -= p.Mu
				}
				dst[jz][j][k] = complex(coef, 0)
			}
		}
	}
}
