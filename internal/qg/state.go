package qg

import "github.com/san-kum/qgsim/internal/grid"

// State holds every physical- and spectral-space buffer a trajectory
// needs. Buffers are allocated once and overwritten in place by each
// tendency evaluation; nothing here is safe for concurrent use.
type State struct {
	Qh   [][][]complex128 // spectral PV working buffer, [nz][nl][nkr]
	Psih [][][]complex128 // spectral streamfunction
	Uh   [][][]complex128 // spectral zonal velocity
	Vh   [][][]complex128 // spectral meridional velocity

	Q   [][][]float64 // physical PV, [nz][ny][nx]
	Psi [][][]float64 // physical streamfunction
	U   [][][]float64 // physical zonal velocity
	V   [][][]float64 // physical meridional velocity

	// Fh receives the spectral forcing increment each tendency call.
	// It is nil when the model carries the zero generator.
	Fh [][][]complex128

	work  [][]float64
	workh [][]complex128
}

// NewState allocates the buffer set for one trajectory of the model.
func (m *Model) NewState() *State {
	p, g := m.P, m.G
	s := &State{
		Qh:    newSpectralStack(g, p.Nz),
		Psih:  newSpectralStack(g, p.Nz),
		Uh:    newSpectralStack(g, p.Nz),
		Vh:    newSpectralStack(g, p.Nz),
		Q:     newPhysicalStack(g, p.Nz),
		Psi:   newPhysicalStack(g, p.Nz),
		U:     newPhysicalStack(g, p.Nz),
		V:     newPhysicalStack(g, p.Nz),
		work:  g.NewPhysical(),
		workh: g.NewSpectral(),
	}
	if m.forced() {
		s.Fh = newSpectralStack(g, p.Nz)
	}
	return s
}

func newSpectralStack(g *grid.Grid, nz int) [][][]complex128 {
	s := make([][][]complex128, nz)
	for jz := range s {
		s[jz] = g.NewSpectral()
	}
	return s
}

func newPhysicalStack(g *grid.Grid, nz int) [][][]float64 {
	s := make([][][]float64, nz)
	for jz := range s {
		s[jz] = g.NewPhysical()
	}
	return s
}
