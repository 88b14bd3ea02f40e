package qg

import "github.com/san-kum/qgsim/internal/grid"

// ForcingGenerator supplies a spectral PV forcing increment each
// tendency evaluation. Generate must fill fh completely; sol is the
// incoming spectral solution and must be treated read-only.
type ForcingGenerator interface {
	Generate(fh, sol [][][]complex128, t float64, s *State, p *Params, g *grid.Grid)
}

type zeroForcing struct{}

func (zeroForcing) Generate(fh, sol [][][]complex128, t float64, s *State, p *Params, g *grid.Grid) {
}

// ZeroForcing is the default generator for unforced runs.
var ZeroForcing ForcingGenerator = zeroForcing{}
