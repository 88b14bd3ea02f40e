package qg

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/qgsim/internal/grid"
	"github.com/san-kum/qgsim/internal/qgerr"
)

// Inputs collects the physical configuration of a model. Rho and H
// must have Nlayers entries; U, Shear and Eta are optional and default
// to zero.
type Inputs struct {
	Nlayers int
	G       float64 // gravitational acceleration
	F0      float64 // Coriolis parameter
	Beta    float64 // planetary PV gradient

	Rho []float64 // layer densities, increasing downward
	H   []float64 // layer rest thicknesses
	U   []float64 // imposed uniform zonal flow per layer

	Shear [][]float64 // imposed zonal shear profile u(y) per layer, [nlayers][ny]
	Eta   [][]float64 // topographic PV, [ny][nx]

	Mu  float64 // linear bottom drag
	Nu  float64 // (hyper)viscosity coefficient
	Nnu int     // hyperviscous order; 1 gives Laplacian viscosity
}

// Params is the immutable parameter and operator bundle built once at
// setup. It owns the background PV gradients and the per-wavenumber
// coupling matrices used by the PV inversion.
type Params struct {
	Nz   int
	G    float64
	F0   float64
	Beta float64
	Rho  []float64
	H    []float64
	U    []float64
	Mu   float64
	Nu   float64
	Nnu  int

	Htot   float64
	Gprime []float64 // reduced gravity per interface, len Nz-1
	Fp     []float64 // coupling to the layer below, len Nz-1
	Fm     []float64 // coupling to the layer above, len Nz-1

	Qx [][][]float64 // background PV x-gradient, [Nz][ny][nx]
	Qy [][][]float64 // background PV y-gradient, [Nz][ny][nx]

	Eta [][]float64 // topographic PV, nil when flat-bottomed

	ubg [][]float64 // total background zonal flow U + u(y), [Nz][ny]

	// Coupling matrices, one Nz-by-Nz block per wavenumber, stored
	// contiguously and indexed by (l, kr).
	s    []float64
	invS []float64
	nl   int
	nkr  int
}

// NewParams validates the inputs and builds the parameter bundle,
// including the inverted coupling matrices for every wavenumber. It
// never returns a partially constructed Params.
func NewParams(g *grid.Grid, in Inputs) (*Params, error) {
	if in.Nlayers < 1 {
		return nil, fmt.Errorf("nlayers must be at least 1, got %d: %w", in.Nlayers, qgerr.ErrConfiguration)
	}
	nz := in.Nlayers
	if len(in.Rho) != nz || len(in.H) != nz {
		return nil, fmt.Errorf("rho and H must have %d entries, got %d and %d: %w",
			nz, len(in.Rho), len(in.H), qgerr.ErrShapeMismatch)
	}
	if in.U != nil && len(in.U) != nz {
		return nil, fmt.Errorf("U must have %d entries, got %d: %w", nz, len(in.U), qgerr.ErrShapeMismatch)
	}
	if in.Shear != nil {
		if len(in.Shear) != nz {
			return nil, fmt.Errorf("shear must have %d layers, got %d: %w", nz, len(in.Shear), qgerr.ErrShapeMismatch)
		}
		for jz, prof := range in.Shear {
			if len(prof) != g.Ny {
				return nil, fmt.Errorf("shear profile for layer %d has %d points, want %d: %w",
					jz, len(prof), g.Ny, qgerr.ErrShapeMismatch)
			}
		}
	}
	if in.Eta != nil {
		if len(in.Eta) != g.Ny {
			return nil, fmt.Errorf("eta has %d rows, want %d: %w", len(in.Eta), g.Ny, qgerr.ErrShapeMismatch)
		}
		for j, row := range in.Eta {
			if len(row) != g.Nx {
				return nil, fmt.Errorf("eta row %d has %d points, want %d: %w", j, len(row), g.Nx, qgerr.ErrShapeMismatch)
			}
		}
	}
	for jz, h := range in.H {
		if h <= 0 {
			return nil, fmt.Errorf("layer %d thickness %g must be positive: %w", jz, h, qgerr.ErrConfiguration)
		}
	}
	for i := 0; i < nz-1; i++ {
		if in.Rho[i+1] <= in.Rho[i] {
			return nil, fmt.Errorf("density must increase downward, rho[%d]=%g >= rho[%d]=%g: %w",
				i, in.Rho[i], i+1, in.Rho[i+1], qgerr.ErrConfiguration)
		}
	}
	if in.Mu < 0 || in.Nu < 0 {
		return nil, fmt.Errorf("drag %g and viscosity %g must be non-negative: %w", in.Mu, in.Nu, qgerr.ErrConfiguration)
	}
	if in.Nnu < 1 {
		return nil, fmt.Errorf("hyperviscous order must be at least 1, got %d: %w", in.Nnu, qgerr.ErrConfiguration)
	}

	p := &Params{
		Nz:   nz,
		G:    in.G,
		F0:   in.F0,
		Beta: in.Beta,
		Rho:  append([]float64(nil), in.Rho...),
		H:    append([]float64(nil), in.H...),
		U:    make([]float64, nz),
		Mu:   in.Mu,
		Nu:   in.Nu,
		Nnu:  in.Nnu,
		nl:   g.Nl,
		nkr:  g.Nkr,
	}
	if in.U != nil {
		copy(p.U, in.U)
	}
	for _, h := range p.H {
		p.Htot += h
	}

	p.Gprime = make([]float64, nz-1)
	p.Fp = make([]float64, nz-1)
	p.Fm = make([]float64, nz-1)
	for i := 0; i < nz-1; i++ {
		p.Gprime[i] = in.G * (in.Rho[i+1] - in.Rho[i]) / in.Rho[i]
		p.Fp[i] = in.F0 * in.F0 / (p.Gprime[i] * p.H[i+1])
		p.Fm[i] = in.F0 * in.F0 / (p.Gprime[i] * p.H[i])
	}

	p.ubg = make([][]float64, nz)
	for jz := range p.ubg {
		p.ubg[jz] = make([]float64, g.Ny)
		for j := range p.ubg[jz] {
			p.ubg[jz][j] = p.U[jz]
			if in.Shear != nil {
				p.ubg[jz][j] += in.Shear[jz][j]
			}
		}
	}

	if in.Eta != nil {
		p.Eta = make([][]float64, g.Ny)
		for j := range p.Eta {
			p.Eta[j] = append([]float64(nil), in.Eta[j]...)
		}
	}

	p.buildGradients(g, in.Shear)
	if err := p.buildCoupling(g); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"nlayers": nz,
		"nkr":     g.Nkr,
		"nl":      g.Nl,
	}).Debug("built layer coupling operators")
	return p, nil
}

// buildGradients fills the background PV gradient fields. Qy combines
// beta, shear curvature and the inter-layer coupling from background
// flow differences; the bottom layer additionally carries the
// topography gradients, which are the only contribution to Qx.
func (p *Params) buildGradients(g *grid.Grid, shear [][]float64) {
	nz := p.Nz
	p.Qx = make([][][]float64, nz)
	p.Qy = make([][][]float64, nz)
	for jz := 0; jz < nz; jz++ {
		p.Qx[jz] = g.NewPhysical()
		p.Qy[jz] = g.NewPhysical()
	}

	uyy := make([]float64, g.Ny)
	for jz := 0; jz < nz; jz++ {
		for j := range uyy {
			uyy[j] = 0
		}
		if shear != nil {
			g.SecondDerivY(uyy, shear[jz])
		}
		for j := 0; j < g.Ny; j++ {
			qy := p.Beta - uyy[j]
			if jz > 0 {
				qy -= p.Fp[jz-1] * (p.ubg[jz-1][j] - p.ubg[jz][j])
			}
			if jz < nz-1 {
				qy -= p.Fm[jz] * (p.ubg[jz+1][j] - p.ubg[jz][j])
			}
			for i := 0; i < g.Nx; i++ {
				p.Qy[jz][j][i] = qy
			}
		}
	}

	if p.Eta == nil {
		return
	}
	etah := g.NewSpectral()
	dh := g.NewSpectral()
	grad := g.NewPhysical()
	g.Forward(etah, p.Eta)

	for j := 0; j < g.Nl; j++ {
		for k := 0; k < g.Nkr; k++ {
			dh[j][k] = complex(0, g.Kr[k]) * etah[j][k]
		}
	}
	g.Inverse(grad, dh)
	for j := 0; j < g.Ny; j++ {
		copy(p.Qx[nz-1][j], grad[j])
	}

	for j := 0; j < g.Nl; j++ {
		for k := 0; k < g.Nkr; k++ {
			dh[j][k] = complex(0, g.L[j]) * etah[j][k]
		}
	}
	g.Inverse(grad, dh)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			p.Qy[nz-1][j][i] += grad[j][i]
		}
	}
}
