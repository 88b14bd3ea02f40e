// Package grid provides the doubly periodic spectral grid used by the
// QG core: wavenumber arrays and real-FFT transforms between physical
// fields and their half-spectrum representation.
//
// Physical slabs are [ny][nx]float64; spectral slabs are
// [nl][nkr]complex128 with nl = ny and nkr = nx/2 + 1, holding the
// non-negative x-wavenumbers of an unnormalized forward transform.
package grid

import (
	"fmt"
	"math"

	"github.com/san-kum/qgsim/internal/qgerr"
)

type Grid struct {
	Nx, Ny   int
	Nkr, Nl  int
	Lx, Ly   float64
	Dx, Dy   float64
	Kr       []float64   // [nkr] non-negative x-wavenumbers
	L        []float64   // [nl] signed y-wavenumbers
	Krsq    [][]float64 // [nl][nkr] squared total wavenumber
	InvKrsq [][]float64 // [nl][nkr] inverse, zero at (0,0)
	full    [][]complex128
}

// New builds a grid for an nx-by-ny domain of extent Lx-by-Ly. Both
// dimensions must be even and at least 4 so the half-spectrum packing
// and Nyquist bookkeeping stay well defined.
func New(nx, ny int, lx, ly float64) (*Grid, error) {
	if nx < 4 || ny < 4 || nx%2 != 0 || ny%2 != 0 {
		return nil, fmt.Errorf("grid dimensions must be even and >= 4, got %dx%d: %w", nx, ny, qgerr.ErrConfiguration)
	}
	if lx <= 0 || ly <= 0 {
		return nil, fmt.Errorf("domain extents must be positive, got %gx%g: %w", lx, ly, qgerr.ErrConfiguration)
	}

	g := &Grid{
		Nx: nx, Ny: ny,
		Nkr: nx/2 + 1, Nl: ny,
		Lx: lx, Ly: ly,
		Dx: lx / float64(nx), Dy: ly / float64(ny),
	}

	g.Kr = make([]float64, g.Nkr)
	for k := range g.Kr {
		g.Kr[k] = 2 * math.Pi / lx * float64(k)
	}
	g.L = make([]float64, g.Nl)
	for j := range g.L {
		jj := j
		if j >= ny/2 {
			jj = j - ny
		}
		g.L[j] = 2 * math.Pi / ly * float64(jj)
	}

	g.Krsq = make([][]float64, g.Nl)
	g.InvKrsq = make([][]float64, g.Nl)
	for j := 0; j < g.Nl; j++ {
		g.Krsq[j] = make([]float64, g.Nkr)
		g.InvKrsq[j] = make([]float64, g.Nkr)
		for k := 0; k < g.Nkr; k++ {
			g.Krsq[j][k] = g.Kr[k]*g.Kr[k] + g.L[j]*g.L[j]
			if g.Krsq[j][k] > 0 {
				g.InvKrsq[j][k] = 1 / g.Krsq[j][k]
			}
		}
	}

	g.full = make([][]complex128, ny)
	for j := range g.full {
		g.full[j] = make([]complex128, nx)
	}
	return g, nil
}

// NewSpectral allocates a zeroed half-spectrum slab shaped for g.
func (g *Grid) NewSpectral() [][]complex128 {
	s := make([][]complex128, g.Nl)
	for j := range s {
		s[j] = make([]complex128, g.Nkr)
	}
	return s
}

// NewPhysical allocates a zeroed physical slab shaped for g.
func (g *Grid) NewPhysical() [][]float64 {
	p := make([][]float64, g.Ny)
	for j := range p {
		p[j] = make([]float64, g.Nx)
	}
	return p
}

// X returns the physical x coordinate of column i.
func (g *Grid) X(i int) float64 { return g.Dx * float64(i) }

// Y returns the physical y coordinate of row j.
func (g *Grid) Y(j int) float64 { return g.Dy * float64(j) }
