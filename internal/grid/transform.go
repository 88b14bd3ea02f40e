package grid

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Forward computes the unnormalized real-FFT of a physical slab,
// keeping the non-negative x-wavenumber half of the spectrum.
func (g *Grid) Forward(dst [][]complex128, src [][]float64) {
	fh := fft.FFT2Real(src)
	for j := 0; j < g.Nl; j++ {
		copy(dst[j], fh[j][:g.Nkr])
	}
}

// Inverse reconstructs the physical slab from a half spectrum. The
// missing x-wavenumbers are filled by Hermitian symmetry, so the result
// is real for any spectrum produced by Forward.
func (g *Grid) Inverse(dst [][]float64, src [][]complex128) {
	for j := 0; j < g.Ny; j++ {
		copy(g.full[j][:g.Nkr], src[j])
		jj := (g.Ny - j) % g.Ny
		for k := g.Nkr; k < g.Nx; k++ {
			g.full[j][k] = cmplx.Conj(src[jj][g.Nx-k])
		}
	}
	out := fft.IFFT2(g.full)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			dst[j][i] = real(out[j][i])
		}
	}
}

// SecondDerivY computes the second y-derivative of a periodic profile
// spectrally. src and dst have length Ny and may alias.
func (g *Grid) SecondDerivY(dst, src []float64) {
	fh := fft.FFTReal(src)
	for j := range fh {
		fh[j] *= complex(-g.L[j]*g.L[j], 0)
	}
	out := fft.IFFT(fh)
	for j := range dst {
		dst[j] = real(out[j])
	}
}
