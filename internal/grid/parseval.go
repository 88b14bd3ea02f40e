package grid

// ParsevalSum computes the domain integral of a quadratic spectral
// quantity stored on the half spectrum, e.g. Krsq*|psih|^2 for kinetic
// energy. Contributions from interior x-wavenumbers are doubled to
// account for the conjugate half; the kr = 0 and Nyquist columns are
// counted once. The normalization assumes unnormalized forward
// transforms, as produced by Forward.
func (g *Grid) ParsevalSum(a [][]float64) float64 {
	var sum float64
	for j := 0; j < g.Nl; j++ {
		sum += a[j][0] + a[j][g.Nkr-1]
		for k := 1; k < g.Nkr-1; k++ {
			sum += 2 * a[j][k]
		}
	}
	n2 := float64(g.Nx) * float64(g.Nx) * float64(g.Ny) * float64(g.Ny)
	return sum * g.Lx * g.Ly / n2
}
