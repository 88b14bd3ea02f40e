package qg

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func randomField(m *Model, seed int64) [][][]float64 {
	rng := rand.New(rand.NewSource(seed))
	q := make([][][]float64, m.P.Nz)
	for jz := range q {
		q[jz] = m.G.NewPhysical()
		for j := range q[jz] {
			for i := range q[jz][j] {
				q[jz][j][i] = 2*rng.Float64() - 1
			}
		}
	}
	return q
}

func TestInversionRoundTrip(t *testing.T) {
	for _, nz := range []int{1, 2, 3} {
		g := testGrid(t, 16, 16)
		in := Inputs{
			Nlayers: nz,
			G:       10,
			F0:      1,
			Beta:    1,
			Rho:     make([]float64, nz),
			H:       make([]float64, nz),
			Nnu:     1,
		}
		for i := range in.Rho {
			in.Rho[i] = 1 + 0.02*float64(i)
			in.H[i] = 0.5 + 0.5*float64(i)
		}
		p, err := NewParams(g, in)
		if err != nil {
			t.Fatal(err)
		}
		m := New(p, g, nil)
		s := m.NewState()
		if err := m.SetPV(s, randomField(m, int64(nz))); err != nil {
			t.Fatal(err)
		}

		back := newSpectralStack(g, nz)
		m.PVFromStreamfunction(back, s.Psih)

		var maxErr, scale float64
		for jz := 0; jz < nz; jz++ {
			for j := 0; j < g.Nl; j++ {
				for k := 0; k < g.Nkr; k++ {
					maxErr = math.Max(maxErr, cmplx.Abs(back[jz][j][k]-s.Qh[jz][j][k]))
					scale = math.Max(scale, cmplx.Abs(s.Qh[jz][j][k]))
				}
			}
		}
		if maxErr > 1e-10*scale {
			t.Errorf("nz=%d: roundtrip error %g (scale %g)", nz, maxErr, scale)
		}
	}
}

func TestInversionZeroesMeanStreamfunction(t *testing.T) {
	g := testGrid(t, 16, 16)
	p, err := NewParams(g, twoLayerInputs())
	if err != nil {
		t.Fatal(err)
	}
	m := New(p, g, nil)
	s := m.NewState()
	if err := m.SetPV(s, randomField(m, 42)); err != nil {
		t.Fatal(err)
	}
	for jz := 0; jz < p.Nz; jz++ {
		if s.Psih[jz][0][0] != 0 {
			t.Errorf("layer %d mean streamfunction = %v, want 0", jz, s.Psih[jz][0][0])
		}
	}
}

func TestSingleLayerInversionIsScalar(t *testing.T) {
	g := testGrid(t, 16, 16)
	in := Inputs{
		Nlayers: 1,
		G:       10,
		F0:      1,
		Beta:    1,
		Rho:     []float64{1},
		H:       []float64{1},
		Nnu:     1,
	}
	p, err := NewParams(g, in)
	if err != nil {
		t.Fatal(err)
	}
	m := New(p, g, nil)
	s := m.NewState()
	if err := m.SetPV(s, randomField(m, 3)); err != nil {
		t.Fatal(err)
	}
	for j := 0; j < g.Nl; j++ {
		for k := 0; k < g.Nkr; k++ {
			want := complex(-g.InvKrsq[j][k], 0) * s.Qh[0][j][k]
			if cmplx.Abs(s.Psih[0][j][k]-want) > 1e-12 {
				t.Fatalf("psih(%d,%d) = %v, want %v", j, k, s.Psih[0][j][k], want)
			}
		}
	}
}
