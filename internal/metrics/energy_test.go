package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/qgsim/internal/grid"
	"github.com/san-kum/qgsim/internal/qg"
)

func testModel(t *testing.T) (*qg.Model, *qg.State) {
	t.Helper()
	g, err := grid.New(32, 32, 2*math.Pi, 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	p, err := qg.NewParams(g, qg.Inputs{
		Nlayers: 1,
		G:       10,
		F0:      1,
		Beta:    1,
		Rho:     []float64{1},
		H:       []float64{1},
		Nnu:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	m := qg.New(p, g, nil)
	s := m.NewState()

	// q = -cos(x) so psi = cos(x) and total energy is 1/4.
	q := make([][][]float64, 1)
	q[0] = g.NewPhysical()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			q[0][j][i] = -math.Cos(g.X(i))
		}
	}
	if err := m.SetPV(s, q); err != nil {
		t.Fatal(err)
	}
	return m, s
}

func TestTotalEnergy(t *testing.T) {
	m, s := testModel(t)
	metric := NewTotalEnergy(m)

	metric.Observe(s, 0)
	if got := metric.Value(); math.Abs(got-0.25) > 1e-10 {
		t.Errorf("total energy = %g, want 0.25", got)
	}

	metric.Observe(s, 1)
	if got := metric.Value(); math.Abs(got-0.25) > 1e-10 {
		t.Errorf("averaged total energy = %g, want 0.25", got)
	}

	metric.Reset()
	if metric.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	m, s := testModel(t)
	drift := NewEnergyDrift(m)

	drift.Observe(s, 0)
	if drift.Value() != 0 {
		t.Errorf("drift after first sample = %g, want 0", drift.Value())
	}

	// Halving the streamfunction quarters the energy: drift 0.75.
	for j := range s.Psih[0] {
		for k := range s.Psih[0][j] {
			s.Psih[0][j][k] *= 0.5
		}
	}
	drift.Observe(s, 1)
	if got := drift.Value(); math.Abs(got-0.75) > 1e-10 {
		t.Errorf("drift = %g, want 0.75", got)
	}

	drift.Reset()
	if drift.Value() != 0 {
		t.Error("expected zero after reset")
	}
}
