// Package metrics provides observers over a running QG trajectory,
// built on the model's energy diagnostics.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qgsim/internal/qg"
)

// Metric observes a trajectory and reduces it to a scalar. Observe is
// called by the surrounding integrator whenever diagnostics are due.
type Metric interface {
	Name() string
	Observe(s *qg.State, t float64)
	Value() float64
	Reset()
}

// TotalEnergy averages the domain total of kinetic plus potential
// energy over the observed samples.
type TotalEnergy struct {
	model   *qg.Model
	samples int
	total   float64
}

func NewTotalEnergy(m *qg.Model) *TotalEnergy {
	return &TotalEnergy{model: m}
}

func (e *TotalEnergy) Name() string { return "total_energy" }

func (e *TotalEnergy) Observe(s *qg.State, t float64) {
	ke, pe := e.model.Energies(s)
	e.total += floats.Sum(ke) + floats.Sum(pe)
	e.samples++
}

func (e *TotalEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *TotalEnergy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift tracks the maximum relative departure of total energy
// from its first observed value. Useful for monitoring conservation in
// unforced, undamped runs.
type EnergyDrift struct {
	model    *qg.Model
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(m *qg.Model) *EnergyDrift {
	return &EnergyDrift{model: m}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s *qg.State, t float64) {
	ke, pe := e.model.Energies(s)
	energy := floats.Sum(ke) + floats.Sum(pe)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
