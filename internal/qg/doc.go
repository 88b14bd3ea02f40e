// Package qg implements the numerical core of a multi-layer
// quasi-geostrophic model on a doubly periodic domain.
//
// The entry points mirror the lifecycle of a pseudo-spectral run:
//
//   - [NewParams]: derive stratification coupling, background PV
//     gradients and the per-wavenumber coupling matrices once, up front
//   - [Model.SetPV]: project a physical PV field into spectral space
//   - [Model.Tendency]: evaluate the nonlinear advective tendency for
//     an external time-stepping integrator
//   - [Model.Energies]: kinetic and potential energy diagnostics
//
// Time stepping itself is not provided; the integrator owns the clock
// and the evolving spectral solution and calls [Model.Tendency] each
// substep. All per-call buffers live in a [State] and are overwritten
// in place, so a single tendency evaluation performs no allocation of
// its own.
//
// # Thread Safety
//
// A State is exclusively owned by one trajectory and mutated by every
// tendency call. Params are immutable after construction, but the
// grid's transforms use shared scratch, so concurrent trajectories
// need independent Model/grid/State sets.
package qg
