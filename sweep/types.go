// Package sweep: configuration and parameter-record types.

package sweep

import (
	"github.com/katalvlaran/qsweep/circuit"
	"github.com/katalvlaran/qsweep/kitaev"
)

// CircuitParameters pins one grid point: the Hamiltonian couplings, the
// occupied quasiparticle orbitals and the measurement to append. Every
// generated circuit carries its CircuitParameters as Metadata.
type CircuitParameters struct {
	Tunneling         float64
	Superconducting   float64
	ChemicalPotential float64
	OccupiedOrbitals  []int
	MeasurementBasis  circuit.Basis
	MeasurementLabel  string
}

// Config describes the sweep grid.
//
//   - Qubits: the physical qubits hosting the chain; len(Qubits) fixes
//     the number of modes. Indices must be distinct.
//   - TunnelingValues / SuperconductingValues / ChemicalPotentialValues:
//     the coupling axes; each needs at least one value.
//   - OccupiedOrbitalsList: the occupation sets to prepare; nil defaults
//     to the vacuum only ([][]int{{}}).
//   - Basis: measurement basis tag; the zero value defaults to
//     circuit.BasisPauli, anything else unknown is rejected at New.
//   - Labels: measurement labels; nil defaults to the canonical family
//     circuit.MeasurementLabels(n).
//   - DiagOptions: Bogoliubov diagonalizer options; nil defaults to
//     kitaev.DefaultOptions.
//   - Backend: opaque execution handle. The engine never touches it; it
//     is held so the external execution layer can retrieve it alongside
//     the generated circuits.
type Config struct {
	Qubits                  []int
	TunnelingValues         []float64
	SuperconductingValues   []float64
	ChemicalPotentialValues []float64
	OccupiedOrbitalsList    [][]int
	Basis                   circuit.Basis
	Labels                  []string
	DiagOptions             *kitaev.Options
	Backend                 any
}

// CacheStats counts how many times each expensive artifact was actually
// built; cache hits do not increment.
type CacheStats struct {
	// TransformBuilds counts Hamiltonian + Bogoliubov diagonalizations,
	// one per distinct coupling triple.
	TransformBuilds int
	// BaseBuilds counts Gaussian preparation syntheses, one per distinct
	// (couplings, occupations) pair.
	BaseBuilds int
}
