// Package qsweep is your in-memory toolkit for generating and
// parameterizing measurement circuits that probe eigenstates of the
// Kitaev-chain Hamiltonian across multi-dimensional parameter sweeps.
//
// 🚀 What is qsweep?
//
//	A deterministic, pure-Go circuit-generation engine that brings together:
//		• Dense numerics: row-major matrices, Jacobi eigen-decomposition
//		• Physics: Bogoliubov–de Gennes Hamiltonians for the Kitaev chain
//		• Diagonalization: quasiparticle transforms with a fixed energy-ordering convention
//		• Synthesis: fermionic Gaussian state-preparation circuits (RZ / RXX / X)
//		• Measurement: Pauli-string basis rotations + label enumeration
//		• Sweeps: lazy cross-product enumeration with memoized base circuits
//
// ✨ Why choose qsweep?
//
//   - Deterministic – fixed conventions everywhere, identical inputs ⇒ identical circuits
//   - Rock-solid guarantees – sentinel errors, strict validation, no silent skips
//   - Pure Go – no cgo, no hidden deps
//   - Lazy – pull-based iterators; consume a slice of the sweep without paying for the rest
//
// Under the hood, everything is organized under six subpackages:
//
//	matrix/   — dense float64 matrices, Mul/Transpose/MatVec, Jacobi eigen
//	kitaev/   — BdG Hamiltonian builder + Bogoliubov diagonalizer
//	gaussian/ — fermionic Gaussian state-preparation synthesis
//	circuit/  — gates, circuits, measurement labels & basis rotations
//	statevec/ — complex128 statevector simulator for the emitted gate set
//	sweep/    — parameter-space enumeration, circuit cache, generation engine
//
// Quick sketch:
//
//	eng, _ := sweep.New(sweep.Config{
//	    Qubits:                  []int{0, 1, 2},
//	    TunnelingValues:         []float64{1.0},
//	    SuperconductingValues:   []float64{0.5, 1.0},
//	    ChemicalPotentialValues: []float64{0.0, 2.0},
//	    OccupiedOrbitalsList:    [][]int{{}, {0}},
//	})
//	for qc, err := range eng.Circuits() {
//	    // each qc carries its sweep.CircuitParameters as metadata
//	}
//
// Dive into the per-package docs for conventions and details.
//
//	go get github.com/katalvlaran/qsweep
package qsweep
