// Package statevec is a minimal complex128 statevector simulator for the
// gate set qsweep emits (rz, rxx, x, h, sdg). It exists so circuit
// synthesis can be verified numerically: run a prepared circuit and read
// occupation probabilities off the final state.
//
// ✨ Key features:
//   - State: 2^n complex amplitudes, qubit q mapped to bit q of the index
//   - ApplyGate / Run: exact dense application of every emitted gate;
//     measure markers are ignored (this simulator never collapses)
//   - Probabilities / OccupationProbability: Born-rule readout
//
// ⚙️ Usage:
//
//	st, _ := statevec.New(2)
//	_ = st.Run(qc)
//	p1 := st.OccupationProbability(0) // P(qubit 0 reads 1)
//
// The register is capped at MaxQubits to keep memory bounded; sweeps in
// this library stay far below it.
package statevec
