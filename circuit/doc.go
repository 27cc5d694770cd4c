// Package circuit models the small gate set qsweep emits and the
// measurement-basis machinery layered on top of it.
//
// ✨ Key features:
//   - Gate / Circuit: a flat, append-only instruction list with qubit
//     bounds checking and deep Clone
//   - Gate set: rz, rxx, x, h, sdg and terminal measure instructions —
//     exactly what Gaussian state preparation plus Pauli measurements need
//   - MeasurementLabels: the canonical label family probing edge-mode
//     parities and mode occupations of a Kitaev chain
//   - Measure: tagged-variant basis dispatch; unknown bases are rejected
//     with ErrUnsupportedBasis instead of silently falling through
//
// Labels are lowercase strings over the alphabet "ixyz", one character
// per qubit, character q addressing qubit q. Appending a measurement
// never mutates the base circuit: the base is cloned, per-qubit basis
// rotations are appended (H for x, S†+H for y, nothing for z), and every
// qubit whose character is not 'i' receives a measure instruction.
//
// ⚙️ Usage:
//
//	qc, _ := circuit.New(3)
//	_ = qc.AppendRXX(0, 1, math.Pi/2)
//	meas, err := circuit.Measure(qc, circuit.BasisPauli, "xzy")
//
// All operations return sentinel errors; match with errors.Is.
package circuit
