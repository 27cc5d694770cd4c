// Package matrix provides the dense numeric kernel underlying qsweep:
// row-major float64 matrices with the handful of linear-algebra
// operations the circuit-generation pipeline needs.
//
// ✨ Key features:
//   - Dense: flat row-major storage, O(1) indexed access, deep Clone
//   - Mul / Transpose / MatVec: deterministic loop orders, single allocation
//   - Eigen: Jacobi sweeps for symmetric matrices with a fixed pivot scan,
//     suitable for the Bogoliubov–de Gennes spectra this library produces
//   - Validators: canonical nil/shape/symmetry checks returning sentinel errors
//
// ⚙️ Usage:
//
//	h, _ := matrix.NewDense(4, 4)
//	_ = h.Set(0, 1, -1.0)
//	_ = h.Set(1, 0, -1.0)
//	vals, vecs, err := matrix.Eigen(h, 1e-10, 300)
//
// All algorithms return package sentinel errors (ErrNilMatrix,
// ErrDimensionMismatch, …) and never panic on user-triggered conditions;
// callers match with errors.Is. Every routine is deterministic: fixed
// traversal orders, no randomness, no global state.
//
// Performance: Eigen is O(iter·n³); the remaining kernels are the textbook
// O(n²)/O(n³) with cache-friendly flat indexing.
package matrix
